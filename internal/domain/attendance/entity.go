package attendance

import (
	"time"
)

// EventType is the kind of scan a terminal recorded.
type EventType string

const (
	TypeIn  EventType = "IN"
	TypeOut EventType = "OUT"
)

// Opposite returns the event type that must follow this one in a
// well-formed log.
func (t EventType) Opposite() EventType {
	if t == TypeIn {
		return TypeOut
	}
	return TypeIn
}

func (t EventType) Valid() bool {
	return t == TypeIn || t == TypeOut
}

// Attendance is one append-only entry in the scan log. RecordedAt is the
// authoritative event time; CreatedAt is audit-only.
type Attendance struct {
	ID             string
	EmployeeCarnet string
	BranchID       string
	Type           EventType
	RecordedAt     time.Time
	ImageURL       string
	RawName        *string
	CreatedAt      time.Time

	// DTO
	EmployeeName *string
	BranchName   *string
}
