package attendance

import (
	"context"
)

// AttendanceRepository defines data access for the append-only scan log.
// There is no update or delete of individual events; removal happens only
// through employee/branch cascade.
type AttendanceRepository interface {
	// Create appends a new event and returns it with generated fields.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetLastForPair returns the most recent event for the exact
	// (employee, branch) pair by recorded_at descending, or nil when the
	// pair has no history.
	GetLastForPair(ctx context.Context, carnet string, branchID string) (*Attendance, error)

	// LockPair takes a transaction-scoped advisory lock for the pair.
	// Must be called inside WithTransaction; it serializes the
	// read-last/decide/insert sequence against concurrent scans.
	LockPair(ctx context.Context, carnet string, branchID string) error

	// List returns raw events matching the filter, newest first, plus the
	// total count over the same filter. Date bounds are local calendar days
	// in the given IANA time zone.
	List(ctx context.Context, filter AttendanceFilter, timeZone string) ([]Attendance, int64, error)

	// ListWindow returns every event in the dashboard filter window ordered
	// by carnet then recorded_at ascending. Date bounds are compared as
	// local calendar days in the given IANA time zone.
	ListWindow(ctx context.Context, filter DashboardFilter, timeZone string) ([]Attendance, error)
}
