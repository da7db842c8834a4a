package employee

import "time"

// Employee is keyed by its badge id (carnet), not a generated id.
type Employee struct {
	Carnet    string
	FirstName string
	LastName  *string
	BranchID  *string
	CreatedAt time.Time
}
