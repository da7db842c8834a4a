package employee

import (
	"context"
)

type EmployeeRepository interface {
	// Create inserts a new employee; carnet must not exist yet.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByCarnet retrieves an employee by badge id.
	GetByCarnet(ctx context.Context, carnet string) (Employee, error)

	// List retrieves all employees, newest first.
	List(ctx context.Context) ([]Employee, error)

	// Update applies a partial update to name fields.
	Update(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes an employee; attendance events cascade away with it.
	Delete(ctx context.Context, carnet string) error
}
