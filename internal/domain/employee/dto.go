package employee

import (
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Carnet    string  `json:"carnet"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName,omitempty"`
	BranchID  *string `json:"branchId,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Carnet) {
		errs = append(errs, validator.ValidationError{
			Field:   "carnet",
			Message: "carnet is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest is a partial update; only provided fields change.
type UpdateEmployeeRequest struct {
	Carnet    string  `json:"-"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName must not be empty",
		})
	}

	if r.FirstName == nil && r.LastName == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	Carnet    string  `json:"carnet"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	BranchID  *string `json:"branch_id,omitempty"`
	CreatedAt string  `json:"created_at"`
}
