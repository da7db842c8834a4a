package attendance

import (
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	Carnet      string  `json:"carnet"`
	ImageBase64 string  `json:"imageBase64"`
	RecordedAt  *string `json:"recordedAt,omitempty"` // RFC3339; defaults to server time

	// BranchID is set by the terminal-token middleware when the terminal is
	// branch-scoped, never by the client.
	BranchID string `json:"-"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Carnet) {
		errs = append(errs, validator.ValidationError{
			Field:   "carnet",
			Message: "carnet is required",
		})
	}

	if validator.IsEmpty(r.ImageBase64) {
		errs = append(errs, validator.ValidationError{
			Field:   "imageBase64",
			Message: "imageBase64 is required",
		})
	}

	if r.RecordedAt != nil && *r.RecordedAt != "" {
		if _, valid := validator.IsValidDateTime(*r.RecordedAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "recordedAt",
				Message: "recordedAt must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	Carnet       string  `json:"carnet"`
	EmployeeName *string `json:"employee_name,omitempty"`
	BranchID     string  `json:"branch_id"`
	Type         string  `json:"type"`
	RecordedAt   string  `json:"recorded_at"`
	ImageURL     string  `json:"image_url"`
	CreatedAt    string  `json:"created_at"`
}

// PageInfo describes one page of a filtered result set. LastPage is
// ceil(Total/Limit); Total is counted over the full filter, not the slice.
type PageInfo struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	Limit    int   `json:"limit"`
	LastPage int   `json:"lastPage"`
}

type ListAttendanceResponse struct {
	Data []AttendanceResponse `json:"data"`
	Meta PageInfo             `json:"meta"`
}

// AttendanceFilter filters the raw event list. Default limit is 10.
type AttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	BranchID  *string `json:"branch_id,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DashboardFilter filters the reconstructed-shift report. Dates are local
// calendar dates in the configured reporting time zone, both inclusive.
type DashboardFilter struct {
	BranchID       *string `json:"branch_id,omitempty"`
	EmployeeCarnet *string `json:"employee_carnet,omitempty"`
	StartDate      *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate        *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *DashboardFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftSummary is one reconstructed IN→OUT pair for an employee on one
// local calendar day.
type ShiftSummary struct {
	Carnet       string  `json:"carnet"`
	EmployeeName *string `json:"employee_name,omitempty"`
	BranchID     string  `json:"branch_id"`
	Date         string  `json:"date"` // local calendar day, YYYY-MM-DD
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	TotalHours   float64 `json:"total_hours"`
}

type DashboardResponse struct {
	Data []ShiftSummary `json:"data"`
	Meta PageInfo       `json:"meta"`
}
