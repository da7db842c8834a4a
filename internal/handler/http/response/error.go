package response

import (
	"errors"
	"net/http"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/auth"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/branch"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTerminalToken):
		Unauthorized(w, "Invalid terminal token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Administrator role required")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrUsernameExists):
		Conflict(w, "Username already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCarnetExists):
		Conflict(w, "Carnet already registered")

	// Branch domain errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNoBranch):
		BadRequest(w, "Employee has no branch assigned", nil)
	case errors.Is(err, attendance.ErrImageUploadFailed):
		InternalServerError(w, "Failed to store attendance image")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
