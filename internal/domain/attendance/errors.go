package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeNoBranch   = errors.New("employee has no branch assigned")
	ErrImageUploadFailed  = errors.New("failed to store attendance image")
)
