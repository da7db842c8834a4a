package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCarnetExists     = errors.New("carnet already registered")
)
