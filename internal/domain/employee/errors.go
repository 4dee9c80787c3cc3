package employee

import "errors"

// ErrEmployeeNotFound indicates no record matches the requested identifier.
var ErrEmployeeNotFound = errors.New("employee not found")
