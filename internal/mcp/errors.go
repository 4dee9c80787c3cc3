package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/rollcall/internal/domain/employee"
)

var errUnknownKind = errors.New("unknown employee kind")

// APIError represents an MCP tool error.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass through.
func MapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, employee.ErrEmployeeNotFound):
		return &APIError{Code: "EMPLOYEE_NOT_FOUND", Message: err.Error(), RecoveryHint: "Check the id with list_employees"}
	case errors.Is(err, errUnknownKind):
		return &APIError{Code: "INVALID_KIND", Message: err.Error(), RecoveryHint: "Use manager or engineer"}
	default:
		return err
	}
}
