package employee

import (
	"errors"
	"fmt"

	"hrdesk/api/internal/model"
)

var (
	ErrNotFound          = model.ErrNotFound
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrInvalidDepartment = &ValidationError{Field: "dept_id", Reason: "unknown department"}
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
