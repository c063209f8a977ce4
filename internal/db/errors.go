package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrdesk/api/internal/employee"
	"hrdesk/api/internal/model"
)

const (
	pgNumericOutOfRange   = "22003"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNumericOutOfRange:
			field := pgErr.ColumnName
			if field == "" {
				field = "value"
			}
			return &employee.ValidationError{Field: field, Reason: "out of range"}
		case pgForeignKeyViolation:
			switch pgErr.ConstraintName {
			case "employee_dept_id_fkey":
				return employee.ErrInvalidDepartment
			case "attendance_employee_id_fkey":
				return model.ErrNotFound
			}
		case pgUniqueViolation:
			if pgErr.ConstraintName == "employee_email_key" {
				return &employee.ValidationError{Field: "email", Reason: "already in use"}
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
