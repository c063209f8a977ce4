package db

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"hrdesk/api/internal/employee"
	"hrdesk/api/internal/model"
)

const employeeColumns = `
  e.id, e.name, e.email, e.password, e.salary::float8, e.address, e.image, e.dept_id, d.name,
  e.age, e.gender, e.account_no, e.bank_name, e.branch, e.university, e.yop,
  e.father_name, e.mother_name, e.designation, e.experience, e.emergency_contact,
  e.alternate_contact, e.aadhar_number, e.pan_number, e.degree, e.edu_branch, e.gradepoint::float8
`

func scanEmployee(row pgx.Row) (model.Employee, error) {
	var e model.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.PasswordHash,
		&e.Salary,
		&e.Address,
		&e.Image,
		&e.DeptID,
		&e.DeptName,
		&e.Age,
		&e.Gender,
		&e.AccountNo,
		&e.BankName,
		&e.Branch,
		&e.University,
		&e.YOP,
		&e.FatherName,
		&e.MotherName,
		&e.Designation,
		&e.Experience,
		&e.EmergencyContact,
		&e.AlternateContact,
		&e.AadharNumber,
		&e.PANNumber,
		&e.Degree,
		&e.EduBranch,
		&e.Gradepoint,
	)
	return e, err
}

func (q *Queries) listEmployees(ctx context.Context, op, where string, args ...interface{}) ([]model.Employee, error) {
	rows, err := q.db.Query(ctx, `SELECT `+employeeColumns+`
    FROM employee e
    LEFT JOIN dept d ON e.dept_id = d.id
    `+where+`
    ORDER BY e.id`, args...)
	if err != nil {
		return nil, mapError(op, err)
	}
	defer rows.Close()

	items := []model.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, mapError(op, err)
		}
		items = append(items, e)
	}
	return items, mapError(op, rows.Err())
}

func (q *Queries) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	return q.listEmployees(ctx, "list employees", "")
}

func (q *Queries) ListEmployeesByDept(ctx context.Context, deptID int64) ([]model.Employee, error) {
	return q.listEmployees(ctx, "list employees by dept", "WHERE e.dept_id = $1", deptID)
}

func (q *Queries) GetEmployee(ctx context.Context, id int64) (model.Employee, error) {
	row := q.db.QueryRow(ctx, `SELECT `+employeeColumns+`
    FROM employee e
    LEFT JOIN dept d ON e.dept_id = d.id
    WHERE e.id = $1`, id)
	e, err := scanEmployee(row)
	return e, mapError("get employee", err)
}

// GetHRDetail returns an employee whose designation is HR.
func (q *Queries) GetHRDetail(ctx context.Context, id int64) (model.Employee, error) {
	row := q.db.QueryRow(ctx, `SELECT `+employeeColumns+`
    FROM employee e
    LEFT JOIN dept d ON e.dept_id = d.id
    WHERE e.id = $1 AND e.designation = 'HR'`, id)
	e, err := scanEmployee(row)
	return e, mapError("get hr detail", err)
}

func (q *Queries) GetEmployeeImage(ctx context.Context, id int64) (*string, error) {
	var image *string
	err := q.db.QueryRow(ctx, `SELECT image FROM employee WHERE id = $1`, id).Scan(&image)
	if err != nil {
		return nil, mapError("get employee image", err)
	}
	return image, nil
}

// CreateEmployee inserts the password hash plus every assigned field.
func (q *Queries) CreateEmployee(ctx context.Context, passwordHash string, fields employee.Update) (int64, error) {
	columns := []string{"password"}
	placeholders := []string{"$1"}
	args := []interface{}{passwordHash}
	for _, a := range fields.Assignments() {
		args = append(args, a.Value)
		columns = append(columns, a.Field.Column())
		placeholders = append(placeholders, "$"+strconv.Itoa(len(args)))
	}
	query := "INSERT INTO employee (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ") RETURNING id"

	var id int64
	if err := q.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapError("create employee", err)
	}
	return id, nil
}

// UpdateEmployee sets exactly the assigned fields and reports the rows affected.
// Column names come from employee.Field, never from request input.
func (q *Queries) UpdateEmployee(ctx context.Context, id int64, fields employee.Update) (int64, error) {
	assignments := fields.Assignments()
	if len(assignments) == 0 {
		return 0, employee.ErrNoFieldsToUpdate
	}
	sets := make([]string, 0, len(assignments))
	args := make([]interface{}, 0, len(assignments)+1)
	for _, a := range assignments {
		args = append(args, a.Value)
		sets = append(sets, a.Field.Column()+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, id)
	query := "UPDATE employee SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(len(args))

	tag, err := q.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError("update employee", err)
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) DeleteLeavesByEmployee(ctx context.Context, employeeID int64) error {
	_, err := q.db.Exec(ctx, `DELETE FROM leaves WHERE employee_id = $1`, employeeID)
	return mapError("delete leaves", err)
}

func (q *Queries) DeleteAttendanceByEmployee(ctx context.Context, employeeID int64) error {
	_, err := q.db.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID)
	return mapError("delete attendance", err)
}

func (q *Queries) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM employee WHERE id = $1`, id)
	if err != nil {
		return mapError("delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
