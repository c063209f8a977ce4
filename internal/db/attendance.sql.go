package db

import (
	"context"
	"time"

	"hrdesk/api/internal/model"
)

func (q *Queries) ListAttendanceByDept(ctx context.Context, deptID int64) ([]model.Attendance, error) {
	rows, err := q.db.Query(ctx, `
    SELECT a.employee_id, a.attendance_date, a.status, e.name
    FROM attendance a
    JOIN employee e ON a.employee_id = e.id
    WHERE e.dept_id = $1
    ORDER BY a.attendance_date DESC
  `, deptID)
	if err != nil {
		return nil, mapError("list attendance by dept", err)
	}
	defer rows.Close()

	items := []model.Attendance{}
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.EmployeeID, &a.AttendanceDate, &a.Status, &a.EmployeeName); err != nil {
			return nil, mapError("list attendance by dept", err)
		}
		items = append(items, a)
	}
	return items, mapError("list attendance by dept", rows.Err())
}

type ListPresentDaysParams struct {
	EmployeeID int64
	Month      int
}

func (q *Queries) ListPresentDays(ctx context.Context, arg ListPresentDaysParams) ([]model.Attendance, error) {
	rows, err := q.db.Query(ctx, `
    SELECT employee_id, attendance_date, status
    FROM attendance
    WHERE employee_id = $1
      AND status = 'Present'
      AND EXTRACT(MONTH FROM attendance_date) = $2
    ORDER BY attendance_date DESC
  `, arg.EmployeeID, arg.Month)
	if err != nil {
		return nil, mapError("list present days", err)
	}
	defer rows.Close()

	items := []model.Attendance{}
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.EmployeeID, &a.AttendanceDate, &a.Status); err != nil {
			return nil, mapError("list present days", err)
		}
		items = append(items, a)
	}
	return items, mapError("list present days", rows.Err())
}

type MarkAttendanceParams struct {
	EmployeeID     int64
	AttendanceDate time.Time
	Status         model.AttendanceStatus
}

// MarkAttendance records one status per employee and day.
func (q *Queries) MarkAttendance(ctx context.Context, arg MarkAttendanceParams) error {
	_, err := q.db.Exec(ctx, `
    INSERT INTO attendance (employee_id, attendance_date, status)
    VALUES ($1, $2, $3)
    ON CONFLICT (employee_id, attendance_date) DO UPDATE SET status = EXCLUDED.status
  `, arg.EmployeeID, arg.AttendanceDate, string(arg.Status))
	return mapError("mark attendance", err)
}
