package model

import "time"

// Account is the credential view of an admin or an HR employee.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
}

type Admin struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Employee mirrors the employee table. PasswordHash is never serialized.
type Employee struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	PasswordHash     string   `json:"-"`
	Salary           *float64 `json:"salary"`
	Address          *string  `json:"address"`
	Image            *string  `json:"image"`
	DeptID           *int64   `json:"-"`
	DeptName         *string  `json:"dept_name"`
	Age              *int64   `json:"age"`
	Gender           *string  `json:"gender"`
	AccountNo        *string  `json:"account_no"`
	BankName         *string  `json:"bank_name"`
	Branch           *string  `json:"branch"`
	University       *string  `json:"university"`
	YOP              *int64   `json:"yop"`
	FatherName       *string  `json:"father_name"`
	MotherName       *string  `json:"mother_name"`
	Designation      *string  `json:"designation"`
	Experience       *string  `json:"experience"`
	EmergencyContact *string  `json:"emergency_contact"`
	AlternateContact *string  `json:"alternate_contact"`
	AadharNumber     *string  `json:"aadhar_number"`
	PANNumber        *string  `json:"pan_number"`
	Degree           *string  `json:"degree"`
	EduBranch        *string  `json:"edu_branch"`
	Gradepoint       *float64 `json:"gradepoint"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLeave   AttendanceStatus = "Leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	default:
		return false
	}
}

type Attendance struct {
	EmployeeID     int64            `json:"employee_id"`
	AttendanceDate time.Time        `json:"attendance_date"`
	Status         AttendanceStatus `json:"status"`
	EmployeeName   string           `json:"employee_name,omitempty"`
}
