package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hrdesk/api/internal/employee"
	"hrdesk/api/internal/model"
)

// employeeView renders dept_id as a string, the shape existing clients bind to.
type employeeView struct {
	model.Employee
	DeptID *string `json:"dept_id"`
}

func viewEmployee(e model.Employee) employeeView {
	view := employeeView{Employee: e}
	if e.DeptID != nil {
		id := strconv.FormatInt(*e.DeptID, 10)
		view.DeptID = &id
	}
	return view
}

func viewEmployees(items []model.Employee) []employeeView {
	out := make([]employeeView, 0, len(items))
	for _, e := range items {
		out = append(out, viewEmployee(e))
	}
	return out
}

// writeStoreError logs err and answers with a message that carries no store detail.
func writeStoreError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s error: %v", op, err)
	writeError(w, http.StatusInternalServerError, "Query Error")
}

// writeEmployeeError maps employee write failures to the envelope.
func writeEmployeeError(w http.ResponseWriter, op string, err error) {
	var validation *employee.ValidationError
	switch {
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, "No fields to update")
	case errors.As(err, &validation):
		writeError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "Employee not found")
	default:
		writeStoreError(w, op, err)
	}
}

func (s *Server) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	items, err := s.directory.ListDepartments(r.Context())
	if err != nil {
		writeStoreError(w, "list departments", err)
		return
	}
	writeResult(w, items)
}

type addDepartmentRequest struct {
	Dept string `json:"dept"`
}

func (s *Server) handleAddDepartment(w http.ResponseWriter, r *http.Request) {
	var req addDepartmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	req.Dept = strings.TrimSpace(req.Dept)
	if req.Dept == "" {
		writeError(w, http.StatusBadRequest, "Department name is required")
		return
	}
	dept, err := s.directory.CreateDepartment(r.Context(), req.Dept)
	if err != nil {
		writeStoreError(w, "create department", err)
		return
	}
	writeResult(w, dept)
}

func (s *Server) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	form, err := s.readEmployeeForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer form.Close()

	id, err := s.employees.Create(r.Context(), form.values, form.upload)
	if err != nil {
		writeEmployeeError(w, "create employee", err)
		return
	}
	writeResult(w, map[string]int64{"id": id})
}

func (s *Server) handleEditEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	form, err := s.readEmployeeForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer form.Close()

	if err := s.employees.Update(r.Context(), id, form.values, form.upload); err != nil {
		writeEmployeeError(w, "update employee", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: true, Message: "Employee updated"})
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	if err := s.employees.Delete(r.Context(), id); err != nil {
		writeEmployeeError(w, "delete employee", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: true, Message: "Employee deleted"})
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	items, err := s.directory.ListEmployees(r.Context())
	if err != nil {
		writeStoreError(w, "list employees", err)
		return
	}
	writeResult(w, viewEmployees(items))
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	e, err := s.directory.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Employee not found")
			return
		}
		writeStoreError(w, "get employee", err)
		return
	}
	writeResult(w, viewEmployee(e))
}

func (s *Server) handleListEmployeesByDept(w http.ResponseWriter, r *http.Request) {
	deptID, ok := pathID(r, "dept_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid department id")
		return
	}
	items, err := s.directory.ListEmployeesByDept(r.Context(), deptID)
	if err != nil {
		writeStoreError(w, "list employees by dept", err)
		return
	}
	writeResult(w, viewEmployees(items))
}

func (s *Server) handleAdminCount(w http.ResponseWriter, r *http.Request) {
	counts, err := s.dashboard.Counts(r.Context())
	if err != nil {
		writeStoreError(w, "admin count", err)
		return
	}
	writeResult(w, []map[string]int64{{"admin": counts.Admins}})
}

func (s *Server) handleEmployeeCount(w http.ResponseWriter, r *http.Request) {
	counts, err := s.dashboard.Counts(r.Context())
	if err != nil {
		writeStoreError(w, "employee count", err)
		return
	}
	writeResult(w, []map[string]int64{{"employee": counts.Employees}})
}

func (s *Server) handleSalaryCount(w http.ResponseWriter, r *http.Request) {
	counts, err := s.dashboard.Counts(r.Context())
	if err != nil {
		writeStoreError(w, "salary count", err)
		return
	}
	writeResult(w, []map[string]float64{{"salaryOFEmp": counts.SalaryTotal}})
}

func (s *Server) handleAdminRecords(w http.ResponseWriter, r *http.Request) {
	items, err := s.directory.ListAdmins(r.Context())
	if err != nil {
		writeStoreError(w, "list admins", err)
		return
	}
	writeResult(w, items)
}

func (s *Server) handleAttendanceByDept(w http.ResponseWriter, r *http.Request) {
	deptID, ok := pathID(r, "dept_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid department id")
		return
	}
	items, err := s.directory.ListAttendanceByDept(r.Context(), deptID)
	if err != nil {
		writeStoreError(w, "list attendance by dept", err)
		return
	}
	writeResult(w, items)
}
