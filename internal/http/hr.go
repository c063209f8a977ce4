package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/api/internal/db"
	"hrdesk/api/internal/employee"
	"hrdesk/api/internal/model"
)

func (s *Server) handleHRDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	e, err := s.directory.GetHRDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "HR not found")
			return
		}
		writeStoreError(w, "get hr detail", err)
		return
	}
	writeResult(w, viewEmployee(e))
}

func (s *Server) handlePresentDays(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := pathID(r, "employee_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month")
		return
	}
	items, err := s.directory.ListPresentDays(r.Context(), db.ListPresentDaysParams{EmployeeID: employeeID, Month: month})
	if err != nil {
		writeStoreError(w, "list present days", err)
		return
	}
	writeResult(w, items)
}

func (s *Server) handleUpdateSalary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	form, err := s.readEmployeeForm(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid salary input")
		return
	}
	defer form.Close()

	if err := s.employees.UpdateSalary(r.Context(), id, form.values["salary"]); err != nil {
		var validation *employee.ValidationError
		if errors.As(err, &validation) {
			writeError(w, http.StatusBadRequest, "Invalid salary input")
			return
		}
		writeEmployeeError(w, "update salary", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: true})
}

type markAttendanceRequest struct {
	EmployeeID     int64  `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req markAttendanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.EmployeeID <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid employee id")
		return
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.AttendanceDate))
	if err != nil {
		writeError(w, http.StatusBadRequest, "attendance_date must be YYYY-MM-DD")
		return
	}
	status := model.AttendanceStatus(req.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "status must be Present, Absent or Leave")
		return
	}

	err = s.directory.MarkAttendance(r.Context(), db.MarkAttendanceParams{
		EmployeeID:     req.EmployeeID,
		AttendanceDate: date,
		Status:         status,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Employee not found")
			return
		}
		writeStoreError(w, "mark attendance", err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Status: true})
}
