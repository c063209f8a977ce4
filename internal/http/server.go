package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hrdesk/api/internal/account"
	"hrdesk/api/internal/auth"
	"hrdesk/api/internal/config"
	"hrdesk/api/internal/dashboard"
	"hrdesk/api/internal/db"
	"hrdesk/api/internal/images"
	"hrdesk/api/internal/model"
)

type Verifier interface {
	Verify(ctx context.Context, scope account.Scope, email, password string) (auth.Claims, error)
}

type Employees interface {
	Create(ctx context.Context, values map[string]string, upload *images.Upload) (int64, error)
	Update(ctx context.Context, id int64, values map[string]string, upload *images.Upload) error
	UpdateSalary(ctx context.Context, id int64, raw string) error
	Delete(ctx context.Context, id int64) error
}

// Directory is the read side of the store plus the small writes that need no
// domain logic.
type Directory interface {
	ListDepartments(ctx context.Context) ([]model.Department, error)
	CreateDepartment(ctx context.Context, name string) (model.Department, error)
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	ListEmployeesByDept(ctx context.Context, deptID int64) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id int64) (model.Employee, error)
	GetHRDetail(ctx context.Context, id int64) (model.Employee, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	ListAttendanceByDept(ctx context.Context, deptID int64) ([]model.Attendance, error)
	ListPresentDays(ctx context.Context, arg db.ListPresentDaysParams) ([]model.Attendance, error)
	MarkAttendance(ctx context.Context, arg db.MarkAttendanceParams) error
}

type Dashboard interface {
	Counts(ctx context.Context) (dashboard.Counts, error)
}

type Deps struct {
	Verifier  Verifier
	Employees Employees
	Directory Directory
	Dashboard Dashboard
}

type Server struct {
	cfg       config.Config
	issuer    *auth.Issuer
	verifier  Verifier
	employees Employees
	directory Directory
	dashboard Dashboard
	limiter   *RateLimiter
}

func NewServer(cfg config.Config, deps Deps) *Server {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
	}
	return &Server{
		cfg:       cfg,
		issuer:    auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer),
		verifier:  deps.Verifier,
		employees: deps.Employees,
		directory: deps.Directory,
		dashboard: deps.Dashboard,
		limiter: NewRateLimiter(RateLimitConfig{
			IPPerMinute: cfg.LoginRatePerMinute,
			IPBurst:     cfg.LoginRateBurst,
		}),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if s.cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(requestID)
	r.Use(LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.cfg.CORSOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/Images/*", http.StripPrefix("/Images/", http.FileServer(http.Dir(s.cfg.ImageDir))))

	r.Route("/admin", func(r chi.Router) {
		r.With(s.limiter.Middleware).Post("/adminlogin", s.handleAdminLogin)
		r.Get("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate, requireRole(auth.RoleAdmin))

			r.Get("/dept", s.handleListDepartments)
			r.Post("/add_dept", s.handleAddDepartment)

			r.Post("/add_employee", s.handleAddEmployee)
			r.Put("/edit_employee/{id}", s.handleEditEmployee)
			r.Delete("/delete_employee/{id}", s.handleDeleteEmployee)
			r.Get("/employee", s.handleListEmployees)
			r.Get("/employee/{id}", s.handleGetEmployee)
			r.Get("/employee/dept/{dept_id}", s.handleListEmployeesByDept)

			r.Get("/admin_count", s.handleAdminCount)
			r.Get("/employee_count", s.handleEmployeeCount)
			r.Get("/salary_count", s.handleSalaryCount)
			r.Get("/admin_records", s.handleAdminRecords)

			r.Get("/attendance/dept/{dept_id}", s.handleAttendanceByDept)
		})
	})

	r.Route("/hr", func(r chi.Router) {
		r.With(s.limiter.Middleware).Post("/HR_login", s.handleHRLogin)
		r.Get("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate, requireRole(auth.RoleHR, auth.RoleAdmin))

			r.Get("/detail/{id}", s.handleHRDetail)
			r.Get("/attendance/present/{employee_id}/{month}", s.handlePresentDays)
			r.Post("/update_salary/{id}", s.handleUpdateSalary)
			r.Post("/mark_attendance", s.handleMarkAttendance)
		})
	})

	return r
}

// envelope is the response shape every non-login endpoint answers with.
type envelope struct {
	Status  bool        `json:"Status"`
	Result  interface{} `json:"Result,omitempty"`
	Message string      `json:"Message,omitempty"`
	Error   string      `json:"Error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeResult(w http.ResponseWriter, result interface{}) {
	writeJSON(w, http.StatusOK, envelope{Status: true, Result: result})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Status: false, Error: message})
}

func decodeJSON(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func sessionCookie(token string, secure, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:    "token",
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
