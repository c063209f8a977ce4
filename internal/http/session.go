package http

import (
	"errors"
	"log"
	"net/http"

	"hrdesk/api/internal/account"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	LoginStatus bool   `json:"loginStatus"`
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Error       string `json:"Error,omitempty"`
}

type loginMessages struct {
	invalidEmail string
}

var (
	adminLogin = loginMessages{invalidEmail: "Email not found"}
	hrLogin    = loginMessages{invalidEmail: "Not an HR or invalid email"}
)

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, account.ScopeAdmin, adminLogin, false)
}

// HR sessions are HttpOnly and follow the secure cookie setting.
func (s *Server) handleHRLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, account.ScopeHR, hrLogin, true)
}

// login answers 200 with loginStatus false on every credential failure; clients
// branch on the envelope, not the status code.
func (s *Server) login(w http.ResponseWriter, r *http.Request, scope account.Scope, msgs loginMessages, hardened bool) {
	scopeLabel := loginScope(r)

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		loginAttempts.WithLabelValues(scopeLabel, "bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, loginResponse{Error: "Invalid request"})
		return
	}

	claims, err := s.verifier.Verify(r.Context(), scope, req.Email, req.Password)
	if err != nil {
		var storeErr *account.StoreError
		outcome, message := "error", "Password comparison error"
		switch {
		case errors.Is(err, account.ErrMissingCredentials):
			outcome, message = "invalid", "Email and password are required"
		case errors.Is(err, account.ErrInvalidEmail):
			outcome, message = "invalid", msgs.invalidEmail
		case errors.Is(err, account.ErrWrongPassword):
			outcome, message = "invalid", "Wrong password"
		case errors.As(err, &storeErr):
			message = "Query error"
			log.Printf("login store error scope=%s: %v", scopeLabel, err)
		default:
			log.Printf("login verify error scope=%s: %v", scopeLabel, err)
		}
		loginAttempts.WithLabelValues(scopeLabel, outcome).Inc()
		writeJSON(w, http.StatusOK, loginResponse{LoginStatus: false, Error: message})
		return
	}

	token, err := s.issuer.Issue(claims)
	if err != nil {
		log.Printf("login token error scope=%s: %v", scopeLabel, err)
		loginAttempts.WithLabelValues(scopeLabel, "error").Inc()
		writeJSON(w, http.StatusOK, loginResponse{LoginStatus: false, Error: "Token error"})
		return
	}

	if hardened {
		http.SetCookie(w, sessionCookie(token, s.cfg.SecureCookies, true))
	} else {
		http.SetCookie(w, sessionCookie(token, false, false))
	}
	loginAttempts.WithLabelValues(scopeLabel, "success").Inc()
	writeJSON(w, http.StatusOK, loginResponse{
		LoginStatus: true,
		ID:          claims.ID,
		Name:        claims.Name,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, expiredCookie())
	writeJSON(w, http.StatusOK, envelope{Status: true})
}
