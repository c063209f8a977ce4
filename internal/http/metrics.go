package http

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hrdesk_login_attempts_total",
	Help: "Login attempts by scope and outcome.",
}, []string{"scope", "outcome"})

func loginScope(r *http.Request) string {
	if strings.HasPrefix(r.URL.Path, "/hr/") {
		return "hr"
	}
	return "admin"
}
