package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func TestRouteSurface(t *testing.T) {
	router := NewRouter(nil, nil, nil, nil, nil, nil, nil, nil).Setup()
	id := uuid.New().String()

	matched := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/login"},
		{http.MethodPost, "/api/auth/refresh-token"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodPut, "/api/auth/change-password"},
		{http.MethodGet, "/api/patients"},
		{http.MethodGet, "/api/patients/statistics"},
		{http.MethodDelete, "/api/patients/" + id},
		{http.MethodGet, "/api/glucose"},
		{http.MethodPost, "/api/glucose"},
		{http.MethodPut, "/api/glucose/" + id},
		{http.MethodDelete, "/api/glucose/" + id},
		{http.MethodGet, "/api/glucose/patient/" + id},
		{http.MethodGet, "/api/glucose/patient/" + id + "/statistics"},
		{http.MethodGet, "/api/appointments/upcoming"},
		{http.MethodGet, "/api/appointments/today"},
		{http.MethodGet, "/api/appointments/patient/" + id},
		{http.MethodGet, "/api/appointments/doctor/" + id},
		{http.MethodPut, "/api/appointments/" + id + "/cancel"},
		{http.MethodPut, "/api/users/" + id + "/reset-password"},
		{http.MethodGet, "/api/audit-logs"},
		{http.MethodGet, "/api/health"},
	}
	for _, tc := range matched {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var m mux.RouteMatch
		assert.True(t, router.Match(req, &m), "%s %s should be routed", tc.method, tc.path)
	}

	unmatched := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/glucose-readings"},
		{http.MethodGet, "/api/glucose/statistics/" + id},
		{http.MethodPost, "/api/appointments/" + id + "/cancel"},
		{http.MethodPost, "/api/users/" + id + "/reset-password"},
		{http.MethodPost, "/api/auth/change-password"},
	}
	for _, tc := range unmatched {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var m mux.RouteMatch
		assert.False(t, router.Match(req, &m), "%s %s should not be routed", tc.method, tc.path)
	}
}
