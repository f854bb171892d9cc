package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gdm-clinic/internal/delivery/http/middleware"
	"gdm-clinic/internal/usecase"
	"gdm-clinic/pkg/validator"

	"github.com/stretchr/testify/assert"
)

type stubAuthUsecase struct {
	usecase.AuthUsecase
	logoutCalled bool
}

func (s *stubAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	s.logoutCalled = true
	return nil
}

func newLogoutRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", strings.NewReader(body))
	return req.WithContext(context.WithValue(req.Context(), middleware.TokenIDKey, "token-id"))
}

func TestLogoutRejectsMalformedBody(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, newLogoutRequest("{not json"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.logoutCalled)
}

func TestLogoutAllowsEmptyBody(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, validator.NewValidator(), nil)

	rec := httptest.NewRecorder()
	h.Logout(rec, newLogoutRequest(""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.logoutCalled)
}
