package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/internal/usecase"
	"gdm-clinic/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type stubGlucoseUsecase struct {
	usecase.GlucoseUsecase
	listCalled bool
	gotLimit   int
	gotOffset  int
}

func (s *stubGlucoseUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, filter *entity.ReadingFilter, limit, offset int) ([]dto.GlucoseReadingResponse, int64, error) {
	s.listCalled = true
	s.gotLimit = limit
	s.gotOffset = offset
	return []dto.GlucoseReadingResponse{}, 0, nil
}

func newReadingsByPatientRequest(query string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/glucose/patient/x"+query, nil)
	return mux.SetURLVars(req, map[string]string{"patientId": uuid.New().String()})
}

func TestGetReadingsByPatientRejectsBadLimit(t *testing.T) {
	stub := &stubGlucoseUsecase{}
	h := NewGlucoseHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetReadingsByPatient(rec, newReadingsByPatientRequest("?limit=abc"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.listCalled)
}

func TestGetReadingsByPatientRejectsNegativeOffset(t *testing.T) {
	stub := &stubGlucoseUsecase{}
	h := NewGlucoseHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetReadingsByPatient(rec, newReadingsByPatientRequest("?offset=-1"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, stub.listCalled)
}

func TestGetReadingsByPatientCapsOversizedLimit(t *testing.T) {
	stub := &stubGlucoseUsecase{}
	h := NewGlucoseHandler(stub, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.GetReadingsByPatient(rec, newReadingsByPatientRequest("?limit=500&offset=10"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.listCalled)
	assert.Equal(t, maxReadingPageLimit, stub.gotLimit)
	assert.Equal(t, 10, stub.gotOffset)
}
