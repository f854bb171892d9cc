package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/delivery/http/middleware"
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/internal/usecase"
	"gdm-clinic/pkg/response"
	"gdm-clinic/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	defaultReadingPageLimit = 50
	maxReadingPageLimit     = 200
)

type GlucoseHandler struct {
	glucoseUsecase usecase.GlucoseUsecase
	validator      *validator.CustomValidator
}

func NewGlucoseHandler(glucoseUsecase usecase.GlucoseUsecase, validator *validator.CustomValidator) *GlucoseHandler {
	return &GlucoseHandler{
		glucoseUsecase: glucoseUsecase,
		validator:      validator,
	}
}

// CreateReading handles recording a glucose measurement
// @Summary Record glucose reading
// @Description Record a glucose measurement; the abnormal flag is classified at creation
// @Tags Glucose
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGlucoseReadingRequest true "Create Reading Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /glucose [post]
func (h *GlucoseHandler) CreateReading(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateGlucoseReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reading, err := h.glucoseUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidReadingType:
			response.Error(w, http.StatusBadRequest, "Invalid reading type", nil)
		default:
			response.InternalServerError(w, "Failed to create glucose reading")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Glucose reading created successfully", reading)
}

// GetAllReadings handles listing glucose readings with optional filters
// @Summary List glucose readings
// @Description List readings filtered by patient, date range and abnormality
// @Tags Glucose
// @Security BearerAuth
// @Produce json
// @Param patientId query string false "Patient ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param isAbnormal query bool false "Abnormal readings only"
// @Success 200 {object} response.Response
// @Router /glucose [get]
func (h *GlucoseHandler) GetAllReadings(w http.ResponseWriter, r *http.Request) {
	filter, err := parseReadingFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	readings, err := h.glucoseUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list glucose readings")
		return
	}

	response.Success(w, http.StatusOK, "Glucose readings retrieved successfully", readings)
}

// GetReading handles getting a single reading
// @Summary Get glucose reading
// @Tags Glucose
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reading ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /glucose/{id} [get]
func (h *GlucoseHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reading ID", nil)
		return
	}

	reading, err := h.glucoseUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrReadingNotFound:
			response.NotFound(w, "Glucose reading not found")
		default:
			response.InternalServerError(w, "Failed to get glucose reading")
		}
		return
	}

	response.Success(w, http.StatusOK, "Glucose reading retrieved successfully", reading)
}

// GetReadingsByPatient handles listing one patient's readings, paginated
// @Summary List patient readings
// @Description One page of a patient's readings, newest first
// @Tags Glucose
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Param limit query int false "Page size (default 50, capped at 200)"
// @Param offset query int false "Page offset"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /glucose/patient/{patientId} [get]
func (h *GlucoseHandler) GetReadingsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	filter, err := parseReadingFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	limit := defaultReadingPageLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		// Oversized page requests are capped, not rejected.
		if v > maxReadingPageLimit {
			v = maxReadingPageLimit
		}
		limit = v
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid offset", nil)
			return
		}
		offset = v
	}

	readings, total, err := h.glucoseUsecase.ListByPatient(r.Context(), patientID, filter, limit, offset)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to list patient readings")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Glucose readings retrieved successfully", readings, &response.Meta{
		Limit:  limit,
		Offset: offset,
		Total:  total,
	})
}

// GetStatistics handles the per-patient glucose statistics
// @Summary Patient glucose statistics
// @Description 7-day summary plus a 14-day chart series
// @Tags Glucose
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /glucose/patient/{patientId}/statistics [get]
func (h *GlucoseHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	stats, err := h.glucoseUsecase.Statistics(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get glucose statistics")
		}
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

// UpdateReading handles editing a reading
// @Summary Update glucose reading
// @Description Edit a reading; the abnormal flag is never recomputed
// @Tags Glucose
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reading ID"
// @Param request body dto.UpdateGlucoseReadingRequest true "Update Reading Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /glucose/{id} [put]
func (h *GlucoseHandler) UpdateReading(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reading ID", nil)
		return
	}

	var req dto.UpdateGlucoseReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reading, err := h.glucoseUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrReadingNotFound:
			response.NotFound(w, "Glucose reading not found")
		case usecase.ErrInvalidReadingType:
			response.Error(w, http.StatusBadRequest, "Invalid reading type", nil)
		case usecase.ErrInvalidDateTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid datetime format, use RFC3339", nil)
		default:
			response.InternalServerError(w, "Failed to update glucose reading")
		}
		return
	}

	response.Success(w, http.StatusOK, "Glucose reading updated successfully", reading)
}

// DeleteReading handles removing a reading
// @Summary Delete glucose reading
// @Tags Glucose
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reading ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /glucose/{id} [delete]
func (h *GlucoseHandler) DeleteReading(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid reading ID", nil)
		return
	}

	if err := h.glucoseUsecase.Delete(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrReadingNotFound:
			response.NotFound(w, "Glucose reading not found")
		default:
			response.InternalServerError(w, "Failed to delete glucose reading")
		}
		return
	}

	response.Success(w, http.StatusOK, "Glucose reading deleted successfully", nil)
}

// parseReadingFilter builds a domain filter from query parameters. End dates
// are pushed to end-of-day so the range stays inclusive.
func parseReadingFilter(r *http.Request) (*entity.ReadingFilter, error) {
	filter := &entity.ReadingFilter{}
	query := r.URL.Query()

	if raw := query.Get("patientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("invalid patientId")
		}
		filter.PatientID = &id
	}
	if raw := query.Get("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, usecase.ErrInvalidDateFormat
		}
		filter.StartDate = &t
	}
	if raw := query.Get("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, usecase.ErrInvalidDateFormat
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}
	if raw := query.Get("isAbnormal"); raw != "" {
		v := raw == "true"
		filter.IsAbnormal = &v
	}

	return filter, nil
}
