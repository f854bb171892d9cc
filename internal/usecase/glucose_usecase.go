package usecase

import (
	"context"
	"time"

	"gdm-clinic/internal/delivery/converter"
	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/internal/domain/repository"
	"gdm-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	statsWindowDays = 7
	chartWindowDays = 14
)

type GlucoseUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateGlucoseReadingRequest) (*dto.GlucoseReadingResponse, error)
	List(ctx context.Context, filter *entity.ReadingFilter) ([]dto.GlucoseReadingResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.GlucoseReadingResponse, error)
	// ListByPatient returns one page of a patient's readings plus the total.
	ListByPatient(ctx context.Context, patientID uuid.UUID, filter *entity.ReadingFilter, limit, offset int) ([]dto.GlucoseReadingResponse, int64, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateGlucoseReadingRequest) (*dto.GlucoseReadingResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	// Statistics summarizes the last 7 days and charts the last 14.
	Statistics(ctx context.Context, patientID uuid.UUID) (*dto.GlucoseStatisticsResponse, error)
}

type glucoseUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	readingRepo repository.GlucoseReadingRepository
	patientRepo repository.PatientRepository
	audit       service.AuditService
}

func NewGlucoseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	readingRepo repository.GlucoseReadingRepository,
	patientRepo repository.PatientRepository,
	audit service.AuditService,
) GlucoseUsecase {
	return &glucoseUsecase{
		db:          db,
		log:         log,
		readingRepo: readingRepo,
		patientRepo: patientRepo,
		audit:       audit,
	}
}

func (u *glucoseUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateGlucoseReadingRequest) (*dto.GlucoseReadingResponse, error) {
	readingType := entity.ReadingType(req.ReadingType)
	if !readingType.IsValid() {
		return nil, ErrInvalidReadingType
	}

	patient, err := u.patientRepo.FindActiveByID(u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// The abnormal flag is classified once at creation and stays fixed even
	// if the thresholds or the reading are later edited.
	reading := &entity.GlucoseReading{
		PatientID:       req.PatientID,
		ReadingDateTime: time.Now(),
		GlucoseLevel:    req.GlucoseLevel,
		ReadingType:     readingType,
		Notes:           req.Notes,
		IsAbnormal:      entity.ClassifyGlucose(readingType, req.GlucoseLevel),
		RecordedBy:      &actorID,
	}

	if err := u.readingRepo.Create(u.db, reading); err != nil {
		u.log.Warnf("Failed to create glucose reading: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionGlucoseCreate, "glucose_reading", reading.ID.String(), map[string]interface{}{
		"patientId":    reading.PatientID.String(),
		"glucoseLevel": reading.GlucoseLevel,
		"isAbnormal":   reading.IsAbnormal,
	})

	reading.Patient = patient
	return converter.GlucoseReadingToResponse(reading), nil
}

func (u *glucoseUsecase) List(ctx context.Context, filter *entity.ReadingFilter) ([]dto.GlucoseReadingResponse, error) {
	readings, err := u.readingRepo.FindAll(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list glucose readings: %+v", err)
		return nil, err
	}

	return converter.GlucoseReadingsToResponses(readings), nil
}

func (u *glucoseUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.GlucoseReadingResponse, error) {
	reading, err := u.readingRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find glucose reading by ID: %+v", err)
		return nil, err
	}
	if reading == nil {
		return nil, ErrReadingNotFound
	}

	return converter.GlucoseReadingToResponse(reading), nil
}

func (u *glucoseUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, filter *entity.ReadingFilter, limit, offset int) ([]dto.GlucoseReadingResponse, int64, error) {
	patient, err := u.patientRepo.FindActiveByID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, 0, err
	}
	if patient == nil {
		return nil, 0, ErrPatientNotFound
	}

	readings, total, err := u.readingRepo.FindPageByPatient(u.db, patientID, filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list patient readings: %+v", err)
		return nil, 0, err
	}

	return converter.GlucoseReadingsToResponses(readings), total, nil
}

func (u *glucoseUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateGlucoseReadingRequest) (*dto.GlucoseReadingResponse, error) {
	reading, err := u.readingRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find glucose reading by ID: %+v", err)
		return nil, err
	}
	if reading == nil {
		return nil, ErrReadingNotFound
	}

	if req.GlucoseLevel != nil {
		reading.GlucoseLevel = *req.GlucoseLevel
	}
	if req.ReadingType != nil {
		readingType := entity.ReadingType(*req.ReadingType)
		if !readingType.IsValid() {
			return nil, ErrInvalidReadingType
		}
		reading.ReadingType = readingType
	}
	if req.Notes != nil {
		reading.Notes = *req.Notes
	}
	if req.ReadingDateTime != nil {
		t, err := time.Parse(time.RFC3339, *req.ReadingDateTime)
		if err != nil {
			return nil, ErrInvalidDateTimeFormat
		}
		reading.ReadingDateTime = t
	}

	if err := u.readingRepo.Update(u.db, reading); err != nil {
		u.log.Warnf("Failed to update glucose reading: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionGlucoseUpdate, "glucose_reading", reading.ID.String(), nil)

	return converter.GlucoseReadingToResponse(reading), nil
}

func (u *glucoseUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	rowsAffected, err := u.readingRepo.Delete(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete glucose reading: %+v", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrReadingNotFound
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionGlucoseDelete, "glucose_reading", id.String(), nil)

	return nil
}

func (u *glucoseUsecase) Statistics(ctx context.Context, patientID uuid.UUID) (*dto.GlucoseStatisticsResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	now := time.Now()
	chartSince := now.AddDate(0, 0, -chartWindowDays)
	statsSince := now.AddDate(0, 0, -statsWindowDays)

	// One query covers both windows; the 7-day stats are carved out below.
	chartReadings, err := u.readingRepo.FindByPatientSince(u.db, patientID, chartSince)
	if err != nil {
		u.log.Warnf("Failed to load readings for statistics: %+v", err)
		return nil, err
	}

	stats := &dto.GlucoseStatisticsResponse{
		ChartData: make([]dto.GlucoseChartPoint, 0, len(chartReadings)),
	}

	var sum float64
	for i := range chartReadings {
		r := &chartReadings[i]
		stats.ChartData = append(stats.ChartData, converter.GlucoseReadingToChartPoint(r))

		if r.ReadingDateTime.Before(statsSince) {
			continue
		}
		stats.TotalReadings++
		sum += r.GlucoseLevel
		if r.GlucoseLevel > stats.MaxGlucose {
			stats.MaxGlucose = r.GlucoseLevel
		}
		if stats.MinGlucose == 0 || r.GlucoseLevel < stats.MinGlucose {
			stats.MinGlucose = r.GlucoseLevel
		}
		if r.IsAbnormal {
			stats.AbnormalCount++
		}
	}

	if stats.TotalReadings > 0 {
		stats.AverageGlucose = roundTwo(sum / float64(stats.TotalReadings))
		stats.AbnormalPercentage = roundTwo(float64(stats.AbnormalCount) / float64(stats.TotalReadings) * 100)
	}

	return stats, nil
}

func roundTwo(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
