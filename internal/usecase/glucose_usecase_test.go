package usecase

import (
	"context"
	"testing"

	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGlucoseCreateClassifiesAbnormal(t *testing.T) {
	actorID := uuid.New()
	patient := &entity.Patient{ID: uuid.New(), IsActive: true}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindActiveByID", mock.Anything, patient.ID).Return(patient, nil)

	readingRepo := new(MockGlucoseReadingRepository)
	readingRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.GlucoseReading) bool {
		return r.IsAbnormal && r.RecordedBy != nil && *r.RecordedBy == actorID
	})).Return(nil)

	uc := NewGlucoseUsecase(nil, logrus.New(), readingRepo, patientRepo, noopAudit{})

	result, err := uc.Create(context.Background(), actorID, &dto.CreateGlucoseReadingRequest{
		PatientID:    patient.ID,
		GlucoseLevel: 96,
		ReadingType:  "fasting",
	})
	assert.NoError(t, err)
	assert.True(t, result.IsAbnormal)
	readingRepo.AssertExpectations(t)
}

func TestGlucoseCreateNormalReading(t *testing.T) {
	actorID := uuid.New()
	patient := &entity.Patient{ID: uuid.New(), IsActive: true}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindActiveByID", mock.Anything, patient.ID).Return(patient, nil)

	readingRepo := new(MockGlucoseReadingRepository)
	readingRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.GlucoseReading) bool {
		return !r.IsAbnormal
	})).Return(nil)

	uc := NewGlucoseUsecase(nil, logrus.New(), readingRepo, patientRepo, noopAudit{})

	result, err := uc.Create(context.Background(), actorID, &dto.CreateGlucoseReadingRequest{
		PatientID:    patient.ID,
		GlucoseLevel: 140,
		ReadingType:  "after_meal",
	})
	assert.NoError(t, err)
	assert.False(t, result.IsAbnormal)
}

func TestGlucoseCreateInactivePatient(t *testing.T) {
	patientID := uuid.New()

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindActiveByID", mock.Anything, patientID).Return(nil, nil)

	readingRepo := new(MockGlucoseReadingRepository)

	uc := NewGlucoseUsecase(nil, logrus.New(), readingRepo, patientRepo, noopAudit{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateGlucoseReadingRequest{
		PatientID:    patientID,
		GlucoseLevel: 110,
		ReadingType:  "fasting",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
	readingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGlucoseCreateInvalidReadingType(t *testing.T) {
	uc := NewGlucoseUsecase(nil, logrus.New(), new(MockGlucoseReadingRepository), new(MockPatientRepository), noopAudit{})

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreateGlucoseReadingRequest{
		PatientID:    uuid.New(),
		GlucoseLevel: 110,
		ReadingType:  "postprandial",
	})
	assert.ErrorIs(t, err, ErrInvalidReadingType)
}

func TestGlucoseUpdateDoesNotReclassify(t *testing.T) {
	reading := &entity.GlucoseReading{
		ID:           uuid.New(),
		GlucoseLevel: 96,
		ReadingType:  entity.ReadingFasting,
		IsAbnormal:   true,
	}

	readingRepo := new(MockGlucoseReadingRepository)
	readingRepo.On("FindByID", mock.Anything, reading.ID).Return(reading, nil)
	readingRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := NewGlucoseUsecase(nil, logrus.New(), readingRepo, new(MockPatientRepository), noopAudit{})

	// Dropping the level well under the threshold must not clear the flag.
	newLevel := 80.0
	result, err := uc.Update(context.Background(), uuid.New(), reading.ID, &dto.UpdateGlucoseReadingRequest{
		GlucoseLevel: &newLevel,
	})
	assert.NoError(t, err)
	assert.True(t, result.IsAbnormal)
	assert.Equal(t, 80.0, result.GlucoseLevel)
}

func TestGlucoseDeleteNotFound(t *testing.T) {
	readingRepo := new(MockGlucoseReadingRepository)
	readingRepo.On("Delete", mock.Anything, mock.Anything).Return(int64(0), nil)

	uc := NewGlucoseUsecase(nil, logrus.New(), readingRepo, new(MockPatientRepository), noopAudit{})

	err := uc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrReadingNotFound)
}

func TestGlucoseStatisticsEmptyWindow(t *testing.T) {
	patient := &entity.Patient{ID: uuid.New(), IsActive: true}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindActiveByID", mock.Anything, patient.ID).Return(patient, nil)

	readingRepo := new(MockGlucoseReadingRepository)
	readingRepo.On("FindByPatientSince", mock.Anything, patient.ID, mock.Anything).
		Return([]entity.GlucoseReading{}, nil)

	uc := NewGlucoseUsecase(nil, logrus.New(), readingRepo, patientRepo, noopAudit{})

	stats, err := uc.Statistics(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReadings)
	assert.Equal(t, 0.0, stats.AverageGlucose)
	assert.Equal(t, 0.0, stats.MinGlucose)
	assert.Empty(t, stats.ChartData)
}
