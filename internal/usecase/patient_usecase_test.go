package usecase

import (
	"context"
	"testing"

	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPatientUsecaseForTest(patientRepo *MockPatientRepository, userRepo *MockUserRepository) PatientUsecase {
	if patientRepo == nil {
		patientRepo = new(MockPatientRepository)
	}
	if userRepo == nil {
		userRepo = new(MockUserRepository)
	}
	return NewPatientUsecase(nil, logrus.New(), patientRepo, userRepo,
		new(MockGlucoseReadingRepository), new(MockAppointmentRepository), noopAudit{})
}

func floatPtr(v float64) *float64 { return &v }

func TestPatientCreateComputesBMI(t *testing.T) {
	patientRepo := new(MockPatientRepository)
	patientRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
		return p.BMI != nil && *p.BMI == 25.39 && p.IsActive
	})).Return(nil)

	uc := newPatientUsecaseForTest(patientRepo, nil)

	result, err := uc.Create(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		HospitalNumber:     "HN-001",
		IDNumber:           "ID-001",
		FirstName:          "Jane",
		LastName:           "Doe",
		DateOfBirth:        "1995-04-12",
		PhoneNumber:        "0812345678",
		Height:             floatPtr(160),
		PrePregnancyWeight: floatPtr(65),
	})
	assert.NoError(t, err)
	assert.NotNil(t, result.BMI)
	assert.Equal(t, 25.39, *result.BMI)
	assert.Equal(t, "medium", result.RiskLevel)
	patientRepo.AssertExpectations(t)
}

func TestPatientCreateWithoutPrePregnancyWeightSkipsBMI(t *testing.T) {
	patientRepo := new(MockPatientRepository)
	patientRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
		return p.BMI == nil
	})).Return(nil)

	uc := newPatientUsecaseForTest(patientRepo, nil)

	result, err := uc.Create(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		HospitalNumber: "HN-002",
		IDNumber:       "ID-002",
		FirstName:      "Jane",
		LastName:       "Doe",
		DateOfBirth:    "1995-04-12",
		PhoneNumber:    "0812345678",
		Height:         floatPtr(160),
		CurrentWeight:  floatPtr(65),
	})
	assert.NoError(t, err)
	assert.Nil(t, result.BMI)
	patientRepo.AssertExpectations(t)
}

func TestPatientCreateDuplicateHospitalNumber(t *testing.T) {
	patientRepo := new(MockPatientRepository)
	patientRepo.On("Create", mock.Anything, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_patients_hospital_number",
	})

	uc := newPatientUsecaseForTest(patientRepo, nil)

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		HospitalNumber: "HN-001",
		IDNumber:       "ID-002",
		FirstName:      "Jane",
		LastName:       "Doe",
		DateOfBirth:    "1995-04-12",
		PhoneNumber:    "0812345678",
	})
	assert.ErrorIs(t, err, ErrHospitalNumberExists)
}

func TestPatientCreateInvalidDate(t *testing.T) {
	uc := newPatientUsecaseForTest(nil, nil)

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		HospitalNumber: "HN-001",
		IDNumber:       "ID-001",
		FirstName:      "Jane",
		LastName:       "Doe",
		DateOfBirth:    "12/04/1995",
		PhoneNumber:    "0812345678",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestPatientCreateUnknownDoctor(t *testing.T) {
	doctorID := uuid.New()

	userRepo := new(MockUserRepository)
	userRepo.On("FindActiveDoctor", mock.Anything, doctorID).Return(nil, nil)

	uc := newPatientUsecaseForTest(nil, userRepo)

	_, err := uc.Create(context.Background(), uuid.New(), &dto.CreatePatientRequest{
		HospitalNumber:  "HN-001",
		IDNumber:        "ID-001",
		FirstName:       "Jane",
		LastName:        "Doe",
		DateOfBirth:     "1995-04-12",
		PhoneNumber:     "0812345678",
		PrimaryDoctorID: &doctorID,
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestPatientUpdateRecomputesBMI(t *testing.T) {
	patient := &entity.Patient{
		ID:            uuid.New(),
		IsActive:      true,
		Height:        floatPtr(160),
		CurrentWeight: floatPtr(65),
		BMI:           floatPtr(25.39),
		RiskLevel:     entity.RiskMedium,
	}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindActiveByID", mock.Anything, patient.ID).Return(patient, nil)
	patientRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := newPatientUsecaseForTest(patientRepo, nil)

	result, err := uc.Update(context.Background(), uuid.New(), patient.ID, &dto.UpdatePatientRequest{
		Height:        floatPtr(160),
		CurrentWeight: floatPtr(70),
	})
	assert.NoError(t, err)
	assert.NotNil(t, result.BMI)
	assert.Equal(t, 27.34, *result.BMI)
}

func TestPatientUpdateWeightOnlyKeepsStoredBMI(t *testing.T) {
	patient := &entity.Patient{
		ID:            uuid.New(),
		IsActive:      true,
		Height:        floatPtr(160),
		CurrentWeight: floatPtr(65),
		BMI:           floatPtr(25.39),
		RiskLevel:     entity.RiskMedium,
	}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindActiveByID", mock.Anything, patient.ID).Return(patient, nil)
	patientRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	uc := newPatientUsecaseForTest(patientRepo, nil)

	result, err := uc.Update(context.Background(), uuid.New(), patient.ID, &dto.UpdatePatientRequest{
		CurrentWeight: floatPtr(70),
	})
	assert.NoError(t, err)
	assert.NotNil(t, result.BMI)
	assert.Equal(t, 25.39, *result.BMI)
}

func TestPatientDeactivateNotFound(t *testing.T) {
	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	uc := newPatientUsecaseForTest(patientRepo, nil)

	err := uc.Deactivate(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientStatistics(t *testing.T) {
	patientRepo := new(MockPatientRepository)
	patientRepo.On("CountActive", mock.Anything).Return(int64(42), nil)
	patientRepo.On("CountActiveByRiskLevel", mock.Anything, entity.RiskHigh).Return(int64(7), nil)
	patientRepo.On("CountActiveCreatedSince", mock.Anything, mock.Anything).Return(int64(5), nil)

	uc := newPatientUsecaseForTest(patientRepo, nil)

	stats, err := uc.Statistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.ActivePatients)
	assert.Equal(t, int64(7), stats.HighRiskPatients)
	assert.Equal(t, int64(5), stats.NewPatients)
}
