package usecase

import (
	"time"

	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// noopAudit satisfies service.AuditService; audit writes are best-effort so
// tests only need them to not panic.
type noopAudit struct{}

func (noopAudit) LogAction(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, details interface{}) {
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	args := m.Called(db, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindActiveDoctor(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

// MockPatientRepository is a mock implementation of repository.PatientRepository
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAllActive(db *gorm.DB) ([]entity.Patient, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) CountActive(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) CountActiveByRiskLevel(db *gorm.DB, level entity.RiskLevel) (int64, error) {
	args := m.Called(db, level)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) CountActiveCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	args := m.Called(db, since)
	return args.Get(0).(int64), args.Error(1)
}

// MockGlucoseReadingRepository is a mock implementation of repository.GlucoseReadingRepository
type MockGlucoseReadingRepository struct {
	mock.Mock
}

func (m *MockGlucoseReadingRepository) Create(db *gorm.DB, reading *entity.GlucoseReading) error {
	args := m.Called(db, reading)
	return args.Error(0)
}

func (m *MockGlucoseReadingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.GlucoseReading, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GlucoseReading), args.Error(1)
}

func (m *MockGlucoseReadingRepository) FindAll(db *gorm.DB, filter *entity.ReadingFilter) ([]entity.GlucoseReading, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GlucoseReading), args.Error(1)
}

func (m *MockGlucoseReadingRepository) FindPageByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.ReadingFilter, limit, offset int) ([]entity.GlucoseReading, int64, error) {
	args := m.Called(db, patientID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.GlucoseReading), args.Get(1).(int64), args.Error(2)
}

func (m *MockGlucoseReadingRepository) FindRecentByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.GlucoseReading, error) {
	args := m.Called(db, patientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GlucoseReading), args.Error(1)
}

func (m *MockGlucoseReadingRepository) FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.GlucoseReading, error) {
	args := m.Called(db, patientID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GlucoseReading), args.Error(1)
}

func (m *MockGlucoseReadingRepository) Update(db *gorm.DB, reading *entity.GlucoseReading) error {
	args := m.Called(db, reading)
	return args.Error(0)
}

func (m *MockGlucoseReadingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of repository.AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByIDWithJoins(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(db, patientID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctor(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindScheduledByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.Appointment, error) {
	args := m.Called(db, patientID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}
