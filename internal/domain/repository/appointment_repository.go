package repository

import (
	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindByIDWithJoins preloads patient, doctor and creator.
	FindByIDWithJoins(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindAll returns appointments matching the filter, restricted to active
	// patients, with patient and doctor preloaded, ordered by date then time.
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByDoctor(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindScheduledByPatient returns the patient's next scheduled
	// appointments, earliest first, capped at limit.
	FindScheduledByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
