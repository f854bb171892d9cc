package repository

import (
	"time"

	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GlucoseReadingRepository interface {
	Create(db *gorm.DB, reading *entity.GlucoseReading) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.GlucoseReading, error)
	// FindAll returns readings matching the filter with the patient preloaded,
	// newest first.
	FindAll(db *gorm.DB, filter *entity.ReadingFilter) ([]entity.GlucoseReading, error)
	// FindPageByPatient returns one page of a patient's readings (newest
	// first) plus the total count for the filter.
	FindPageByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.ReadingFilter, limit, offset int) ([]entity.GlucoseReading, int64, error)
	// FindRecentByPatient returns the patient's newest readings, capped at limit.
	FindRecentByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.GlucoseReading, error)
	// FindByPatientSince returns readings at or after since, oldest first.
	FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.GlucoseReading, error)
	Update(db *gorm.DB, reading *entity.GlucoseReading) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
