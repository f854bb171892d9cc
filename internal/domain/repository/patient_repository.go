package repository

import (
	"time"

	"gdm-clinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	// FindActiveByID returns nil when the patient is missing or soft-deleted.
	FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// FindByID also returns soft-deleted patients; used by the delete path.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// FindAllActive returns active patients with their primary doctor preloaded.
	FindAllActive(db *gorm.DB) ([]entity.Patient, error)
	Update(db *gorm.DB, patient *entity.Patient) error

	CountActive(db *gorm.DB) (int64, error)
	CountActiveByRiskLevel(db *gorm.DB, level entity.RiskLevel) (int64, error)
	CountActiveCreatedSince(db *gorm.DB, since time.Time) (int64, error)
}
