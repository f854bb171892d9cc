package repository

import (
	"errors"
	"time"

	"gdm-clinic/internal/domain/entity"
	domainRepo "gdm-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindActiveByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("PrimaryDoctor").Where("id = ? AND is_active = ?", id, true).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAllActive(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Preload("PrimaryDoctor").
		Where("is_active = ?", true).
		Order("last_name ASC, first_name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}

func (r *patientRepository) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *patientRepository) CountActiveByRiskLevel(db *gorm.DB, level entity.RiskLevel) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Where("is_active = ? AND risk_level = ?", true, level).
		Count(&count).Error
	return count, err
}

func (r *patientRepository) CountActiveCreatedSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).
		Where("is_active = ? AND created_at >= ?", true, since).
		Count(&count).Error
	return count, err
}
