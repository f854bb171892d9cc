package repository

import (
	"errors"
	"time"

	"gdm-clinic/internal/domain/entity"
	domainRepo "gdm-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type glucoseReadingRepository struct{}

func NewGlucoseReadingRepository() domainRepo.GlucoseReadingRepository {
	return &glucoseReadingRepository{}
}

func (r *glucoseReadingRepository) Create(db *gorm.DB, reading *entity.GlucoseReading) error {
	return db.Create(reading).Error
}

func (r *glucoseReadingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.GlucoseReading, error) {
	var reading entity.GlucoseReading
	err := db.Preload("Patient").Where("id = ?", id).First(&reading).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reading, nil
}

func applyReadingFilter(query *gorm.DB, filter *entity.ReadingFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.StartDate != nil {
		query = query.Where("reading_date_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("reading_date_time <= ?", *filter.EndDate)
	}
	if filter.IsAbnormal != nil {
		query = query.Where("is_abnormal = ?", *filter.IsAbnormal)
	}
	return query
}

func (r *glucoseReadingRepository) FindAll(db *gorm.DB, filter *entity.ReadingFilter) ([]entity.GlucoseReading, error) {
	var readings []entity.GlucoseReading
	err := applyReadingFilter(db, filter).
		Preload("Patient").
		Order("reading_date_time DESC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *glucoseReadingRepository) FindPageByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.ReadingFilter, limit, offset int) ([]entity.GlucoseReading, int64, error) {
	query := applyReadingFilter(db.Model(&entity.GlucoseReading{}), filter).
		Where("patient_id = ?", patientID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var readings []entity.GlucoseReading
	err := query.
		Order("reading_date_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&readings).Error
	if err != nil {
		return nil, 0, err
	}
	return readings, total, nil
}

func (r *glucoseReadingRepository) FindRecentByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.GlucoseReading, error) {
	var readings []entity.GlucoseReading
	err := db.Where("patient_id = ?", patientID).
		Order("reading_date_time DESC").
		Limit(limit).
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *glucoseReadingRepository) FindByPatientSince(db *gorm.DB, patientID uuid.UUID, since time.Time) ([]entity.GlucoseReading, error) {
	var readings []entity.GlucoseReading
	err := db.Where("patient_id = ? AND reading_date_time >= ?", patientID, since).
		Order("reading_date_time ASC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}

func (r *glucoseReadingRepository) Update(db *gorm.DB, reading *entity.GlucoseReading) error {
	return db.Save(reading).Error
}

func (r *glucoseReadingRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.GlucoseReading{})
	return result.RowsAffected, result.Error
}
