package repository

import (
	"errors"

	"gdm-clinic/internal/domain/entity"
	domainRepo "gdm-clinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByIDWithJoins(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Preload("Creator").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func applyAppointmentFilter(query *gorm.DB, filter *entity.AppointmentFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.StartDate != nil {
		query = query.Where("appointments.appointment_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("appointments.appointment_date <= ?", *filter.EndDate)
	}
	if filter.Date != nil {
		query = query.Where("appointments.appointment_date = ?", *filter.Date)
	}
	if filter.Status != nil {
		query = query.Where("appointments.status = ?", *filter.Status)
	}
	if filter.DoctorID != nil {
		query = query.Where("appointments.doctor_id = ?", *filter.DoctorID)
	}
	return query
}

// FindAll joins on patients so soft-deleted patients drop out of global lists.
func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("patients.is_active = ?", true)
	err := applyAppointmentFilter(query, filter).
		Preload("Patient").Preload("Doctor").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatient(db *gorm.DB, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.Where("appointments.patient_id = ?", patientID)
	err := applyAppointmentFilter(query, filter).
		Preload("Doctor").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctor(db *gorm.DB, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("patients.is_active = ?", true).
		Where("appointments.doctor_id = ?", doctorID)
	err := applyAppointmentFilter(query, filter).
		Preload("Patient").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindScheduledByPatient(db *gorm.DB, patientID uuid.UUID, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ? AND status = ?", patientID, entity.StatusScheduled).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}
