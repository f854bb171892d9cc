package usecase

import (
	"context"
	"fmt"
	"time"

	"gdm-clinic/internal/delivery/converter"
	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
	"gdm-clinic/internal/domain/repository"
	"gdm-clinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultAppointmentDuration = 30
	upcomingWindowDays         = 7
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error)
	// Upcoming returns scheduled appointments within the next week.
	Upcoming(ctx context.Context) ([]dto.AppointmentResponse, error)
	// Today groups today's appointments by progress.
	Today(ctx context.Context) (*dto.TodayAppointmentsResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
	audit           service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		audit:           audit,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentType := entity.AppointmentType(req.AppointmentType)
	if !appointmentType.IsValid() {
		return nil, ErrInvalidAppointmentType
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := time.Parse("15:04", req.AppointmentTime); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	patient, err := u.patientRepo.FindActiveByID(u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	var doctor *entity.User
	if req.DoctorID != nil {
		doctor, err = u.userRepo.FindActiveDoctor(u.db, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	duration := defaultAppointmentDuration
	if req.Duration != nil {
		duration = *req.Duration
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Duration:        duration,
		AppointmentType: appointmentType,
		Status:          entity.StatusScheduled,
		Notes:           req.Notes,
		CreatedBy:       &actorID,
	}

	if err := u.appointmentRepo.Create(u.db, appointment); err != nil {
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"patientId": appointment.PatientID.String(),
		"date":      req.AppointmentDate,
		"time":      req.AppointmentTime,
	})

	appointment.Patient = patient
	appointment.Doctor = doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByIDWithJoins(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID uuid.UUID, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatient(u.db, patientID, filter)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ListByDoctor(ctx context.Context, doctorID uuid.UUID, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	doctor, err := u.userRepo.FindActiveDoctor(u.db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctor(u.db, doctorID, filter)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByIDWithJoins(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	date := appointment.AppointmentDate
	timeOfDay := appointment.AppointmentTime
	if req.AppointmentDate != nil {
		date, err = time.Parse("2006-01-02", *req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}
	if req.AppointmentTime != nil {
		if _, err := time.Parse("15:04", *req.AppointmentTime); err != nil {
			return nil, ErrInvalidTimeFormat
		}
		timeOfDay = *req.AppointmentTime
	}
	// Reschedule clears the reminder flag only when the slot actually moved.
	appointment.Reschedule(date, timeOfDay)

	if req.DoctorID != nil && (appointment.DoctorID == nil || *appointment.DoctorID != *req.DoctorID) {
		doctor, err := u.userRepo.FindActiveDoctor(u.db, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		appointment.DoctorID = req.DoctorID
		appointment.Doctor = doctor
	}

	if req.AppointmentType != nil {
		appointmentType := entity.AppointmentType(*req.AppointmentType)
		if !appointmentType.IsValid() {
			return nil, ErrInvalidAppointmentType
		}
		appointment.AppointmentType = appointmentType
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Status != nil {
		status := entity.AppointmentStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidAppointmentStatus
		}
		appointment.Status = status
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(u.db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), nil)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByIDWithJoins(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment by ID: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.CanCancel() {
		return nil, fmt.Errorf("%w: %s", ErrAppointmentNotCancellable, appointment.Status)
	}

	appointment.Cancel(req.Reason)
	if err := u.appointmentRepo.Update(u.db, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), map[string]interface{}{
		"reason": req.Reason,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Upcoming(ctx context.Context) ([]dto.AppointmentResponse, error) {
	today := truncateToDay(time.Now())
	end := today.AddDate(0, 0, upcomingWindowDays)
	status := entity.StatusScheduled

	appointments, err := u.appointmentRepo.FindAll(u.db, &entity.AppointmentFilter{
		StartDate: &today,
		EndDate:   &end,
		Status:    &status,
	})
	if err != nil {
		u.log.Warnf("Failed to list upcoming appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) Today(ctx context.Context) (*dto.TodayAppointmentsResponse, error) {
	today := truncateToDay(time.Now())

	appointments, err := u.appointmentRepo.FindAll(u.db, &entity.AppointmentFilter{Date: &today})
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, err
	}

	result := &dto.TodayAppointmentsResponse{
		Scheduled: make([]dto.AppointmentResponse, 0),
		Completed: make([]dto.AppointmentResponse, 0),
	}
	for i := range appointments {
		switch appointments[i].Status {
		case entity.StatusScheduled:
			result.Scheduled = append(result.Scheduled, *converter.AppointmentToResponse(&appointments[i]))
		case entity.StatusCompleted:
			result.Completed = append(result.Completed, *converter.AppointmentToResponse(&appointments[i]))
		}
	}
	result.Total = len(result.Scheduled) + len(result.Completed)

	return result, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
