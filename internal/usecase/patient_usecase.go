package usecase

import (
	"context"
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
	detailReadingsLimit     = 10
	detailAppointmentsLimit = 5
	newPatientWindowDays    = 30
)

type PatientUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	List(ctx context.Context) ([]dto.PatientResponse, error)
	// GetByID returns the patient with their most recent glucose readings and
	// next scheduled appointments embedded.
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	// Deactivate soft-deletes the patient. History is preserved.
	Deactivate(ctx context.Context, actorID, id uuid.UUID) error
	Statistics(ctx context.Context) (*dto.PatientStatisticsResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	userRepo        repository.UserRepository
	readingRepo     repository.GlucoseReadingRepository
	appointmentRepo repository.AppointmentRepository
	audit           service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	readingRepo repository.GlucoseReadingRepository,
	appointmentRepo repository.AppointmentRepository,
	audit service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		userRepo:        userRepo,
		readingRepo:     readingRepo,
		appointmentRepo: appointmentRepo,
		audit:           audit,
	}
}

func (u *patientUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var deliveryDate *time.Time
	if req.ExpectedDeliveryDate != "" {
		d, err := time.Parse("2006-01-02", req.ExpectedDeliveryDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		deliveryDate = &d
	}

	riskLevel := entity.RiskMedium
	if req.RiskLevel != "" {
		riskLevel = entity.RiskLevel(req.RiskLevel)
		if !riskLevel.IsValid() {
			return nil, ErrInvalidRiskLevel
		}
	}

	if req.PrimaryDoctorID != nil {
		doctor, err := u.userRepo.FindActiveDoctor(u.db, *req.PrimaryDoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	patient := &entity.Patient{
		HospitalNumber:        req.HospitalNumber,
		IDNumber:              req.IDNumber,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		DateOfBirth:           dob,
		PhoneNumber:           req.PhoneNumber,
		Email:                 req.Email,
		Address:               req.Address,
		EmergencyContact:      req.EmergencyContact,
		EmergencyContactPhone: req.EmergencyContactPhone,
		GestationalAge:        req.GestationalAge,
		ExpectedDeliveryDate:  deliveryDate,
		Height:                req.Height,
		PrePregnancyWeight:    req.PrePregnancyWeight,
		CurrentWeight:         req.CurrentWeight,
		PriorGDM:              req.PriorGDM,
		FamilyHistoryDiabetes: req.FamilyHistoryDiabetes,
		Notes:                 req.Notes,
		RiskLevel:             riskLevel,
		IsActive:              true,
		PrimaryDoctorID:       req.PrimaryDoctorID,
	}
	// Baseline BMI is taken from the pre-pregnancy weight.
	if req.Height != nil && req.PrePregnancyWeight != nil {
		bmi := entity.ComputeBMI(*req.Height, *req.PrePregnancyWeight)
		patient.BMI = &bmi
	}

	if err := u.patientRepo.Create(u.db, patient); err != nil {
		if isDuplicateKeyError(err, "hospital_number") {
			return nil, ErrHospitalNumberExists
		}
		if isDuplicateKeyError(err, "id_number") {
			return nil, ErrIDNumberExists
		}
		if isForeignKeyError(err, "primary_doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionPatientCreate, "patient", patient.ID.String(), map[string]interface{}{
		"hospitalNumber": patient.HospitalNumber,
	})

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context) ([]dto.PatientResponse, error) {
	patients, err := u.patientRepo.FindAllActive(u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToResponses(patients), nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	readings, err := u.readingRepo.FindRecentByPatient(u.db, id, detailReadingsLimit)
	if err != nil {
		u.log.Warnf("Failed to load recent readings: %+v", err)
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindScheduledByPatient(u.db, id, detailAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to load scheduled appointments: %+v", err)
		return nil, err
	}

	return converter.PatientToDetailResponse(patient, readings, appointments), nil
}

func (u *patientUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.HospitalNumber != nil {
		patient.HospitalNumber = *req.HospitalNumber
	}
	if req.IDNumber != nil {
		patient.IDNumber = *req.IDNumber
	}
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		patient.DateOfBirth = dob
	}
	if req.PhoneNumber != nil {
		patient.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		patient.EmergencyContact = *req.EmergencyContact
	}
	if req.EmergencyContactPhone != nil {
		patient.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.GestationalAge != nil {
		patient.GestationalAge = req.GestationalAge
	}
	if req.ExpectedDeliveryDate != nil {
		if *req.ExpectedDeliveryDate == "" {
			patient.ExpectedDeliveryDate = nil
		} else {
			d, err := time.Parse("2006-01-02", *req.ExpectedDeliveryDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
			patient.ExpectedDeliveryDate = &d
		}
	}
	if req.Height != nil {
		patient.Height = req.Height
	}
	if req.PrePregnancyWeight != nil {
		patient.PrePregnancyWeight = req.PrePregnancyWeight
	}
	if req.CurrentWeight != nil {
		patient.CurrentWeight = req.CurrentWeight
	}
	if req.PriorGDM != nil {
		patient.PriorGDM = *req.PriorGDM
	}
	if req.FamilyHistoryDiabetes != nil {
		patient.FamilyHistoryDiabetes = *req.FamilyHistoryDiabetes
	}
	if req.Notes != nil {
		patient.Notes = *req.Notes
	}
	if req.RiskLevel != nil {
		level := entity.RiskLevel(*req.RiskLevel)
		if !level.IsValid() {
			return nil, ErrInvalidRiskLevel
		}
		patient.RiskLevel = level
	}

	// The doctor is re-validated only when the assignment changes, so a
	// patient record stays editable after their doctor leaves.
	if req.PrimaryDoctorID != nil && (patient.PrimaryDoctorID == nil || *patient.PrimaryDoctorID != *req.PrimaryDoctorID) {
		doctor, err := u.userRepo.FindActiveDoctor(u.db, *req.PrimaryDoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		patient.PrimaryDoctorID = req.PrimaryDoctorID
		patient.PrimaryDoctor = doctor
	}

	// BMI is recomputed from the current weight only when the request carries
	// both measurements; otherwise the stored value stands.
	if req.Height != nil && req.CurrentWeight != nil {
		bmi := entity.ComputeBMI(*req.Height, *req.CurrentWeight)
		patient.BMI = &bmi
	}

	if err := u.patientRepo.Update(u.db, patient); err != nil {
		if isDuplicateKeyError(err, "hospital_number") {
			return nil, ErrHospitalNumberExists
		}
		if isDuplicateKeyError(err, "id_number") {
			return nil, ErrIDNumberExists
		}
		if isForeignKeyError(err, "primary_doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionPatientUpdate, "patient", patient.ID.String(), nil)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	patient, err := u.patientRepo.FindByID(u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by ID: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	patient.IsActive = false
	if err := u.patientRepo.Update(u.db, patient); err != nil {
		u.log.Warnf("Failed to deactivate patient: %+v", err)
		return err
	}

	u.audit.LogAction(u.db, &actorID, entity.AuditActionPatientDeactivate, "patient", patient.ID.String(), nil)

	return nil
}

func (u *patientUsecase) Statistics(ctx context.Context) (*dto.PatientStatisticsResponse, error) {
	active, err := u.patientRepo.CountActive(u.db)
	if err != nil {
		u.log.Warnf("Failed to count active patients: %+v", err)
		return nil, err
	}

	highRisk, err := u.patientRepo.CountActiveByRiskLevel(u.db, entity.RiskHigh)
	if err != nil {
		u.log.Warnf("Failed to count high risk patients: %+v", err)
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -newPatientWindowDays)
	newPatients, err := u.patientRepo.CountActiveCreatedSince(u.db, since)
	if err != nil {
		u.log.Warnf("Failed to count new patients: %+v", err)
		return nil, err
	}

	return &dto.PatientStatisticsResponse{
		ActivePatients:   active,
		HighRiskPatients: highRisk,
		NewPatients:      newPatients,
	}, nil
}

