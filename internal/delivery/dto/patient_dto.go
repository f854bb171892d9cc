package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	HospitalNumber        string     `json:"hospitalNumber" validate:"required"`
	IDNumber              string     `json:"idNumber" validate:"required"`
	FirstName             string     `json:"firstName" validate:"required"`
	LastName              string     `json:"lastName" validate:"required"`
	DateOfBirth           string     `json:"dateOfBirth" validate:"required"` // Format: YYYY-MM-DD
	PhoneNumber           string     `json:"phoneNumber" validate:"required"`
	Email                 string     `json:"email" validate:"omitempty,email"`
	Address               string     `json:"address"`
	EmergencyContact      string     `json:"emergencyContact"`
	EmergencyContactPhone string     `json:"emergencyContactPhone"`
	GestationalAge        *int       `json:"gestationalAge" validate:"omitempty,gte=0,lte=45"`
	ExpectedDeliveryDate  string     `json:"expectedDeliveryDate" validate:"omitempty"` // Format: YYYY-MM-DD
	Height                *float64   `json:"height" validate:"omitempty,gt=0"`
	PrePregnancyWeight    *float64   `json:"prePregnancyWeight" validate:"omitempty,gt=0"`
	CurrentWeight         *float64   `json:"currentWeight" validate:"omitempty,gt=0"`
	PriorGDM              bool       `json:"priorGDM"`
	FamilyHistoryDiabetes bool       `json:"familyHistoryDiabetes"`
	Notes                 string     `json:"notes"`
	RiskLevel             string     `json:"riskLevel" validate:"omitempty,oneof=low medium high"`
	PrimaryDoctorID       *uuid.UUID `json:"primaryDoctorId"`
}

type UpdatePatientRequest struct {
	HospitalNumber        *string    `json:"hospitalNumber"`
	IDNumber              *string    `json:"idNumber"`
	FirstName             *string    `json:"firstName"`
	LastName              *string    `json:"lastName"`
	DateOfBirth           *string    `json:"dateOfBirth"` // Format: YYYY-MM-DD
	PhoneNumber           *string    `json:"phoneNumber"`
	Email                 *string    `json:"email" validate:"omitempty,email"`
	Address               *string    `json:"address"`
	EmergencyContact      *string    `json:"emergencyContact"`
	EmergencyContactPhone *string    `json:"emergencyContactPhone"`
	GestationalAge        *int       `json:"gestationalAge" validate:"omitempty,gte=0,lte=45"`
	ExpectedDeliveryDate  *string    `json:"expectedDeliveryDate"` // Format: YYYY-MM-DD
	Height                *float64   `json:"height" validate:"omitempty,gt=0"`
	PrePregnancyWeight    *float64   `json:"prePregnancyWeight" validate:"omitempty,gt=0"`
	CurrentWeight         *float64   `json:"currentWeight" validate:"omitempty,gt=0"`
	PriorGDM              *bool      `json:"priorGDM"`
	FamilyHistoryDiabetes *bool      `json:"familyHistoryDiabetes"`
	Notes                 *string    `json:"notes"`
	RiskLevel             *string    `json:"riskLevel" validate:"omitempty,oneof=low medium high"`
	PrimaryDoctorID       *uuid.UUID `json:"primaryDoctorId"`
}

// PatientSummary is the short patient identity embedded in joined responses.
type PatientSummary struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	HospitalNumber string    `json:"hospitalNumber"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
}

type PatientResponse struct {
	ID                    uuid.UUID    `json:"id"`
	HospitalNumber        string       `json:"hospitalNumber"`
	IDNumber              string       `json:"idNumber"`
	FirstName             string       `json:"firstName"`
	LastName              string       `json:"lastName"`
	DateOfBirth           string       `json:"dateOfBirth"`
	PhoneNumber           string       `json:"phoneNumber"`
	Email                 string       `json:"email,omitempty"`
	Address               string       `json:"address,omitempty"`
	EmergencyContact      string       `json:"emergencyContact,omitempty"`
	EmergencyContactPhone string       `json:"emergencyContactPhone,omitempty"`
	GestationalAge        *int         `json:"gestationalAge,omitempty"`
	ExpectedDeliveryDate  string       `json:"expectedDeliveryDate,omitempty"`
	Height                *float64     `json:"height,omitempty"`
	PrePregnancyWeight    *float64     `json:"prePregnancyWeight,omitempty"`
	CurrentWeight         *float64     `json:"currentWeight,omitempty"`
	BMI                   *float64     `json:"bmi,omitempty"`
	PriorGDM              bool         `json:"priorGDM"`
	FamilyHistoryDiabetes bool         `json:"familyHistoryDiabetes"`
	Notes                 string       `json:"notes,omitempty"`
	RiskLevel             string       `json:"riskLevel"`
	IsActive              bool         `json:"isActive"`
	PrimaryDoctor         *UserSummary `json:"primaryDoctor,omitempty"`
	CreatedAt             time.Time    `json:"createdAt"`
	UpdatedAt             time.Time    `json:"updatedAt"`
}

// PatientDetailResponse augments a patient with its most recent readings and
// next scheduled appointments.
type PatientDetailResponse struct {
	PatientResponse
	GlucoseReadings []GlucoseReadingResponse `json:"glucoseReadings"`
	Appointments    []AppointmentResponse    `json:"appointments"`
}

type PatientStatisticsResponse struct {
	ActivePatients   int64 `json:"activePatients"`
	HighRiskPatients int64 `json:"highRiskPatients"`
	NewPatients      int64 `json:"newPatients"`
}
