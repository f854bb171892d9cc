package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	PatientID       uuid.UUID  `json:"patientId" validate:"required"`
	DoctorID        *uuid.UUID `json:"doctorId"`
	AppointmentDate string     `json:"appointmentDate" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string     `json:"appointmentTime" validate:"required"` // Format: HH:MM
	AppointmentType string     `json:"appointmentType" validate:"required,oneof=regular_checkup glucose_monitoring ultrasound consultation emergency"`
	Duration        *int       `json:"duration" validate:"omitempty,gt=0"`
	Notes           string     `json:"notes"`
}

type UpdateAppointmentRequest struct {
	DoctorID        *uuid.UUID `json:"doctorId"`
	AppointmentDate *string    `json:"appointmentDate"` // Format: YYYY-MM-DD
	AppointmentTime *string    `json:"appointmentTime"` // Format: HH:MM
	AppointmentType *string    `json:"appointmentType" validate:"omitempty,oneof=regular_checkup glucose_monitoring ultrasound consultation emergency"`
	Duration        *int       `json:"duration" validate:"omitempty,gt=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled no_show"`
	Notes           *string    `json:"notes"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patientId"`
	DoctorID        *uuid.UUID      `json:"doctorId,omitempty"`
	AppointmentDate string          `json:"appointmentDate"` // Format: YYYY-MM-DD
	AppointmentTime string          `json:"appointmentTime"` // Format: HH:MM
	AppointmentType string          `json:"appointmentType"`
	Duration        int             `json:"duration"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	ReminderSent    bool            `json:"reminderSent"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	Doctor          *UserSummary    `json:"doctor,omitempty"`
	Creator         *UserSummary    `json:"creator,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// TodayAppointmentsResponse groups today's appointments by progress.
type TodayAppointmentsResponse struct {
	Scheduled []AppointmentResponse `json:"scheduled"`
	Completed []AppointmentResponse `json:"completed"`
	Total     int                   `json:"total"`
}
