package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentType categorizes a clinic visit.
type AppointmentType string

const (
	AppointmentRegularCheckup    AppointmentType = "regular_checkup"
	AppointmentGlucoseMonitoring AppointmentType = "glucose_monitoring"
	AppointmentUltrasound        AppointmentType = "ultrasound"
	AppointmentConsultation      AppointmentType = "consultation"
	AppointmentEmergency         AppointmentType = "emergency"
)

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentRegularCheckup, AppointmentGlucoseMonitoring, AppointmentUltrasound,
		AppointmentConsultation, AppointmentEmergency:
		return true
	}
	return false
}

// AppointmentStatus tracks the lifecycle of an appointment.
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "scheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusNoShow      AppointmentStatus = "no_show"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a scheduled clinic visit. AppointmentTime is stored
// as "HH:MM" alongside the date column so that same-day ordering stays a
// simple two-column sort.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patientId"`
	DoctorID        *uuid.UUID        `gorm:"type:uuid;index" json:"doctorId,omitempty"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index" json:"appointmentDate"`
	AppointmentTime string            `gorm:"type:time;not null" json:"appointmentTime"`
	Duration        int               `gorm:"not null;default:30" json:"duration"`
	AppointmentType AppointmentType   `gorm:"type:varchar(30);not null;default:'regular_checkup'" json:"appointmentType"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	ReminderSent    bool              `gorm:"not null;default:false" json:"reminderSent"`
	CreatedBy       *uuid.UUID        `gorm:"type:uuid" json:"createdBy,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Creator *User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// CanCancel reports whether the appointment may still be cancelled.
// Completed and cancelled appointments are terminal for the cancel operation.
func (a *Appointment) CanCancel() bool {
	return a.Status != StatusCompleted && a.Status != StatusCancelled
}

// Cancel marks the appointment cancelled and appends the reason to its notes.
// Callers must check CanCancel first.
func (a *Appointment) Cancel(reason string) {
	a.Status = StatusCancelled
	if reason != "" {
		a.Notes = a.Notes + " \n\nCancellation reason: " + reason
	}
}

// Reschedule applies a new date/time and resets the reminder flag when either
// actually changed, so a notification goes out again for the new slot.
func (a *Appointment) Reschedule(date time.Time, timeOfDay string) {
	if !a.AppointmentDate.Equal(date) || a.AppointmentTime != timeOfDay {
		a.ReminderSent = false
	}
	a.AppointmentDate = date
	a.AppointmentTime = timeOfDay
}

// AppointmentFilter is a domain-level filter for querying appointments.
type AppointmentFilter struct {
	StartDate *time.Time // inclusive lower bound on AppointmentDate
	EndDate   *time.Time // inclusive upper bound on AppointmentDate
	Date      *time.Time // exact-date match
	Status    *AppointmentStatus
	DoctorID  *uuid.UUID
}
