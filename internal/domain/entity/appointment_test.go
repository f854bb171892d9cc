package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanCancel(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusScheduled, true},
		{StatusRescheduled, true},
		{StatusNoShow, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.want, a.CanCancel())
		})
	}
}

func TestAppointmentCancel(t *testing.T) {
	a := &Appointment{Status: StatusScheduled, Notes: "bring previous results"}
	a.Cancel("patient travelling")

	assert.Equal(t, StatusCancelled, a.Status)
	assert.Equal(t, "bring previous results \n\nCancellation reason: patient travelling", a.Notes)
}

func TestAppointmentCancelWithoutReason(t *testing.T) {
	a := &Appointment{Status: StatusScheduled, Notes: "original"}
	a.Cancel("")

	assert.Equal(t, StatusCancelled, a.Status)
	assert.Equal(t, "original", a.Notes)
}

func TestAppointmentReschedule(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("date change resets reminder", func(t *testing.T) {
		a := &Appointment{AppointmentDate: date, AppointmentTime: "09:00", ReminderSent: true}
		a.Reschedule(date.AddDate(0, 0, 1), "09:00")
		assert.False(t, a.ReminderSent)
	})

	t.Run("time change resets reminder", func(t *testing.T) {
		a := &Appointment{AppointmentDate: date, AppointmentTime: "09:00", ReminderSent: true}
		a.Reschedule(date, "10:30")
		assert.False(t, a.ReminderSent)
		assert.Equal(t, "10:30", a.AppointmentTime)
	})

	t.Run("same slot keeps reminder", func(t *testing.T) {
		a := &Appointment{AppointmentDate: date, AppointmentTime: "09:00", ReminderSent: true}
		a.Reschedule(date, "09:00")
		assert.True(t, a.ReminderSent)
	})
}

func TestAppointmentEnumsValidity(t *testing.T) {
	assert.True(t, AppointmentRegularCheckup.IsValid())
	assert.True(t, AppointmentEmergency.IsValid())
	assert.False(t, AppointmentType("walk_in").IsValid())

	assert.True(t, StatusScheduled.IsValid())
	assert.True(t, StatusNoShow.IsValid())
	assert.False(t, AppointmentStatus("pending").IsValid())
}
