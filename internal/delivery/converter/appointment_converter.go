package converter

import (
	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		AppointmentDate: formatDate(appointment.AppointmentDate),
		AppointmentTime: appointment.AppointmentTime,
		AppointmentType: string(appointment.AppointmentType),
		Duration:        appointment.Duration,
		Status:          string(appointment.Status),
		Notes:           appointment.Notes,
		ReminderSent:    appointment.ReminderSent,
		Patient:         PatientToSummary(appointment.Patient),
		Doctor:          UserToSummary(appointment.Doctor),
		Creator:         UserToSummary(appointment.Creator),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
