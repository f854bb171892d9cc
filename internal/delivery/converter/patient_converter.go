package converter

import (
	"time"

	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
)

const dateLayout = "2006-01-02"

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	response := &dto.PatientResponse{
		ID:                    patient.ID,
		HospitalNumber:        patient.HospitalNumber,
		IDNumber:              patient.IDNumber,
		FirstName:             patient.FirstName,
		LastName:              patient.LastName,
		DateOfBirth:           patient.DateOfBirth.Format(dateLayout),
		PhoneNumber:           patient.PhoneNumber,
		Email:                 patient.Email,
		Address:               patient.Address,
		EmergencyContact:      patient.EmergencyContact,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		GestationalAge:        patient.GestationalAge,
		Height:                patient.Height,
		PrePregnancyWeight:    patient.PrePregnancyWeight,
		CurrentWeight:         patient.CurrentWeight,
		BMI:                   patient.BMI,
		PriorGDM:              patient.PriorGDM,
		FamilyHistoryDiabetes: patient.FamilyHistoryDiabetes,
		Notes:                 patient.Notes,
		RiskLevel:             string(patient.RiskLevel),
		IsActive:              patient.IsActive,
		PrimaryDoctor:         UserToSummary(patient.PrimaryDoctor),
		CreatedAt:             patient.CreatedAt,
		UpdatedAt:             patient.UpdatedAt,
	}
	if patient.ExpectedDeliveryDate != nil {
		response.ExpectedDeliveryDate = patient.ExpectedDeliveryDate.Format(dateLayout)
	}
	return response
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}

func PatientToSummary(patient *entity.Patient) *dto.PatientSummary {
	if patient == nil {
		return nil
	}
	return &dto.PatientSummary{
		ID:             patient.ID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		HospitalNumber: patient.HospitalNumber,
		PhoneNumber:    patient.PhoneNumber,
	}
}

func PatientToDetailResponse(patient *entity.Patient, readings []entity.GlucoseReading, appointments []entity.Appointment) *dto.PatientDetailResponse {
	return &dto.PatientDetailResponse{
		PatientResponse: *PatientToResponse(patient),
		GlucoseReadings: GlucoseReadingsToResponses(readings),
		Appointments:    AppointmentsToResponses(appointments),
	}
}

// formatDate is shared by the appointment converter.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
