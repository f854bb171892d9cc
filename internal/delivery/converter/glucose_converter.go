package converter

import (
	"gdm-clinic/internal/delivery/dto"
	"gdm-clinic/internal/domain/entity"
)

func GlucoseReadingToResponse(reading *entity.GlucoseReading) *dto.GlucoseReadingResponse {
	return &dto.GlucoseReadingResponse{
		ID:              reading.ID,
		PatientID:       reading.PatientID,
		ReadingDateTime: reading.ReadingDateTime,
		GlucoseLevel:    reading.GlucoseLevel,
		ReadingType:     string(reading.ReadingType),
		Notes:           reading.Notes,
		IsAbnormal:      reading.IsAbnormal,
		RecordedBy:      reading.RecordedBy,
		Patient:         PatientToSummary(reading.Patient),
		CreatedAt:       reading.CreatedAt,
		UpdatedAt:       reading.UpdatedAt,
	}
}

func GlucoseReadingsToResponses(readings []entity.GlucoseReading) []dto.GlucoseReadingResponse {
	responses := make([]dto.GlucoseReadingResponse, 0, len(readings))
	for i := range readings {
		responses = append(responses, *GlucoseReadingToResponse(&readings[i]))
	}
	return responses
}

func GlucoseReadingToChartPoint(reading *entity.GlucoseReading) dto.GlucoseChartPoint {
	return dto.GlucoseChartPoint{
		Date:         formatDate(reading.ReadingDateTime),
		ReadingType:  string(reading.ReadingType),
		GlucoseLevel: reading.GlucoseLevel,
		IsAbnormal:   reading.IsAbnormal,
	}
}
