package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateGlucoseReadingRequest struct {
	PatientID    uuid.UUID `json:"patientId" validate:"required"`
	GlucoseLevel float64   `json:"glucoseLevel" validate:"required,gt=0"`
	ReadingType  string    `json:"readingType" validate:"required,oneof=fasting before_meal after_meal before_bed random"`
	Notes        string    `json:"notes"`
}

type UpdateGlucoseReadingRequest struct {
	GlucoseLevel    *float64 `json:"glucoseLevel" validate:"omitempty,gt=0"`
	ReadingType     *string  `json:"readingType" validate:"omitempty,oneof=fasting before_meal after_meal before_bed random"`
	Notes           *string  `json:"notes"`
	ReadingDateTime *string  `json:"readingDateTime"` // Format: RFC3339
}

type GlucoseReadingResponse struct {
	ID              uuid.UUID       `json:"id"`
	PatientID       uuid.UUID       `json:"patientId"`
	ReadingDateTime time.Time       `json:"readingDateTime"`
	GlucoseLevel    float64         `json:"glucoseLevel"`
	ReadingType     string          `json:"readingType"`
	Notes           string          `json:"notes,omitempty"`
	IsAbnormal      bool            `json:"isAbnormal"`
	RecordedBy      *uuid.UUID      `json:"recordedBy,omitempty"`
	Patient         *PatientSummary `json:"patient,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// GlucoseChartPoint is one point of the 14-day chart series.
type GlucoseChartPoint struct {
	Date         string  `json:"date"` // Format: YYYY-MM-DD
	ReadingType  string  `json:"readingType"`
	GlucoseLevel float64 `json:"glucoseLevel"`
	IsAbnormal   bool    `json:"isAbnormal"`
}

// GlucoseStatisticsResponse summarizes the trailing 7 days of readings plus a
// 14-day chart series.
type GlucoseStatisticsResponse struct {
	TotalReadings      int                 `json:"totalReadings"`
	AverageGlucose     float64             `json:"averageGlucose"`
	MaxGlucose         float64             `json:"maxGlucose"`
	MinGlucose         float64             `json:"minGlucose"`
	AbnormalCount      int                 `json:"abnormalCount"`
	AbnormalPercentage float64             `json:"abnormalPercentage"`
	ChartData          []GlucoseChartPoint `json:"chartData"`
}
