package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadingType categorizes when a glucose measurement was taken.
type ReadingType string

const (
	ReadingFasting    ReadingType = "fasting"
	ReadingBeforeMeal ReadingType = "before_meal"
	ReadingAfterMeal  ReadingType = "after_meal"
	ReadingBeforeBed  ReadingType = "before_bed"
	ReadingRandom     ReadingType = "random"
)

func (t ReadingType) IsValid() bool {
	switch t {
	case ReadingFasting, ReadingBeforeMeal, ReadingAfterMeal, ReadingBeforeBed, ReadingRandom:
		return true
	}
	return false
}

// abnormalThresholds holds the mg/dL cutoff per reading type. A level strictly
// above the cutoff is abnormal.
var abnormalThresholds = map[ReadingType]float64{
	ReadingFasting:    95,
	ReadingBeforeMeal: 100,
	ReadingAfterMeal:  140,
	ReadingBeforeBed:  120,
	ReadingRandom:     180,
}

// ClassifyGlucose reports whether a glucose level is abnormal for the given
// reading type. Unknown types are never abnormal. The result is fixed on the
// reading at creation time and is not recomputed when a reading is edited.
func ClassifyGlucose(readingType ReadingType, level float64) bool {
	threshold, ok := abnormalThresholds[readingType]
	if !ok {
		return false
	}
	return level > threshold
}

// GlucoseReading represents a single blood glucose measurement in mg/dL.
type GlucoseReading struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"patientId"`
	ReadingDateTime time.Time   `gorm:"not null;index" json:"readingDateTime"`
	GlucoseLevel    float64     `gorm:"not null" json:"glucoseLevel"`
	ReadingType     ReadingType `gorm:"type:varchar(20);not null" json:"readingType"`
	Notes           string      `gorm:"type:text" json:"notes,omitempty"`
	IsAbnormal      bool        `gorm:"not null;default:false;index" json:"isAbnormal"`
	RecordedBy      *uuid.UUID  `gorm:"type:uuid" json:"recordedBy,omitempty"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	Patient  *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Recorder *User    `gorm:"foreignKey:RecordedBy" json:"recorder,omitempty"`
}

func (GlucoseReading) TableName() string {
	return "glucose_readings"
}

// ReadingFilter is a domain-level filter for querying glucose readings.
// Used by the repository layer to avoid coupling with delivery DTOs.
type ReadingFilter struct {
	PatientID  *uuid.UUID
	StartDate  *time.Time // inclusive lower bound on ReadingDateTime
	EndDate    *time.Time // inclusive upper bound on ReadingDateTime
	IsAbnormal *bool
}
