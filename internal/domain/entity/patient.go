package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RiskLevel is the clinician-assigned GDM risk category.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Patient represents a patient under gestational diabetes monitoring.
// Records are never hard-deleted; IsActive=false hides them from all
// normal queries while preserving reading and appointment history.
type Patient struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HospitalNumber        string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"hospitalNumber"`
	IDNumber              string     `gorm:"column:id_number;type:varchar(50);uniqueIndex;not null" json:"idNumber"`
	FirstName             string     `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName              string     `gorm:"type:varchar(100);not null" json:"lastName"`
	DateOfBirth           time.Time  `gorm:"type:date;not null" json:"dateOfBirth"`
	PhoneNumber           string     `gorm:"type:varchar(20);not null" json:"phoneNumber"`
	Email                 string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address               string     `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact      string     `gorm:"type:varchar(255)" json:"emergencyContact,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergencyContactPhone,omitempty"`
	GestationalAge        *int       `gorm:"" json:"gestationalAge,omitempty"`
	ExpectedDeliveryDate  *time.Time `gorm:"type:date" json:"expectedDeliveryDate,omitempty"`
	Height                *float64   `gorm:"" json:"height,omitempty"`
	PrePregnancyWeight    *float64   `gorm:"" json:"prePregnancyWeight,omitempty"`
	CurrentWeight         *float64   `gorm:"" json:"currentWeight,omitempty"`
	BMI                   *float64   `gorm:"column:bmi" json:"bmi,omitempty"`
	PriorGDM              bool       `gorm:"column:prior_gdm;not null;default:false" json:"priorGDM"`
	FamilyHistoryDiabetes bool       `gorm:"not null;default:false" json:"familyHistoryDiabetes"`
	Notes                 string     `gorm:"type:text" json:"notes,omitempty"`
	RiskLevel             RiskLevel  `gorm:"type:varchar(10);not null;default:'medium';index" json:"riskLevel"`
	IsActive              bool       `gorm:"not null;default:true;index" json:"isActive"`
	PrimaryDoctorID       *uuid.UUID `gorm:"type:uuid;index" json:"primaryDoctorId,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relationships
	PrimaryDoctor *User `gorm:"foreignKey:PrimaryDoctorID" json:"primaryDoctor,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ComputeBMI returns weight / height(m)^2 rounded to two decimals.
// Height is in centimeters, weight in kilograms. Returns 0 when height is 0.
func ComputeBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := decimal.NewFromFloat(heightCm).Div(decimal.NewFromInt(100))
	bmi := decimal.NewFromFloat(weightKg).Div(heightM.Mul(heightM))
	f, _ := bmi.Round(2).Float64()
	return f
}
