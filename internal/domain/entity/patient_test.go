package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
	}{
		{"typical", 160, 65, 25.39},
		{"tall", 175, 70, 22.86},
		{"rounding up", 170, 80, 27.68},
		{"zero height", 0, 65, 0},
		{"negative height", -10, 65, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeBMI(tt.heightCm, tt.weightKg))
		})
	}
}

func TestRiskLevelIsValid(t *testing.T) {
	for _, valid := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		assert.True(t, valid.IsValid(), string(valid))
	}
	assert.False(t, RiskLevel("critical").IsValid())
	assert.False(t, RiskLevel("").IsValid())
}

func TestPatientFullName(t *testing.T) {
	p := &Patient{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", p.FullName())
}
