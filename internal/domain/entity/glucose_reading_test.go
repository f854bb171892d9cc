package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyGlucose(t *testing.T) {
	tests := []struct {
		name        string
		readingType ReadingType
		level       float64
		want        bool
	}{
		{"fasting at threshold", ReadingFasting, 95, false},
		{"fasting above threshold", ReadingFasting, 95.1, true},
		{"fasting below threshold", ReadingFasting, 90, false},
		{"before meal at threshold", ReadingBeforeMeal, 100, false},
		{"before meal above threshold", ReadingBeforeMeal, 101, true},
		{"after meal at threshold", ReadingAfterMeal, 140, false},
		{"after meal above threshold", ReadingAfterMeal, 141, true},
		{"before bed at threshold", ReadingBeforeBed, 120, false},
		{"before bed above threshold", ReadingBeforeBed, 120.5, true},
		{"random at threshold", ReadingRandom, 180, false},
		{"random above threshold", ReadingRandom, 181, true},
		{"unknown type never abnormal", ReadingType("postprandial"), 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyGlucose(tt.readingType, tt.level))
		})
	}
}

func TestReadingTypeIsValid(t *testing.T) {
	for _, valid := range []ReadingType{ReadingFasting, ReadingBeforeMeal, ReadingAfterMeal, ReadingBeforeBed, ReadingRandom} {
		assert.True(t, valid.IsValid(), string(valid))
	}
	assert.False(t, ReadingType("").IsValid())
	assert.False(t, ReadingType("postprandial").IsValid())
}
