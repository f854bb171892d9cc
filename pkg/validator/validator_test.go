package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Role     string `validate:"omitempty,oneof=admin doctor nurse staff"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Username: "nurse1", Email: "nurse1@clinic.test", Role: "nurse"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Username: "ab", Email: "not-an-email", Role: "superadmin"})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Username must be at least 3 characters", formatted["Username"])
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Role must be one of: admin doctor nurse staff", formatted["Role"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{})
	assert.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Username is required", formatted["Username"])
	assert.Equal(t, "Email is required", formatted["Email"])
}
