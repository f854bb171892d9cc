package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, valid := range []string{RoleAdmin, RoleDoctor, RoleNurse, RoleStaff} {
		assert.True(t, IsValidRole(valid), valid)
	}
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole(""))
}
