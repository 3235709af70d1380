package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleError(t *testing.T) {
	assert.Equal(t, "Only super_admin or admin may access admin registration", RoleError("admin registration", AdminAndAbove))
	assert.Equal(t, "Only super_admin, admin or editor may access x", RoleError("x", AllRoles))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleEditor))
	assert.False(t, IsValidRole("owner"))
}

func TestUploadExtension(t *testing.T) {
	ext, ok := UploadExtension("image/png")
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)

	_, ok = UploadExtension("application/pdf")
	assert.False(t, ok)
}
