package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "teamhub/pkg/errors"
)

type sampleRequest struct {
	Username string `validate:"required,max=10"`
	Email    string `validate:"required,email"`
	Role     string `validate:"omitempty,oneof=ADMIN MEMBER"`
}

func TestValidate(t *testing.T) {
	err := Validate(&sampleRequest{Username: "alice", Email: "alice@example.com"})
	assert.NoError(t, err)
}

func TestValidateErrors(t *testing.T) {
	err := Validate(&sampleRequest{Email: "not-an-email", Role: "SUPERUSER"})
	require.Error(t, err)
	assert.Equal(t, pkgErrors.CodeBadUserInput, pkgErrors.CodeOf(err))
	assert.Contains(t, err.Error(), "'Username' is required")
	assert.Contains(t, err.Error(), "valid email address")
	assert.Contains(t, err.Error(), "must be one of: ADMIN MEMBER")
}
