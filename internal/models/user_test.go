// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPasswordHashing(t *testing.T) {
	user := &User{Username: "alice"}

	require.NoError(t, user.SetPassword("SecurePass123!"))
	assert.NotEqual(t, "SecurePass123!", user.PasswordHash)

	assert.NoError(t, user.CheckPassword("SecurePass123!"))
	assert.Error(t, user.CheckPassword("wrong-password"))
}
