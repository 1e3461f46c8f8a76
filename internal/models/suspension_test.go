// internal/models/suspension_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuspensionIsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	permanent := &AccountSuspension{Type: SuspensionTypePermanent}
	assert.False(t, permanent.IsExpired(now), "permanent suspensions never expire")

	ended := &AccountSuspension{Type: SuspensionTypeTemporary, EndsAt: &past}
	assert.True(t, ended.IsExpired(now))

	running := &AccountSuspension{Type: SuspensionTypeTemporary, EndsAt: &future}
	assert.False(t, running.IsExpired(now))
}
