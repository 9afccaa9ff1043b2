package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLead_IsVerified(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	l := &Lead{ClaimedAt: &t0}

	assert.False(t, l.IsVerified(t0.Add(71*time.Hour), window))
	assert.True(t, l.IsVerified(t0.Add(72*time.Hour), window)) // boundary counts as verified
	assert.True(t, l.IsVerified(t0.Add(96*time.Hour), window))
}

func TestLead_IsVerified_Unclaimed(t *testing.T) {
	l := &Lead{}
	assert.False(t, l.IsVerified(time.Now(), window))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusNew))
	assert.True(t, IsValidStatus(StatusNegotiation))
	assert.False(t, IsValidStatus(Status("archived")))
}
