package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	for _, valid := range []string{"low", "medium", "high", "critical"} {
		p, err := NewPriority(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, p.String())
	}

	_, err := NewPriority("urgent")
	assert.Error(t, err)
}

func TestPriority_AttentionHours(t *testing.T) {
	assert.Equal(t, 72, PriorityLow.AttentionHours())
	assert.Equal(t, 24, PriorityMedium.AttentionHours())
	assert.Equal(t, 8, PriorityHigh.AttentionHours())
	assert.Equal(t, 2, PriorityCritical.AttentionHours())
	assert.Equal(t, 72, Priority("bogus").AttentionHours(), "unknown priority defaults to the slowest tier")
}
