package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	for _, valid := range []string{"academic", "hostel", "mess", "infrastructure", "network", "ragging", "other"} {
		c, err := NewCategory(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, valid, c.String())
	}

	_, err := NewCategory("parking")
	assert.Error(t, err)
	_, err = NewCategory("")
	assert.Error(t, err)
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{"exact match", "hostel", CategoryHostel},
		{"mixed case", "Network", CategoryNetwork},
		{"surrounding whitespace", "  mess  ", CategoryMess},
		{"unknown label", "parking", CategoryOther},
		{"empty", "", CategoryOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeCategory(tc.input))
		})
	}
}
