package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Status
		wantErr  bool
	}{
		{"open", "open", StatusOpen, false},
		{"assigned", "assigned", StatusAssigned, false},
		{"forwarded", "forwarded", StatusForwarded, false},
		{"closed", "closed", StatusClosed, false},
		{"empty", "", "", true},
		{"unknown", "pending", "", true},
		{"uppercase", "OPEN", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewStatus(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"open to assigned", StatusOpen, StatusAssigned, true},
		{"open to forwarded", StatusOpen, StatusForwarded, true},
		{"open to closed", StatusOpen, StatusClosed, true},
		{"assigned to forwarded", StatusAssigned, StatusForwarded, true},
		{"assigned to open", StatusAssigned, StatusOpen, true},
		{"forwarded to forwarded", StatusForwarded, StatusForwarded, true},
		{"forwarded to open", StatusForwarded, StatusOpen, true},
		{"forwarded to closed", StatusForwarded, StatusClosed, true},
		{"closed to closed", StatusClosed, StatusClosed, true},
		{"closed to open", StatusClosed, StatusOpen, false},
		{"closed to assigned", StatusClosed, StatusAssigned, false},
		{"closed to forwarded", StatusClosed, StatusForwarded, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusAssigned.IsAssigned())
	assert.True(t, StatusForwarded.IsForwarded())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpen.IsClosed())
}
