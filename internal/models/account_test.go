package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderName(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"uuid", "a1b2c3d4-e5f6-7890-abcd-ef1234567890", "A1B2C3"},
		{"dashes stripped before counting", "a-b-c-d-e-f-g", "ABCDEF"},
		{"short id", "ab", "AB"},
		{"digits kept", "1234567", "123456"},
		{"only symbols", "---___", "UNKNOWN"},
		{"empty", "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderName(tt.id))
		})
	}
}

func TestProfileDisplayName(t *testing.T) {
	named := Profile{ID: "a1b2c3d4", Name: "Alex"}
	assert.Equal(t, "Alex", named.DisplayName())

	unnamed := Profile{ID: "a1b2c3d4"}
	assert.Equal(t, "A1B2C3", unnamed.DisplayName())

	whitespace := Profile{ID: "a1b2c3d4", Name: "   "}
	assert.Equal(t, "A1B2C3", whitespace.DisplayName())
}
