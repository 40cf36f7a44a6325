package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMilestone(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantName     string
		wantPriority string
		wantDeadline string
		wantErrors   int
	}{
		{
			name:         "plain text defaults to medium",
			input:        "Recruit 10 beta testers",
			wantName:     "Recruit 10 beta testers",
			wantPriority: "medium",
		},
		{
			name:         "inline priority",
			input:        "Ship landing page +high",
			wantName:     "Ship landing page",
			wantPriority: "high",
		},
		{
			name:         "numeric priority",
			input:        "Write docs +1",
			wantName:     "Write docs",
			wantPriority: "low",
		},
		{
			name:         "iso due token",
			input:        "Launch due:2025-03-01",
			wantName:     "Launch",
			wantPriority: "medium",
			wantDeadline: "2025-03-01",
		},
		{
			name:         "relative due with underscore",
			input:        "Demo day due:2_weeks",
			wantName:     "Demo day",
			wantPriority: "medium",
			wantDeadline: "2025-06-29",
		},
		{
			name:         "priority and due together",
			input:        "Recruit testers +high due:2025-03-01",
			wantName:     "Recruit testers",
			wantPriority: "high",
			wantDeadline: "2025-03-01",
		},
		{
			name:         "invalid priority reported",
			input:        "Do thing +urgent",
			wantName:     "Do thing",
			wantPriority: "medium",
			wantErrors:   1,
		},
		{
			name:         "invalid due reported",
			input:        "Do thing due:whenever",
			wantName:     "Do thing",
			wantPriority: "medium",
			wantErrors:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMilestone(tt.input, fixedToday)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Equal(t, tt.wantDeadline, got.Deadline)
			assert.Len(t, got.Errors, tt.wantErrors)
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, "low", NormalizePriority("1"))
	assert.Equal(t, "medium", NormalizePriority("med"))
	assert.Equal(t, "high", NormalizePriority("HIGH"))
	assert.Equal(t, "medium", NormalizePriority(""))
	assert.Equal(t, "medium", NormalizePriority("urgent"))
}
