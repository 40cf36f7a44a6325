package parser

import (
	"regexp"
	"strings"

	"github.com/FarahAbbdi/mission/internal/status"
)

// ParsedMilestone represents a milestone parsed from natural language
type ParsedMilestone struct {
	Name     string
	Priority string
	Deadline string
	Errors   []string
}

// ParseMilestone extracts metadata from a milestone description using
// natural syntax: "Recruit 10 beta testers +high due:2025-03-01"
//   +priority  - low/medium/high or 1/2/3
//   due:date   - any format ParseDate accepts
// Priority defaults to medium when omitted.
func ParseMilestone(input string, today status.Today) ParsedMilestone {
	result := ParsedMilestone{
		Priority: "medium",
		Errors:   []string{},
	}

	// Extract priority (+high, +2, etc.)
	priorityRegex := regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 1 {
		priority, ok := normalizePriority(matches[1])
		if ok {
			result.Priority = priority
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+matches[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Extract deadline (due:2025-03-01, due:3days, etc.)
	dueRegex := regexp.MustCompile(`due:([^\s]+)`)
	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 1 {
		deadline, err := ParseDate(strings.ReplaceAll(matches[1], "_", " "), today)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid deadline '"+matches[1]+"': "+err.Error())
		} else {
			result.Deadline = deadline
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	result.Name = strings.Join(strings.Fields(input), " ")
	return result
}

// normalizePriority converts priority input to the stored form.
func normalizePriority(priority string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "1", "low":
		return "low", true
	case "2", "medium", "med":
		return "medium", true
	case "3", "high":
		return "high", true
	default:
		return "", false
	}
}

// NormalizePriority is the exported form used by flag parsing; invalid
// input falls back to medium.
func NormalizePriority(priority string) string {
	if p, ok := normalizePriority(priority); ok {
		return p
	}
	return "medium"
}
