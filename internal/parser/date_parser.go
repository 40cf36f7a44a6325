package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/FarahAbbdi/mission/internal/status"
)

// ParseDate parses the date formats accepted by mission and milestone
// forms and normalizes them to YYYY-MM-DD.
// Supported formats:
// - yyyy-mm-dd (e.g., "2025-12-15")
// - dd/mm/yyyy (e.g., "15/12/2025")
// - today
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseDate(input string, today status.Today) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("date is required")
	}

	if strings.EqualFold(input, "today") {
		return today(), nil
	}

	if date, err := parseISO(input); err == nil {
		return date, nil
	}
	if date, err := parseDMY(input); err == nil {
		return date, nil
	}
	if date, err := parseRelative(input, today); err == nil {
		return date, nil
	}

	return "", fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, X days, or X weeks")
}

// parseISO parses and round-trips yyyy-mm-dd so impossible dates like
// 2025-02-30 are rejected.
func parseISO(input string) (string, error) {
	t, err := time.Parse(status.DateLayout, input)
	if err != nil {
		return "", err
	}
	return t.Format(status.DateLayout), nil
}

// parseDMY parses dd/mm/yyyy.
func parseDMY(input string) (string, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return "", fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return "", fmt.Errorf("invalid date")
	}
	return t.Format(status.DateLayout), nil
}

// parseRelative parses "X days" / "X weeks" offsets from today.
func parseRelative(input string, today status.Today) (string, error) {
	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(strings.ToLower(input))
	if len(matches) != 3 {
		return "", fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return "", fmt.Errorf("invalid number")
	}

	base, err := time.Parse(status.DateLayout, today())
	if err != nil {
		return "", err
	}

	switch matches[2] {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return "", fmt.Errorf("days must be between 1 and 365")
		}
		return base.AddDate(0, 0, amount).Format(status.DateLayout), nil
	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return "", fmt.Errorf("weeks must be between 1 and 52")
		}
		return base.AddDate(0, 0, amount*7).Format(status.DateLayout), nil
	default:
		return "", fmt.Errorf("unsupported time unit")
	}
}

// FormatDeadline formats a milestone deadline for display relative to
// today.
func FormatDeadline(deadline, today string) string {
	due, err := time.Parse(status.DateLayout, deadline)
	if err != nil {
		return deadline
	}
	now, err := time.Parse(status.DateLayout, today)
	if err != nil {
		return deadline
	}

	daysDiff := int(due.Sub(now).Hours() / 24)
	dateStr := due.Format("02/01/2006")

	switch {
	case daysDiff < 0:
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	case daysDiff == 0:
		return fmt.Sprintf("Due today (%s)", dateStr)
	case daysDiff == 1:
		return fmt.Sprintf("Due tomorrow (%s)", dateStr)
	case daysDiff <= 7:
		return fmt.Sprintf("Due %s (in %d days)", dateStr, daysDiff)
	default:
		return fmt.Sprintf("Due %s", dateStr)
	}
}

// FormatDateRange renders "YYYY-MM-DD".."YYYY-MM-DD" as
// "DD/MM/YYYY - DD/MM/YYYY" for mission cards.
func FormatDateRange(start, end string) string {
	toDMY := func(d string) string {
		t, err := time.Parse(status.DateLayout, d)
		if err != nil {
			return d
		}
		return t.Format("02/01/2006")
	}
	return toDMY(start) + " - " + toDMY(end)
}
