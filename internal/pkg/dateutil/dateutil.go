// Package dateutil provides the calendar helpers the leave pipeline is built
// on: plain YYYY-MM-DD date strings, Monday-to-Sunday week windows, and
// month membership checks.
package dateutil

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical date form used across tables and the API.
	DateLayout = "2006-01-02"
	// MonthLayout identifies a calendar month.
	MonthLayout = "2006-01"
)

var weekdayNames = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// Today returns the current local date in canonical form.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ParseDate parses a canonical YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// WeekRange returns the Monday and Sunday bounding the week that contains
// date. A Sunday anchor belongs to the week that started six days earlier.
func WeekRange(date string) (start, end string, err error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}

	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}

	monday := t.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(DateLayout), sunday.Format(DateLayout), nil
}

// SameMonth reports whether date falls inside month (YYYY-MM). Comparing the
// parsed year and month keeps month boundaries exact regardless of how the
// date string is padded.
func SameMonth(date, month string) bool {
	t, err := ParseDate(date)
	if err != nil {
		return false
	}
	m, err := time.Parse(MonthLayout, month)
	if err != nil {
		return false
	}
	return t.Year() == m.Year() && t.Month() == m.Month()
}

// MonthBounds returns the first and last date of month.
func MonthBounds(month string) (first, last string, err error) {
	m, err := time.Parse(MonthLayout, month)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	firstDay := time.Date(m.Year(), m.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)
	return firstDay.Format(DateLayout), lastDay.Format(DateLayout), nil
}

// FormatDisplay renders a date for the UI, e.g. "3월 1일 (금)".
func FormatDisplay(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d월 %d일 (%s)", int(t.Month()), t.Day(), weekdayNames[int(t.Weekday())])
}
