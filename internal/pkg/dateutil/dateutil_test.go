package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRange_Monday(t *testing.T) {
	start, end, err := WeekRange("2024-01-22")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-22", start)
	assert.Equal(t, "2024-01-28", end)
}

func TestWeekRange_Sunday(t *testing.T) {
	start, end, err := WeekRange("2024-01-21")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", start)
	assert.Equal(t, "2024-01-21", end)
}

func TestWeekRange_MidWeek(t *testing.T) {
	start, end, err := WeekRange("2024-03-06") // a Wednesday
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", start)
	assert.Equal(t, "2024-03-10", end)
}

func TestWeekRange_InvalidDate(t *testing.T) {
	_, _, err := WeekRange("01/22/2024")
	assert.Error(t, err)
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth("2024-03-01", "2024-03"))
	assert.True(t, SameMonth("2024-03-31", "2024-03"))
	assert.False(t, SameMonth("2024-04-01", "2024-03"))
	assert.False(t, SameMonth("2023-03-15", "2024-03"))
	assert.False(t, SameMonth("not-a-date", "2024-03"))
}

func TestMonthBounds(t *testing.T) {
	first, last, err := MonthBounds("2024-02")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last) // leap year
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "3월 1일 (금)", FormatDisplay("2024-03-01"))
	assert.Equal(t, "garbage", FormatDisplay("garbage"))
}
