package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("member@study-factory.kr"))
	assert.False(t, IsValidEmail("member@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-01")
	assert.True(t, ok)
	_, ok = IsValidDate("2024-3-1")
	assert.False(t, ok)
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth("2024-03"))
	assert.False(t, IsValidMonth("2024-13"))
	assert.False(t, IsValidMonth("2024-03-01"))
}

func TestIsValidPeriods(t *testing.T) {
	assert.True(t, IsValidPeriods(nil))
	assert.True(t, IsValidPeriods([]int{1, 3, 7}))
	assert.False(t, IsValidPeriods([]int{0, 1}))
	assert.False(t, IsValidPeriods([]int{2, 2}))
	assert.False(t, IsValidPeriods([]int{3, 1}))
	assert.False(t, IsValidPeriods([]int{8}))
}
