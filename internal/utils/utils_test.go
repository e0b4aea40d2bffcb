package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "INR 40000.00", FormatMoney("INR", 40000))
	assert.Equal(t, "EUR 0.10", FormatMoney("EUR", 0.1))
	assert.Equal(t, "INR 100000.0", FormatRaw("INR", 100000))
	assert.Equal(t, "EUR 0.0", FormatRaw("EUR", 0))
	assert.Equal(t, "USD 1234.5", FormatRaw("USD", 1234.5))
	assert.Equal(t, "INR 12,000", FormatGrouped("INR", 12000))
	assert.Equal(t, "INR 2,500", FormatGrouped("INR", 2500))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Paris", TitleCase("paris"))
	assert.Equal(t, "New York", TitleCase("new YORK"))
	assert.Equal(t, "Rio De Janeiro", TitleCase("rio de janeiro"))
	// apostrophes stay inside the word
	assert.Equal(t, "O'neil Bay", TitleCase("o'neil bay"))
}

func TestSafeFilenamePart(t *testing.T) {
	assert.Equal(t, "NA", SafeFilenamePart("  "))
	assert.Equal(t, "New_York_a_b", SafeFilenamePart("New York a/b"))
	assert.Len(t, SafeFilenamePart("abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz"), 40)
	assert.Equal(t, "-", Safe(" ", "-"))
}

func TestAtClock(t *testing.T) {
	day, err := ParseDate("2026-10-18", time.UTC)
	require.NoError(t, err)

	at, err := AtClock(day, "22:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 18, 22, 0, 0, 0, time.UTC), at)
	assert.Equal(t, "2026-10-18", FormatDate(at))

	_, err = AtClock(day, "late")
	assert.Error(t, err)
}
