package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	ts := time.Date(2026, 3, 10, 23, 59, 59, 0, time.Local)
	got := DateOnly(ts)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), got)
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2026, 3, 10, 1, 0, 0, 0, time.Local)
	night := time.Date(2026, 3, 10, 23, 0, 0, 0, time.Local)
	nextDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDate(morning, night))
	assert.False(t, SameDate(night, nextDay))
}

func TestIsYesterday(t *testing.T) {
	today := time.Date(2026, 3, 11, 12, 0, 0, 0, time.Local)

	assert.True(t, IsYesterday(time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local), today))
	assert.False(t, IsYesterday(time.Date(2026, 3, 9, 8, 0, 0, 0, time.Local), today))
	assert.False(t, IsYesterday(today, today))
}

func TestFormatParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", FormatDate(parsed))
	assert.Equal(t, parsed, DateOnly(parsed))

	_, err = ParseDate("10/03/2026")
	assert.Error(t, err)
}
