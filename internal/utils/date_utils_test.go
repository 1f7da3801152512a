package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("1990-05-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseDate("2024-03-10T14:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC), parsed)

	_, err = ParseDate("15/05/1990")
	assert.Error(t, err)
}

func TestFormatDateOnly(t *testing.T) {
	assert.Equal(t, "1990-05-15", FormatDateOnly(time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDateOnly(time.Time{}))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10T14:30:00.000Z", FormatTimestamp(ts))

	// Sempre em UTC, independente do fuso de origem
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	assert.Equal(t, "2024-03-10T17:30:00.000Z", FormatTimestamp(ts.In(saoPaulo).Add(3*time.Hour)))

	assert.Equal(t, "", FormatTimestamp(time.Time{}))
}

func TestEndOfDay(t *testing.T) {
	d := time.Date(2024, 1, 31, 10, 15, 0, 0, time.UTC)
	end := EndOfDay(d)

	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, d.Day(), end.Day())
}
