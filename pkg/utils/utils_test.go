package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-11-11")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("11/11/2025")
	assert.Error(t, err)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2025, time.December)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	assert.Equal(t,
		time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC),
		DateOnly(time.Date(2025, time.November, 11, 22, 30, 0, 0, loc)),
	)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(50, 100))
	assert.Equal(t, 33.33, Percent(1, 3))
	assert.Equal(t, 0.0, Percent(10, 0))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
