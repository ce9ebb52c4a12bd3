package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data %q deve estar no formato YYYY-MM-DD: %w", dateStr, err)
	}

	return &date, nil
}

// DateOnly descarta o horário mantendo o dia civil, sempre em UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds retorna o primeiro dia do mês e o primeiro dia do mês seguinte
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
