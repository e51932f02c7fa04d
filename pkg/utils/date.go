package utils

import "time"

// ParseReferenceDate interpreta uma data YYYY-MM-DD; texto vazio retorna fallback
func ParseReferenceDate(dateStr string, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// StartOfDay trunca o horário mantendo o fuso
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
