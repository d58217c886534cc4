package utils

import (
	"time"
)

// ParseDate interpreta datas no formato AAAA-MM-DD. String vazia devolve o valor zero.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, err
	}

	return date, nil
}

// ParseOptionalDate devolve nil para string vazia ou data inválida.
func ParseOptionalDate(dateStr string) *time.Time {
	if dateStr == "" {
		return nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil
	}

	return &date
}

// StartOfDay trunca o instante para a meia-noite UTC da mesma data civil.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
