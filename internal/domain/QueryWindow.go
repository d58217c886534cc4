package domain

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("janela de consulta inválida: data final anterior à inicial")

// QueryWindow é o intervalo de datas civis (inclusivo) de uma consulta.
type QueryWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewQueryWindow(from, to time.Time) (QueryWindow, error) {
	from, to = civil(from), civil(to)
	if to.Before(from) {
		return QueryWindow{}, ErrInvalidWindow
	}
	return QueryWindow{From: from, To: to}, nil
}

// MonthToDate devolve a janela do primeiro dia do mês até a data informada.
func MonthToDate(now time.Time) QueryWindow {
	today := civil(now)
	return QueryWindow{From: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), To: today}
}

// Days devolve a quantidade de dias da janela contando os dois extremos, nunca menos que 1.
func (w QueryWindow) Days() int {
	days := int(civil(w.To).Sub(civil(w.From)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

func (w QueryWindow) Contains(t time.Time) bool {
	d := civil(t)
	return !d.Before(civil(w.From)) && !d.After(civil(w.To))
}

// Months divide a janela em meses civis, recortando o primeiro e o último mês aos limites da janela.
func (w QueryWindow) Months() []QueryWindow {
	from, to := civil(w.From), civil(w.To)
	var months []QueryWindow
	for cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC); !cursor.After(to); cursor = cursor.AddDate(0, 1, 0) {
		start := cursor
		if start.Before(from) {
			start = from
		}
		end := cursor.AddDate(0, 1, -1)
		if end.After(to) {
			end = to
		}
		months = append(months, QueryWindow{From: start, To: end})
	}
	return months
}

func (w QueryWindow) FromString() string { return w.From.Format(time.DateOnly) }
func (w QueryWindow) ToString() string   { return w.To.Format(time.DateOnly) }
