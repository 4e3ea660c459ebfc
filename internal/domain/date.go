package domain

import (
	"fmt"
	"time"
)

// CalendarDate é a chave de agrupamento diário (ano, mês, dia), independente de locale
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extrai a data de calendário de um instante, no fuso do próprio instante
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Before indica se d é anterior a other
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Time retorna a meia-noite UTC da data
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero indica se a data não foi preenchida
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("data inválida: %s", data)
	}

	t, err := time.Parse(time.DateOnly, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("data inválida: %w", err)
	}

	*d = DateOf(t)
	return nil
}
