package utils

import (
	"time"
)

const (
	// DateOnlyLayout é o formato de data pura usado em data_nascimento
	// e nas colunas de data do CSV.
	DateOnlyLayout = "2006-01-02"
	// TimestampLayout é o formato ISO dos timestamps exportados (UTC).
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// ParseDate aceita tanto data pura (2006-01-02) quanto ISO completo,
// garantindo consistência entre formulário e filtros.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateOnlyLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// FormatDateOnly renderiza a data como YYYY-MM-DD. Valor zero vira string
// vazia em vez de erro.
func FormatDateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateOnlyLayout)
}

// FormatTimestamp renderiza o timestamp completo em UTC. Valor zero vira
// string vazia em vez de erro.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampLayout)
}

// EndOfDay leva a data para o último instante do dia, usado no limite
// superior do filtro de período.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}
