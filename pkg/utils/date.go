package utils

import "time"

const (
	// Layout das datas nas células da planilha e nos payloads da API.
	DateLayout = "2006-01-02"
	// Layout do mês de referência dos fechamentos.
	MonthLayout = "2006-01"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

func FormatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayout)
}

// MonthKey retorna a chave de mês usada pelos fechamentos (ex.: "2026-08").
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}

// FormatDateBR formata a data no padrão brasileiro para descrições e avisos.
func FormatDateBR(date time.Time) string {
	return date.Format("02/01/2006")
}
