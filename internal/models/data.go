package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// FormatoData é o formato de data usado na API e no banco
const FormatoData = "2006-01-02"

// Data representa uma data de calendário, sem componente de hora
type Data struct {
	time.Time
}

// NovaData cria uma Data a partir de ano, mês e dia
func NovaData(ano int, mes time.Month, dia int) Data {
	return Data{time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)}
}

// ParseData interpreta uma data no formato 2006-01-02
func ParseData(valor string) (Data, error) {
	t, err := time.Parse(FormatoData, valor)
	if err != nil {
		return Data{}, fmt.Errorf("data inválida %q: %w", valor, err)
	}
	return Data{t}, nil
}

// MarshalJSON serializa a data no formato 2006-01-02
func (d Data) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(FormatoData) + `"`), nil
}

// UnmarshalJSON interpreta a data no formato 2006-01-02
func (d *Data) UnmarshalJSON(b []byte) error {
	valor := strings.Trim(string(b), `"`)
	if valor == "" || valor == "null" {
		return nil
	}
	parsed, err := ParseData(valor)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implementa driver.Valuer
func (d Data) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implementa sql.Scanner
func (d *Data) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseData(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseData(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		return nil
	}
	return fmt.Errorf("não é possível converter %T para Data", value)
}
