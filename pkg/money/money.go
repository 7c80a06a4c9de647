// Package money contiene helpers de presentación de montos y conteo de días.
// Los cálculos de negocio usan decimal.Decimal; aquí solo se formatea para reportes.
package money

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printerMX = message.NewPrinter(language.MustParse("es-MX"))

// FormatMXN formatea un monto como moneda mexicana: $1,234,567.89.
func FormatMXN(monto decimal.Decimal) string {
	f, _ := monto.Round(2).Float64()
	return printerMX.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// DiasTranscurridos devuelve los días calendario completos entre fecha y hoy,
// ignorando la hora del día. Negativo si fecha es futura.
func DiasTranscurridos(fecha time.Time, hoy time.Time) int {
	a := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
