package crm

import (
	"fmt"
	"time"
)

// Granularity es la granularidad de agrupación de un reporte.
type Granularity string

const (
	Mensual    Granularity = "monthly"
	Trimestral Granularity = "quarterly"
	Anual      Granularity = "yearly"
)

// Valida indica si la granularidad es conocida.
func (g Granularity) Valida() bool {
	switch g {
	case Mensual, Trimestral, Anual:
		return true
	}
	return false
}

// PeriodKey devuelve la llave de bucket de una fecha: YYYY-MM, YYYY-Q1..Q4 o
// YYYY. Las llaves con cero a la izquierda ordenan cronológicamente con un
// sort lexicográfico simple.
func PeriodKey(t time.Time, g Granularity) string {
	switch g {
	case Trimestral:
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%04d-Q%d", t.Year(), quarter)
	case Anual:
		return fmt.Sprintf("%04d", t.Year())
	case Mensual:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	}
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// InicioDeMes devuelve el primer día del mes de t, a medianoche.
func InicioDeMes(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MesesEntre cuenta los meses calendario completos entre el mes de a y el mes
// de b (diferencia año-mes, los días se ignoran). Negativo si b es anterior.
func MesesEntre(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// MismoMes indica si dos fechas caen en el mismo año y mes calendario.
func MismoMes(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// EnMes indica si la fecha cae en el año y mes (1-12) dados.
func EnMes(t time.Time, year, month int) bool {
	return t.Year() == year && int(t.Month()) == month
}
