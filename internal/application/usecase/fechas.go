package usecase

import (
	"fmt"
	"time"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
)

// parseFecha interpreta una fecha YYYY-MM-DD de la API.
func parseFecha(s string) (time.Time, error) {
	t, err := time.Parse(dto.FechaLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q: %w", s, err)
	}
	return t, nil
}

// parseFechaOpt como parseFecha pero tolera cadena vacía (devuelve nil).
func parseFechaOpt(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseFecha(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
