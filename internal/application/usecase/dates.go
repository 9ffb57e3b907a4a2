package usecase

import (
	"time"

	"github.com/jhoicas/hemis-api/internal/application/dto"
	"github.com/jhoicas/hemis-api/internal/domain"
)

// parseDate parsea una fecha calendario "YYYY-MM-DD" requerida.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, domain.NewValidationError(field, "es requerido")
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "fecha malformada, se espera YYYY-MM-DD")
	}
	return t, nil
}

// parseOptionalDate parsea una fecha opcional; vacío devuelve nil.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatDate serializa una fecha como "YYYY-MM-DD"; cero devuelve "".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dto.DateLayout)
}

// formatOptionalDate serializa una fecha opcional.
func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}
