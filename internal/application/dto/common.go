package dto

// DateLayout formato de fecha calendario en la API (entrada y salida).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field nombre del campo ofensor en errores de validación.
	Field string `json:"field,omitempty"`
}
