package dto

import "time"

// ErrorResponse cuerpo de error HTTP: status numérico, etiqueta corta, mensaje
// legible, path de origen y detalles opcionales por campo.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Details   []string  `json:"details,omitempty"`
}

// NewErrorResponse construye el payload de error con timestamp actual.
func NewErrorResponse(status int, label, message, path string, details ...string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Error:     label,
		Message:   message,
		Timestamp: time.Now(),
		Path:      path,
		Details:   details,
	}
}
