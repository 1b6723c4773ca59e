// Package apierror define los cuerpos de error que devuelve la API.
package apierror

// APIError es el cuerpo de cualquier 4xx/5xx.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lleva los errores por campo y lo que envió el cliente.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
	Input  map[string]string `json:"input,omitempty"`
}

func NewValidation(fields, input map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields, Input: input}
}
