package dto

// Envelope es el sobre uniforme de todas las respuestas del API:
// { status, message, data?, errors? }.
type Envelope struct {
	Status  bool         `json:"status"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// OK construye un sobre de éxito.
func OK(message string, data any) Envelope {
	return Envelope{Status: true, Message: message, Data: data}
}

// Fail construye un sobre de error.
func Fail(message string) Envelope {
	return Envelope{Status: false, Message: message}
}

// FailWith construye un sobre de error de validación con detalle por campo.
func FailWith(message string, errs []FieldError) Envelope {
	return Envelope{Status: false, Message: message, Errors: errs}
}

// FieldError detalle de un error de validación sobre un campo del cuerpo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
