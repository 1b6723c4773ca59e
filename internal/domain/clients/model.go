package clients

import "vetsoft/internal/domain/records"

// Client es un cliente (dueño de mascotas) de la clínica.
type Client struct {
	records.Base

	Name  string
	Phone string // sin separadores, empieza con 54
	Email string // siempre @vetsoft.com
	City  string
}
