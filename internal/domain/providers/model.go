package providers

import "vetsoft/internal/domain/records"

// Provider es un proveedor de productos o medicamentos.
type Provider struct {
	records.Base

	Name      string
	Email     string
	Direccion string
}
