package pets

import (
	"time"

	"vetsoft/internal/domain/records"

	"github.com/shopspring/decimal"
)

// Pet representa una mascota atendida en la clínica.
type Pet struct {
	records.Base

	Name     string
	Breed    string
	Birthday time.Time       // solo fecha
	Weight   decimal.Decimal // kg, hasta dos decimales
}
