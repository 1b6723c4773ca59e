package products

import (
	"vetsoft/internal/domain/records"

	"github.com/shopspring/decimal"
)

type Product struct {
	records.Base

	Name  string
	Type  string
	Price decimal.Decimal // siempre > 0
}
