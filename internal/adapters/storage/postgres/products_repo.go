package postgres

import (
	"vetsoft/internal/domain/products"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type productRow struct {
	baseRow
	Name  string          `db:"name"`
	Type  string          `db:"type"`
	Price decimal.Decimal `db:"price"`
}

func NewProductsRepo(db *sqlx.DB) products.Repository {
	return newTable(db, "products",
		[]string{"name", "type", "price"},
		func(p products.Product) productRow {
			return productRow{
				baseRow: toBaseRow(p.Base),
				Name:    p.Name,
				Type:    p.Type,
				Price:   p.Price,
			}
		},
		func(r productRow) products.Product {
			return products.Product{
				Base:  r.base(),
				Name:  r.Name,
				Type:  r.Type,
				Price: r.Price,
			}
		},
	)
}
