package postgres

import (
	"time"

	"vetsoft/internal/domain/pets"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type petRow struct {
	baseRow
	Name     string          `db:"name"`
	Breed    string          `db:"breed"`
	Birthday time.Time       `db:"birthday"`
	Weight   decimal.Decimal `db:"weight"`
}

func NewPetsRepo(db *sqlx.DB) pets.Repository {
	return newTable(db, "pets",
		[]string{"name", "breed", "birthday", "weight"},
		func(p pets.Pet) petRow {
			return petRow{
				baseRow:  toBaseRow(p.Base),
				Name:     p.Name,
				Breed:    p.Breed,
				Birthday: p.Birthday,
				Weight:   p.Weight,
			}
		},
		// birthday es DATE: pgx lo devuelve a medianoche UTC
		func(r petRow) pets.Pet {
			return pets.Pet{
				Base:     r.base(),
				Name:     r.Name,
				Breed:    r.Breed,
				Birthday: r.Birthday.UTC(),
				Weight:   r.Weight,
			}
		},
	)
}
