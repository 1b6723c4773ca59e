package postgres

import (
	"vetsoft/internal/domain/providers"

	"github.com/jmoiron/sqlx"
)

type providerRow struct {
	baseRow
	Name      string `db:"name"`
	Email     string `db:"email"`
	Direccion string `db:"direccion"`
}

func NewProvidersRepo(db *sqlx.DB) providers.Repository {
	return newTable(db, "providers",
		[]string{"name", "email", "direccion"},
		func(p providers.Provider) providerRow {
			return providerRow{
				baseRow:   toBaseRow(p.Base),
				Name:      p.Name,
				Email:     p.Email,
				Direccion: p.Direccion,
			}
		},
		func(r providerRow) providers.Provider {
			return providers.Provider{
				Base:      r.base(),
				Name:      r.Name,
				Email:     r.Email,
				Direccion: r.Direccion,
			}
		},
	)
}
