package postgres

import (
	"vetsoft/internal/domain/clients"

	"github.com/jmoiron/sqlx"
)

type clientRow struct {
	baseRow
	Name  string `db:"name"`
	Phone string `db:"phone"`
	Email string `db:"email"`
	City  string `db:"city"`
}

func NewClientsRepo(db *sqlx.DB) clients.Repository {
	return newTable(db, "clients",
		[]string{"name", "phone", "email", "city"},
		func(c clients.Client) clientRow {
			return clientRow{
				baseRow: toBaseRow(c.Base),
				Name:    c.Name,
				Phone:   c.Phone,
				Email:   c.Email,
				City:    c.City,
			}
		},
		func(r clientRow) clients.Client {
			return clients.Client{
				Base:  r.base(),
				Name:  r.Name,
				Phone: r.Phone,
				Email: r.Email,
				City:  r.City,
			}
		},
	)
}
