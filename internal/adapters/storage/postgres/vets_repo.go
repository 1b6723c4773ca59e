package postgres

import (
	"vetsoft/internal/domain/vets"

	"github.com/jmoiron/sqlx"
)

type vetRow struct {
	baseRow
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Speciality string `db:"speciality"`
}

func NewVetsRepo(db *sqlx.DB) vets.Repository {
	return newTable(db, "vets",
		[]string{"name", "email", "phone", "speciality"},
		func(v vets.Vet) vetRow {
			return vetRow{
				baseRow:    toBaseRow(v.Base),
				Name:       v.Name,
				Email:      v.Email,
				Phone:      v.Phone,
				Speciality: v.Speciality,
			}
		},
		func(r vetRow) vets.Vet {
			return vets.Vet{
				Base:       r.base(),
				Name:       r.Name,
				Email:      r.Email,
				Phone:      r.Phone,
				Speciality: r.Speciality,
			}
		},
	)
}
