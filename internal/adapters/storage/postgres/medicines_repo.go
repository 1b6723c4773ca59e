package postgres

import (
	"vetsoft/internal/domain/medicines"

	"github.com/jmoiron/sqlx"
)

type medicineRow struct {
	baseRow
	Name        string `db:"name"`
	Description string `db:"description"`
	Dose        int    `db:"dose"`
}

func NewMedicinesRepo(db *sqlx.DB) medicines.Repository {
	return newTable(db, "medicines",
		[]string{"name", "description", "dose"},
		func(m medicines.Medicine) medicineRow {
			return medicineRow{
				baseRow:     toBaseRow(m.Base),
				Name:        m.Name,
				Description: m.Description,
				Dose:        m.Dose,
			}
		},
		func(r medicineRow) medicines.Medicine {
			return medicines.Medicine{
				Base:        r.base(),
				Name:        r.Name,
				Description: r.Description,
				Dose:        r.Dose,
			}
		},
	)
}
