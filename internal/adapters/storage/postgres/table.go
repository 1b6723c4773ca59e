package postgres

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"strings"
	"time"

	"vetsoft/internal/domain/records"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
)

// baseRow son las columnas comunes a todas las tablas.
type baseRow struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func toBaseRow(b records.Base) baseRow {
	return baseRow{
		ID:        b.ID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r baseRow) base() records.Base {
	return records.Base{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Table implementa records.Repository[T] sobre una tabla cuyas filas se
// escanean en R. columns no incluye las de baseRow.
type Table[T records.Entity, R any] struct {
	db      *sqlx.DB
	name    string
	columns []string
	toRow   func(T) R
	fromRow func(R) T
}

func newTable[T records.Entity, R any](db *sqlx.DB, name string, columns []string, toRow func(T) R, fromRow func(R) T) *Table[T, R] {
	return &Table[T, R]{
		db:      db,
		name:    name,
		columns: columns,
		toRow:   toRow,
		fromRow: fromRow,
	}
}

func (t *Table[T, R]) Create(ctx context.Context, v T) error {
	cols := t.allColumns()

	q := "INSERT INTO " + t.name + " (" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.Join(lo.Map(cols, func(c string, _ int) string { return ":" + c }), ", ") + ")"

	_, err := t.db.NamedExecContext(ctx, q, t.toRow(v))
	return err
}

func (t *Table[T, R]) Update(ctx context.Context, v T) error {
	sets := lo.Map(append(slices.Clone(t.columns), "updated_at"), func(c string, _ int) string { return c + " = :" + c })
	q := "UPDATE " + t.name + " SET " + strings.Join(sets, ", ") + " WHERE id = :id"

	res, err := t.db.NamedExecContext(ctx, q, t.toRow(v))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (t *Table[T, R]) GetByID(ctx context.Context, id string) (T, error) {
	var (
		zero T
		row  R
	)

	id = strings.TrimSpace(id)
	if id == "" {
		return zero, records.ErrNotFound
	}

	if err := t.db.GetContext(ctx, &row, t.selectSQL()+" WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, records.ErrNotFound
		}
		return zero, err
	}
	return t.fromRow(row), nil
}

func (t *Table[T, R]) List(ctx context.Context) ([]T, error) {
	var rows []R
	if err := t.db.SelectContext(ctx, &rows, t.selectSQL()+" ORDER BY created_at ASC, id ASC"); err != nil {
		return nil, err
	}
	return lo.Map(rows, func(r R, _ int) T { return t.fromRow(r) }), nil
}

func (t *Table[T, R]) Delete(ctx context.Context, id string) error {
	res, err := t.db.ExecContext(ctx, "DELETE FROM "+t.name+" WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (t *Table[T, R]) selectSQL() string {
	return "SELECT " + strings.Join(t.allColumns(), ", ") + " FROM " + t.name
}

func (t *Table[T, R]) allColumns() []string {
	cols := append([]string{"id"}, t.columns...)
	return append(cols, "created_at", "updated_at")
}
