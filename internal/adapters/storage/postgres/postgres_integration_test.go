//go:build integration

package postgres_test

// Correr con: go test -tags integration ./internal/adapters/storage/postgres/...

import (
	"context"
	"strings"
	"testing"
	"time"

	"vetsoft/internal/adapters/storage/postgres"
	"vetsoft/internal/domain/clients"
	"vetsoft/internal/domain/pets"
	"vetsoft/internal/domain/products"
	"vetsoft/internal/domain/records"
	"vetsoft/internal/platform/validation"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("vetsoft_test"),
		tcPostgres.WithUsername("vetsoft"),
		tcPostgres.WithPassword("vetsoft"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := postgres.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db))
	// idempotente
	require.NoError(t, postgres.Migrate(ctx, db))

	return db
}

func TestPetsRepo_RoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	svc := pets.NewService(postgres.NewPetsRepo(db), nil)

	res, err := svc.Create(ctx, validation.Fields{
		"name":     "Milo",
		"breed":    "Beagle",
		"birthday": "21/03/2020",
		"weight":   "10.50",
	})
	require.NoError(t, err)
	require.True(t, res.OK())

	got, err := svc.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name)
	assert.Equal(t, time.Date(2020, 3, 21, 0, 0, 0, 0, time.UTC), got.Birthday)
	assert.True(t, decimal.RequireFromString("10.50").Equal(got.Weight))

	upd, err := svc.Update(ctx, res.Record.ID, validation.Fields{"weight": "11.25"})
	require.NoError(t, err)
	require.True(t, upd.OK())

	got, err = svc.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "11.25", got.Weight.StringFixed(2))

	require.NoError(t, svc.Delete(ctx, res.Record.ID))
	_, err = svc.GetByID(ctx, res.Record.ID)
	assert.ErrorIs(t, err, records.ErrNotFound)
}

func TestPetsRepo_LargeWeight(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	svc := pets.NewService(postgres.NewPetsRepo(db), nil)

	for _, w := range []string{"99999999999", strings.Repeat("9", 64) + ".99"} {
		res, err := svc.Create(ctx, validation.Fields{
			"name":     "Tronco",
			"breed":    "Mestizo",
			"birthday": "1/1/2015",
			"weight":   w,
		})
		require.NoError(t, err, w)
		require.True(t, res.OK(), w)

		got, err := svc.GetByID(ctx, res.Record.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString(w).Equal(got.Weight), w)
	}
}

func TestClientsRepo_ListOrderAndNotFound(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgres.NewClientsRepo(db)
	svc := clients.NewService(repo, nil)

	for _, name := range []string{"Ana", "Beto", "Carla"} {
		res, err := svc.Create(ctx, validation.Fields{
			"name":  name,
			"phone": "54221555232",
			"email": "x@vetsoft.com",
			"city":  "Berisso",
		})
		require.NoError(t, err)
		require.True(t, res.OK())
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Ana", items[0].Name)
	assert.Equal(t, "Carla", items[2].Name)

	err = repo.Update(ctx, clients.Client{Base: records.Base{ID: "missing", UpdatedAt: time.Now()}})
	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), records.ErrNotFound)
}

func TestProductsRepo_Price(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	svc := products.NewService(postgres.NewProductsRepo(db), nil)

	res, err := svc.Create(ctx, validation.Fields{"name": "Pipeta", "type": "Antiparasitario", "price": "10400.50"})
	require.NoError(t, err)
	require.True(t, res.OK())

	got, err := svc.GetByID(ctx, res.Record.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10400.50").Equal(got.Price))
}
