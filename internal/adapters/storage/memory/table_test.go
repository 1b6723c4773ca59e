package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"vetsoft/internal/domain/providers"
	"vetsoft/internal/domain/records"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func provider(id string, at time.Time) providers.Provider {
	return providers.Provider{
		Base: records.Base{ID: id, CreatedAt: at, UpdatedAt: at},
		Name: "Proveedor " + id,
	}
}

func TestTable_CRUD(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable[providers.Provider]()
	now := time.Now()

	require.NoError(t, tbl.Create(ctx, provider("b", now.Add(time.Second))))
	require.NoError(t, tbl.Create(ctx, provider("a", now)))
	assert.Error(t, tbl.Create(ctx, provider("a", now)))
	assert.Error(t, tbl.Create(ctx, provider(" ", now)))

	items, err := tbl.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)

	p := items[0]
	p.Name = "Nuevo"
	require.NoError(t, tbl.Update(ctx, p))
	got, err := tbl.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", got.Name)

	require.NoError(t, tbl.Delete(ctx, "a"))
	_, err = tbl.GetByID(ctx, "a")
	assert.ErrorIs(t, err, records.ErrNotFound)
	assert.ErrorIs(t, tbl.Delete(ctx, "a"), records.ErrNotFound)
	assert.ErrorIs(t, tbl.Update(ctx, p), records.ErrNotFound)
}

func TestTable_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable[providers.Provider]()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tbl.Create(ctx, provider(string(rune('A'+i)), now))
		}()
	}
	wg.Wait()

	items, err := tbl.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
	// mismo created_at: desempata por id
	assert.Equal(t, "A", items[0].ID)
}
