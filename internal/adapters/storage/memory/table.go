package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetsoft/internal/domain/records"
)

// Table es un repositorio en memoria para cualquier entidad con records.Base.
// Se usa en dev (sin DB_DSN) y en tests.
type Table[T records.Entity] struct {
	mu   sync.RWMutex
	byID map[string]T
}

func NewTable[T records.Entity]() *Table[T] {
	return &Table[T]{
		byID: make(map[string]T),
	}
}

func (t *Table[T]) Create(ctx context.Context, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := v.Meta().ID
	if strings.TrimSpace(id) == "" {
		return errors.New("id required")
	}
	if _, exists := t.byID[id]; exists {
		return errors.New("already exists")
	}
	t.byID[id] = v
	return nil
}

func (t *Table[T]) Update(ctx context.Context, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := v.Meta().ID
	if _, exists := t.byID[id]; !exists {
		return records.ErrNotFound
	}
	t.byID[id] = v
	return nil
}

func (t *Table[T]) GetByID(ctx context.Context, id string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, records.ErrNotFound
	}
	return v, nil
}

func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.byID))
	for _, v := range t.byID {
		out = append(out, v)
	}

	// orden de alta; a igual created_at desempata el id
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Meta(), out[j].Meta()
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return out, nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.byID[id]; !ok {
		return records.ErrNotFound
	}
	delete(t.byID, id)
	return nil
}
