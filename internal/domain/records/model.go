package records

import (
	"context"
	"errors"
	"time"

	"vetsoft/internal/platform/validation"
)

var (
	ErrNotFound = errors.New("not found")
)

// Base son los campos comunes a toda entidad persistida.
type Base struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Meta permite leer Base desde una entidad que la embebe.
func (b Base) Meta() Base { return b }

type Entity interface {
	Meta() Base
}

type Repository[T Entity] interface {
	Create(ctx context.Context, v T) error
	Update(ctx context.Context, v T) error
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
}

// Schema describe cómo validar, construir y volver a texto una entidad.
type Schema[T Entity] struct {
	// Name se usa en logs ("clients", "pets", ...).
	Name  string
	Rules validation.Ruleset

	// Build arma la entidad tipada a partir de campos ya validados y normalizados.
	Build func(base Base, f validation.Fields) T

	// Fields devuelve la entidad como entrada cruda, para mezclar en Update.
	Fields func(v T) validation.Fields
}
