package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetsoft/internal/platform/logger"
	"vetsoft/internal/platform/validation"

	"github.com/google/uuid"
)

type Service[T Entity] struct {
	repo   Repository[T]
	schema Schema[T]
	log    logger.Logger
	now    func() time.Time
	newID  func() string
}

func NewService[T Entity](repo Repository[T], schema Schema[T], log logger.Logger) *Service[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Service[T]{
		repo:   repo,
		schema: schema,
		log:    log.With(map[string]any{"entity": schema.Name}),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Rules expone las reglas (la capa de presentación las usa para listar campos).
func (s *Service[T]) Rules() validation.Ruleset {
	return s.schema.Rules
}

func (s *Service[T]) Validate(in validation.Fields) validation.Errors {
	return s.schema.Rules.Validate(in)
}

// Create valida la entrada completa y, solo si no hay errores, persiste.
// El error de retorno es exclusivo de storage.
func (s *Service[T]) Create(ctx context.Context, in validation.Fields) (validation.Result[T], error) {
	if errs := s.Validate(in); !errs.Empty() {
		s.log.Debug("create rejected", map[string]any{"errors": map[string]string(errs)})
		return validation.Invalid[T](errs), nil
	}

	now := s.now()
	v := s.schema.Build(Base{
		ID:        s.newID(),
		CreatedAt: now,
		UpdatedAt: now,
	}, s.schema.Rules.Normalize(in))

	if err := s.repo.Create(ctx, v); err != nil {
		return validation.Result[T]{}, fmt.Errorf("create %s: %w", s.schema.Name, err)
	}

	s.log.Info("created", map[string]any{"id": v.Meta().ID})
	return validation.Valid(v), nil
}

// Update re-valida el registro completo: lo guardado + lo que llega encima.
// Si algo falla no se toca el registro guardado.
func (s *Service[T]) Update(ctx context.Context, id string, in validation.Fields) (validation.Result[T], error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return validation.Result[T]{}, err
	}

	merged := s.schema.Fields(current).Merge(in)
	if errs := s.Validate(merged); !errs.Empty() {
		s.log.Debug("update rejected", map[string]any{"id": id, "errors": map[string]string(errs)})
		return validation.Invalid[T](errs), nil
	}

	base := current.Meta()
	base.UpdatedAt = s.now()
	v := s.schema.Build(base, s.schema.Rules.Normalize(merged))

	if err := s.repo.Update(ctx, v); err != nil {
		if errors.Is(err, ErrNotFound) {
			return validation.Result[T]{}, ErrNotFound
		}
		return validation.Result[T]{}, fmt.Errorf("update %s: %w", s.schema.Name, err)
	}

	s.log.Info("updated", map[string]any{"id": id})
	return validation.Valid(v), nil
}

func (s *Service[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrNotFound
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("get %s: %w", s.schema.Name, err)
	}
	return v, nil
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Name, err)
	}
	return items, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %s: %w", s.schema.Name, err)
	}

	s.log.Info("deleted", map[string]any{"id": id})
	return nil
}
