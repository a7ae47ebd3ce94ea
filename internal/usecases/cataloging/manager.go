package cataloging

import (
	"errors"

	"github.com/yupiter/analytics-api/infrastructure/repository"
	"github.com/yupiter/analytics-api/internal/domain"
)

// ErrNotFound is returned by Update and Delete when no record has the id.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects a record before it reaches the collection.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether the error is a rejected-record error.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Manager is the CRUD surface over one entity collection. Create and Update
// run the configured validators first and the prepare hooks right before the
// write, so defaults and derived fields are applied on every path.
type Manager[T domain.Entity] interface {
	List() []T
	Get(id string) (T, error)
	Create(item T) (T, error)
	Update(id string, item T) (T, error)
	Delete(id string) error
}

type Option[T domain.Entity] func(*manager[T])

// WithValidate adds a validator run before any write.
func WithValidate[T domain.Entity](fn func(T) error) Option[T] {
	return func(m *manager[T]) {
		m.validators = append(m.validators, fn)
	}
}

// WithPrepare adds a hook that normalizes the record before it is stored.
func WithPrepare[T domain.Entity](fn func(T)) Option[T] {
	return func(m *manager[T]) {
		m.preparers = append(m.preparers, fn)
	}
}

type manager[T domain.Entity] struct {
	coll       repository.Collection[T]
	validators []func(T) error
	preparers  []func(T)
}

func NewManager[T domain.Entity](coll repository.Collection[T], opts ...Option[T]) Manager[T] {
	m := &manager[T]{coll: coll}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *manager[T]) List() []T {
	return m.coll.List()
}

func (m *manager[T]) Get(id string) (T, error) {
	item, ok := m.coll.Find(id)
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return item, nil
}

func (m *manager[T]) Create(item T) (T, error) {
	if err := m.check(item); err != nil {
		var zero T
		return zero, err
	}

	m.apply(item)
	return m.coll.Add(item)
}

func (m *manager[T]) Update(id string, item T) (T, error) {
	if err := m.check(item); err != nil {
		var zero T
		return zero, err
	}

	m.apply(item)

	updated, ok, err := m.coll.Replace(id, item)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	return updated, nil
}

func (m *manager[T]) Delete(id string) error {
	removed, err := m.coll.Remove(id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (m *manager[T]) check(item T) error {
	for _, validate := range m.validators {
		if err := validate(item); err != nil {
			return err
		}
	}
	return nil
}

func (m *manager[T]) apply(item T) {
	for _, prepare := range m.preparers {
		prepare(item)
	}
}
