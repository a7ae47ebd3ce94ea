package repository

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/yupiter/analytics-api/infrastructure/kvstore"
	"github.com/yupiter/analytics-api/internal/domain"
	"github.com/yupiter/analytics-api/pkg/utils"
)

// Collection is the generic entity collection manager. One instance backs
// each domain list (stores, cost rules, negatives, meetings, launches,
// reports, data sources, users) under its own key. Records keep insertion
// order and every mutation writes the whole collection through to the store
// before returning.
type Collection[T domain.Entity] interface {
	List() []T
	Find(id string) (T, bool)
	Add(item T) (T, error)
	Replace(id string, item T) (T, bool, error)
	Remove(id string) (bool, error)
}

type kvCollection[T domain.Entity] struct {
	store kvstore.Store
	key   string
	mu    sync.Mutex
	items []T
}

// NewCollection loads the cached copy once; a missing or corrupt document
// starts the collection empty.
func NewCollection[T domain.Entity](store kvstore.Store, key string) Collection[T] {
	c := &kvCollection[T]{store: store, key: key}

	var items []T
	if store.Get(key, &items) {
		c.items = items
	}

	return c
}

func (c *kvCollection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *kvCollection[T]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.GetID() == id {
			return item, true
		}
	}

	var zero T
	return zero, false
}

func (c *kvCollection[T]) Add(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := utils.GenerateID()
	if err != nil {
		var zero T
		return zero, errors.Wrap(err, "generating record id")
	}

	item.SetID(id)
	item.SetCreatedAt(time.Now().UTC())
	c.items = append(c.items, item)

	if err := c.persist(); err != nil {
		var zero T
		return zero, err
	}

	return item, nil
}

// Replace swaps in the new record for the matching id, keeping the original
// id and creation time. A missing id is a no-op: nothing changes and nothing
// is written.
func (c *kvCollection[T]) Replace(id string, item T) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, existing := range c.items {
		if existing.GetID() != id {
			continue
		}

		item.SetID(id)
		item.SetCreatedAt(existing.GetCreatedAt())
		c.items[i] = item

		if err := c.persist(); err != nil {
			var zero T
			return zero, false, err
		}

		return item, true, nil
	}

	var zero T
	return zero, false, nil
}

func (c *kvCollection[T]) Remove(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if item.GetID() == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}

	if !removed {
		return false, nil
	}

	c.items = kept
	return true, c.persist()
}

func (c *kvCollection[T]) persist() error {
	return errors.Wrapf(c.store.Set(c.key, c.items), "persisting collection %s", c.key)
}
