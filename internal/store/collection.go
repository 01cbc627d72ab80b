// Package store holds keyed collections in memory and writes them through
// to a snapshot repository after every committed mutation.
package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-table/internal/errors"
	"github.com/KirkDiggler/rpg-table/internal/repositories/snapshot"
)

// Config holds the dependencies for a collection
type Config[V any] struct {
	// Name identifies the collection in logs and errors
	Name string
	// Repository persists the snapshot
	Repository snapshot.Repository
	// Clone deep-copies a value so a transaction can mutate it freely
	Clone func(V) V
	// Sanitize, when set, repairs each loaded value. Returning false drops it.
	Sanitize func(key string, v V) (V, bool)
}

// Validate ensures all required dependencies are provided
func (c *Config[V]) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", c.Name, vb)
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clone == nil {
		vb.RequiredField("Clone")
	}
	return vb.Build()
}

// Collection is a map snapshot guarded by a single RWMutex. Mutations run
// as transactions over a private copy; the copy replaces the committed
// snapshot only once it has been persisted.
type Collection[V any] struct {
	name     string
	repo     snapshot.Repository
	clone    func(V) V
	sanitize func(string, V) (V, bool)

	mu   sync.RWMutex
	data map[string]V
}

// New creates an empty collection. Call Load to read the persisted snapshot.
func New[V any](cfg *Config[V]) (*Collection[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Collection[V]{
		name:     cfg.Name,
		repo:     cfg.Repository,
		clone:    cfg.Clone,
		sanitize: cfg.Sanitize,
		data:     make(map[string]V),
	}, nil
}

// Name returns the collection name
func (c *Collection[V]) Name() string {
	return c.name
}

// Load replaces the in-memory snapshot with the persisted one. A missing or
// empty document loads as an empty collection.
func (c *Collection[V]) Load(ctx context.Context) error {
	out, err := c.repo.Load(ctx, snapshot.LoadInput{})
	if err != nil {
		return errors.Wrapf(err, "failed to load %s snapshot", c.name)
	}

	data := make(map[string]V)
	if len(out.Data) > 0 {
		if err := json.Unmarshal(out.Data, &data); err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "snapshot is not valid JSON").
				WithMeta("collection", c.name)
		}
	}

	if c.sanitize != nil {
		for key, v := range data {
			fixed, keep := c.sanitize(key, v)
			if !keep {
				delete(data, key)
				continue
			}
			data[key] = fixed
		}
	}

	c.mu.Lock()
	c.data = data
	c.mu.Unlock()

	slog.Info("Snapshot loaded",
		"collection", c.name,
		"entries", len(data),
	)

	return nil
}

// View runs fn against the committed snapshot under the read lock. fn must
// not modify the map or its values, nor keep references past its return.
func (c *Collection[V]) View(fn func(data map[string]V) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return fn(c.data)
}

// Len returns the number of entries
func (c *Collection[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.data)
}

// Update runs fn as a transaction. fn receives a deep copy of the snapshot
// it may mutate. If fn fails nothing changes. Otherwise the copy is
// persisted and then committed; a persistence failure returns an
// Unavailable error and leaves the committed snapshot untouched.
func (c *Collection[V]) Update(ctx context.Context, fn func(data map[string]V) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := make(map[string]V, len(c.data))
	for key, v := range c.data {
		next[key] = c.clone(v)
	}

	if err := fn(next); err != nil {
		return err
	}

	if err := c.persist(ctx, next); err != nil {
		return err
	}

	c.data = next
	return nil
}

// Flush writes the committed snapshot again, e.g. on shutdown
func (c *Collection[V]) Flush(ctx context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.persist(ctx, c.data)
}

func (c *Collection[V]) persist(ctx context.Context, data map[string]V) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s snapshot", c.name)
	}

	if _, err := c.repo.Save(ctx, snapshot.SaveInput{Data: raw}); err != nil {
		slog.Error("Failed to persist snapshot",
			"collection", c.name,
			"bytes", len(raw),
			"error", err,
		)
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to save data, the change was not applied").
			WithMeta(errors.MetaReason, errors.ReasonStorage).
			WithMeta("collection", c.name)
	}

	return nil
}
