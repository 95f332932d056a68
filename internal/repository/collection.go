package repository

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// InsertMode decides where Insert places a new record.
type InsertMode int

const (
	// Prepend puts new records first (newest on top).
	Prepend InsertMode = iota
	// Append puts new records last.
	Append
)

// Guard inspects the list and the record about to be written, while the
// write lock is held.  It may fill derived fields of candidate; a non-nil
// error aborts the write.
type Guard[T any] func(all []T, candidate *T) error

// Collection is an ordered list of records guarded by a RWMutex.  Reads
// hand out copies, so callers can never mutate the stored slice.  Every
// write replaces a whole record.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	entity string
	mode   InsertMode
	idOf   func(*T) *string
	now    func() time.Time
}

// NewCollection builds a collection for entity (used in not-found errors).
// idOf must return a pointer to the record's id field.
func NewCollection[T any](entity string, mode InsertMode, idOf func(*T) *string, seed []T) *Collection[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &Collection[T]{
		items:  items,
		entity: entity,
		mode:   mode,
		idOf:   idOf,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for new ids.
func (c *Collection[T]) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// List returns a copy of every record in stored order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Len returns the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return zero, c.notFound(id)
	}
	return c.items[i], nil
}

// Insert assigns a fresh id to item and stores it.
func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	return c.InsertIf(ctx, item, nil)
}

// InsertIf is Insert with a guard evaluated under the write lock, after the
// id has been assigned.
func (c *Collection[T]) InsertIf(ctx context.Context, item T, guard Guard[T]) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID()
	*c.idOf(&item) = id
	if guard != nil {
		if err := guard(c.items, &item); err != nil {
			return zero, err
		}
		*c.idOf(&item) = id
	}

	next := make([]T, 0, len(c.items)+1)
	if c.mode == Prepend {
		next = append(next, item)
		next = append(next, c.items...)
	} else {
		next = append(next, c.items...)
		next = append(next, item)
	}
	c.items = next
	return item, nil
}

// Update applies fn to a copy of the record with the given id and stores the
// result in place.  The id cannot be changed by fn.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(*T) error) (T, error) {
	return c.UpdateIf(ctx, id, fn, nil)
}

// UpdateIf is Update with a guard evaluated under the write lock against the
// modified record.
func (c *Collection[T]) UpdateIf(ctx context.Context, id string, fn func(*T) error, guard Guard[T]) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, c.notFound(id)
	}
	rec := c.items[i]
	if err := fn(&rec); err != nil {
		return zero, err
	}
	*c.idOf(&rec) = id
	if guard != nil {
		if err := guard(c.items, &rec); err != nil {
			return zero, err
		}
		*c.idOf(&rec) = id
	}

	next := make([]T, len(c.items))
	copy(next, c.items)
	next[i] = rec
	c.items = next
	return rec, nil
}

// Replace overwrites the record with the given id, keeping the id.
func (c *Collection[T]) Replace(ctx context.Context, id string, item T) (T, error) {
	return c.Update(ctx, id, func(rec *T) error {
		*rec = item
		return nil
	})
}

// Delete removes the record with the given id.  The remaining records keep
// their order.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return c.notFound(id)
	}
	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)
	c.items = next
	return nil
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if *c.idOf(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

// nextID returns the current millisecond timestamp as a string, bumped
// until it collides with no stored id.  Caller holds the write lock.
func (c *Collection[T]) nextID() string {
	n := c.now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if c.indexOf(id) < 0 {
			return id
		}
		n++
	}
}

func (c *Collection[T]) notFound(id string) error {
	return &NotFoundError{Entity: c.entity, ID: id}
}
