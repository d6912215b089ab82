package repositories

import (
	"sync"

	"portfolio_backend/internal/logger"
)

// Result reports whether an operation addressed by ID found its target.
type Result int

const (
	NotFound Result = iota
	Found
)

func (r Result) String() string {
	if r == Found {
		return "found"
	}
	return "not_found"
}

// Record is implemented by every entity kept in a Collection.
type Record[T any] interface {
	Key() string
	WithKey(id string) T
	Clone() T
}

// Patch merges a partial update over a record.
type Patch[T any] interface {
	Apply(T) T
}

// maxIDAttempts bounds, on top of the collection size, the retries when a
// generated ID is already taken.
const maxIDAttempts = 16

// Collection is an ordered, ID-keyed, in-memory list of records.
//
// Every mutation builds a new backing slice and swaps it in under the write
// lock, so readers never observe a half-applied change. Records handed out are
// clones; callers cannot alias stored state.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	items []T
	ids   IDGenerator
	base  func(existing int) T
}

// NewCollection creates an empty collection. base returns the default record a
// create starts from; it receives the current collection size.
func NewCollection[T Record[T]](ids IDGenerator, base func(existing int) T) *Collection[T] {
	return &Collection[T]{
		items: []T{},
		ids:   ids,
		base:  base,
	}
}

// Create assigns a fresh ID, applies patch over the default record and appends
// the result. It never fails.
func (c *Collection[T]) Create(patch Patch[T]) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec := c.base(len(c.items))
	if patch != nil {
		rec = patch.Apply(rec)
	}
	rec = rec.WithKey(c.freshIDLocked())

	next := make([]T, len(c.items), len(c.items)+1)
	copy(next, c.items)
	c.items = append(next, rec)

	return rec.Clone()
}

// Update merges patch over the record with the given ID. The ID itself is
// never changed.
func (c *Collection[T]) Update(id string, patch Patch[T]) (T, Result) {
	return c.Modify(id, func(rec T) T {
		if patch == nil {
			return rec
		}
		return patch.Apply(rec)
	})
}

// Modify replaces the record with the given ID by fn(record).
func (c *Collection[T]) Modify(id string, fn func(T) T) (T, Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		var zero T
		return zero, NotFound
	}

	next := make([]T, len(c.items))
	copy(next, c.items)
	next[idx] = fn(next[idx].Clone()).WithKey(id)
	c.items = next

	return next[idx].Clone(), Found
}

// Delete removes the record with the given ID.
func (c *Collection[T]) Delete(id string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return NotFound
	}

	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:idx]...)
	next = append(next, c.items[idx+1:]...)
	c.items = next

	return Found
}

// SetExclusive sets a boolean flag on the target record and clears it on every
// other record in one rewrite. An unknown ID leaves the collection untouched.
func (c *Collection[T]) SetExclusive(id string, set func(rec T, on bool) T) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(id) < 0 {
		return NotFound
	}

	next := make([]T, len(c.items))
	for i, rec := range c.items {
		next[i] = set(rec.Clone(), rec.Key() == id)
	}
	c.items = next

	return Found
}

func (c *Collection[T]) Get(id string) (T, Result) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		var zero T
		return zero, NotFound
	}
	return c.items[idx].Clone(), Found
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	for i, rec := range c.items {
		out[i] = rec.Clone()
	}
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Reset replaces the contents, keeping the given records' IDs. A record whose
// ID repeats an earlier one is dropped. Records with an empty ID get a
// generated one that collides with no explicit ID, wherever it appears.
func (c *Collection[T]) Reset(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	taken := make(map[string]struct{}, len(items))
	next := make([]T, 0, len(items))
	for _, rec := range items {
		if id := rec.Key(); id != "" {
			if _, dup := taken[id]; dup {
				logger.Warn("dropping record with duplicate id", "id", id)
				continue
			}
			taken[id] = struct{}{}
		}
		next = append(next, rec.Clone())
	}

	c.items = next
	for i, rec := range c.items {
		if rec.Key() == "" {
			c.items[i] = rec.WithKey(c.freshIDLocked())
		}
	}
}

func (c *Collection[T]) indexLocked(id string) int {
	for i, rec := range c.items {
		if rec.Key() == id {
			return i
		}
	}
	return -1
}

// freshIDLocked draws IDs until one is unused. Seeded records may already
// occupy values a counter generator would produce.
func (c *Collection[T]) freshIDLocked() string {
	var id string
	for attempt := 0; attempt < len(c.items)+maxIDAttempts; attempt++ {
		id = c.ids.NewID()
		if c.indexLocked(id) < 0 {
			return id
		}
	}
	panic("repositories: id generator keeps returning taken ids: " + id)
}
