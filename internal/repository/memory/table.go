// Package memory implements process-lifetime stores guarded by a mutex.
package memory

import (
	"errors"
	"sync"
)

var (
	errNotFound = errors.New("row not found")
	errConflict = errors.New("row conflicts with an existing one")
)

// table is an ordered sequence of records with monotonically assigned ids.
// A non-nil conflict rejects inserts and updates that clash with another row.
type table[T any] struct {
	mu       sync.RWMutex
	rows     []T
	lastID   int64
	id       func(*T) *int64
	conflict func(a, b *T) bool
}

func newTable[T any](id func(*T) *int64, conflict func(a, b *T) bool) *table[T] {
	return &table[T]{id: id, conflict: conflict}
}

// list returns a copy of rows accepted by keep in insertion order.
func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	res := make([]T, 0, len(t.rows))
	for _, r := range t.rows {
		if keep == nil || keep(r) {
			res = append(res, r)
		}
	}
	return res
}

func (t *table[T]) get(id int64) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.index(id); i >= 0 {
		return t.rows[i], nil
	}
	var zero T
	return zero, errNotFound
}

// insert assigns the next id, runs init on the row and appends it.
func (t *table[T]) insert(row T, init func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.clashes(&row, -1) {
		var zero T
		return zero, errConflict
	}

	t.lastID++
	*t.id(&row) = t.lastID
	if init != nil {
		init(&row)
	}
	t.rows = append(t.rows, row)
	return row, nil
}

// update applies mutate to a copy and stores it unless it clashes.
func (t *table[T]) update(id int64, mutate func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	i := t.index(id)
	if i < 0 {
		return zero, errNotFound
	}

	row := t.rows[i]
	mutate(&row)
	if t.clashes(&row, i) {
		return zero, errConflict
	}
	t.rows[i] = row
	return row, nil
}

func (t *table[T]) remove(id int64) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.index(id)
	if i < 0 {
		var zero T
		return zero, errNotFound
	}
	row := t.rows[i]
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	return row, nil
}

// index and clashes must be called with mu held.
func (t *table[T]) index(id int64) int {
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) clashes(row *T, skip int) bool {
	if t.conflict == nil {
		return false
	}
	for i := range t.rows {
		if i != skip && t.conflict(row, &t.rows[i]) {
			return true
		}
	}
	return false
}
