package models

import "encoding/json"

// Tracked pairs a value with a bit recording whether this instance ever had
// the value assigned. The bit says nothing about whether the value differs
// from some baseline - only that somebody set it.
type Tracked[T any] struct {
	value    T
	modified bool
}

// NewTracked returns a field already carrying v, with the bit set.
func NewTracked[T any](v T) Tracked[T] {
	return Tracked[T]{value: v, modified: true}
}

// Set assigns v and marks the field modified. Always.
func (t *Tracked[T]) Set(v T) {
	t.value = v
	t.modified = true
}

func (t Tracked[T]) Value() T { return t.value }

func (t Tracked[T]) IsModified() bool { return t.modified }

// MergeFrom overwrites t only when src carries an assigned value,
// otherwise t keeps its current value and bit.
func (t *Tracked[T]) MergeFrom(src Tracked[T]) {
	if src.modified {
		t.value = src.value
		t.modified = true
	}
}

// ClearModified resets the bit, keeping the value. A stored aggregate gets
// this after loading so a later merge reflects only fresh assignments.
func (t *Tracked[T]) ClearModified() { t.modified = false }

// Tracked fields serialize as their bare value; deserializing counts as an
// assignment, so round-tripped aggregates come back fully marked.
func (t Tracked[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

func (t *Tracked[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &t.value); err != nil {
		return err
	}
	t.modified = true
	return nil
}
