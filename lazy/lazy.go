// Package lazy provides a one-shot deferred-construction slot.
//
// Value[T] holds a constructor and runs it at most once, on the first Get,
// no matter how many callers (or goroutines) ask. Hold a *Value[T] wherever
// construction is expensive and first use may never happen.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Value is a deferred constructor plus the value it eventually produces.
//
// Create one with Defer. The constructor runs at most once, on the first
// Get; every later Get returns the same pointer.
type Value[T any] struct {
	ctor func() *T

	once sync.Once
	done atomic.Bool
	val  *T
}

// Defer wraps ctor without calling it.
func Defer[T any](ctor func() *T) *Value[T] {
	return &Value[T]{ctor: ctor}
}

// Get returns the constructed value, running the constructor on the first
// call. A nil constructor yields nil; the slot still counts as initialized.
func (v *Value[T]) Get() *T {
	v.once.Do(func() {
		if v.ctor != nil {
			v.val = v.ctor()
		}
		// Release the constructor; it will never run again.
		v.ctor = nil
		v.done.Store(true)
	})
	return v.val
}

// Initialized reports whether the constructor has already run.
//
// It never triggers construction, so it is safe to poll from tests or
// debug output.
func (v *Value[T]) Initialized() bool {
	return v.done.Load()
}
