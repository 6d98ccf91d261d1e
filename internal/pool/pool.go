// Package pool provides object pooling for go-opttable scanning.
// Used by the scanner to reuse per-scan result buffers (argument lists and
// value arenas) and keep steady-state scanning allocation-free.
package pool

import (
	"sync"
)

// Pool provides a generic, type-safe object pool with an optional reset
// hook invoked before reuse.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool provides pooling for string slices. The scanner uses
// these as value arenas: every extracted value of a scan is appended to
// one arena and arguments hold subslices into it.
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a new string slice pool
func NewStringSlicePool(defaultCap int) *StringSlicePool {
	return &StringSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				*slice = (*slice)[:0] // Reset length but keep capacity
			},
		),
	}
}

// Global pool instances for scanning
var (
	// GlobalStringSlicePool backs value arenas; 32 covers a typical
	// compile line with room to spare.
	GlobalStringSlicePool = NewStringSlicePool(32)
)

// GetStringSlice retrieves a string slice for extracted values
func GetStringSlice() *[]string {
	return GlobalStringSlicePool.Get()
}

// PutStringSlice returns a string slice to the global pool
func PutStringSlice(slice *[]string) {
	GlobalStringSlicePool.Put(slice)
}
