// Package intern provides efficient string interning for go-opttable.
// Used by the scanner for option spellings and extracted values, which
// repeat heavily across driver command lines (think -I, -L, -D on every
// compile invocation in a build).
package intern

import (
	"sync"
	"unsafe"
)

// SpellingInterner provides thread-safe string interning for option
// spellings and extracted values.
type SpellingInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewSpellingInterner creates a new interner with optional pre-allocated capacity
func NewSpellingInterner(capacity int) *SpellingInterner {
	if capacity <= 0 {
		capacity = 64 // Default capacity
	}
	return &SpellingInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern interns a string, returning the canonical version.
// Thread-safe and optimized for high-frequency access.
func (si *SpellingInterner) Intern(s string) string {
	// Fast path: read lock for common case
	si.mutex.RLock()
	if interned, exists := si.strings[s]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	// Slow path: write lock for insertion
	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring write lock
	if interned, exists := si.strings[s]; exists {
		return interned
	}

	si.strings[s] = s
	return s
}

// InternBytes interns a byte slice as string without extra allocation
func (si *SpellingInterner) InternBytes(b []byte) string {
	// Convert bytes to string without allocation for lookup
	str := bytesToString(b)
	return si.Intern(str)
}

// InternSuffix interns token[start:], the joined-value tail of a matched
// spelling. The substring header itself is cheap; interning keeps one
// canonical copy when the same value repeats across scans.
func (si *SpellingInterner) InternSuffix(token string, start int) string {
	if start >= len(token) {
		return ""
	}
	return si.Intern(token[start:])
}

// PreIntern adds known strings to avoid map growth during scanning.
// Tables call this with their full spelling set at construction time.
func (si *SpellingInterner) PreIntern(strings []string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()

	for _, s := range strings {
		si.strings[s] = s
	}
}

// Stats returns the number of interned strings for monitoring.
func (si *SpellingInterner) Stats() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Clear removes all interned strings (useful for testing)
func (si *SpellingInterner) Clear() {
	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Clear map without reallocating
	for k := range si.strings {
		delete(si.strings, k)
	}
}

// CommonSpellings contains flag spellings seen on virtually every
// compiler-style command line, pre-interned at startup.
var CommonSpellings = []string{
	"-o", "-c", "-S", "-E", "-g", "-v", "-w",
	"-I", "-L", "-l", "-D", "-U", "-W", "-f", "-O",
	"-O0", "-O1", "-O2", "-O3", "-Os",
	"--help", "--version", "-std", "-shared", "-static",
}

// bytesToString converts byte slice to string without allocation.
// Uses unsafe pointer conversion for zero-copy operation.
func bytesToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// GlobalInterner is the process-wide interner used during scanning.
// It is pre-initialized with common driver spellings.
var GlobalInterner *SpellingInterner

//nolint:gochecknoinits // Global interner requires init for pre-interning
func init() {
	GlobalInterner = NewSpellingInterner(128)
	GlobalInterner.PreIntern(CommonSpellings)
}

// Convenience functions for common use cases

// Intern interns a string using the global interner
func Intern(s string) string {
	return GlobalInterner.Intern(s)
}

// InternBytes interns a byte slice using the global interner
//
//nolint:revive // keep name for public API symmetry with Intern/InternSuffix
func InternBytes(b []byte) string {
	return GlobalInterner.InternBytes(b)
}

// InternSuffix interns a token suffix using the global interner
func InternSuffix(token string, start int) string {
	return GlobalInterner.InternSuffix(token, start)
}
