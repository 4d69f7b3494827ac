package index

import "fmt"

// ---------------------------------------------------------------------------
// Typed errors — matched by callers with errors.As
// ---------------------------------------------------------------------------

// DuplicateKeyError is returned when constructing an index whose key
// sequence contains the same key twice.
type DuplicateKeyError struct{ Key any }

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %v in index", e.Key)
}

// KeyNotFoundError is returned when an operation references a key the
// index does not contain.
type KeyNotFoundError struct{ Key any }

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found in index", e.Key)
}

// UnorderedIndexError is returned when an operation that requires an
// ordered index is applied to an unordered one.
type UnorderedIndexError struct{ Op string }

func (e *UnorderedIndexError) Error() string {
	return fmt.Sprintf("%s requires an ordered index", e.Op)
}
