// Package iterator defines the interface for iterating over key-value
// pairs, used across the storage engine's components so callers can
// traverse data the same way regardless of where it lives.
package iterator

// Iterator defines the interface for iterating over key-value pairs.
// This is used across the storage engine components to provide a consistent
// way to traverse data regardless of where it's stored.
type Iterator interface {
	// SeekToFirst positions the iterator at the first key
	SeekToFirst()

	// SeekToLast positions the iterator at the last key
	SeekToLast()

	// Seek positions the iterator at the first key >= target
	Seek(target []byte)

	// Next advances the iterator to the next key
	Next()

	// Prev retreats the iterator to the previous key
	Prev()

	// Key returns the current key
	Key() []byte

	// Value returns the current value
	Value() []byte

	// Valid returns true if the iterator is positioned at a valid entry
	Valid() bool

	// Status returns the iterator's sticky error state, nil unless a
	// decode failure or invariant violation occurred.
	Status() error
}
