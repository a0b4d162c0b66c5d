package Trees

import "errors"

var (
	// ErrInvalidKey is returned when a key isn't an integer that fits the key type of the tree.
	ErrInvalidKey = errors.New("key must be an integer")
	// ErrNullValue is returned when inserting an absent value.
	ErrNullValue = errors.New("value cannot be nil")
	// ErrDuplicateKey is returned when inserting a key that is already in the tree.
	ErrDuplicateKey = errors.New("key already exists in the tree")
	// ErrKeyNotFound is returned when a search fails.
	ErrKeyNotFound = errors.New("key does not exist")
)
