package Trees

import "golang.org/x/exp/constraints"

// Ordered is the part of BSTree that any ordered key-value container can offer.
// The benchmarks and cross checks in package comparisons run the same workloads
// against every implementation through it.
// Methods returning an error follow the error kinds of BSTree: ErrDuplicateKey when
// inserting a present key and ErrKeyNotFound when the key is missing.
// Implementations are not required to be safe for concurrent use.
type Ordered[K constraints.Integer, V any] interface {
	//Insert k with value v. The container is unchanged on failure.
	Insert(k K, v V) error
	//Remove k. The container is unchanged on failure.
	Remove(k K) error
	//Get the value with key k.
	Get(k K) (V, error)
	//Size of the container.
	Size() int
	//Keys in ascending order.
	Keys() []K
}

var _ Ordered[int, struct{}] = (*BSTree[int, struct{}])(nil)
