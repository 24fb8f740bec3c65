package ordmap

import "fmt"

// Pair is a key/value element of a map. The key (First) cannot be changed
// after construction, the value (Second) can.
type Pair[K, V any] struct {
	first  K
	Second V
}

// MakePair creates a pair from a key and a value.
func MakePair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{first: key, Second: value}
}

// First returns the key of the pair.
func (p Pair[K, V]) First() K {
	return p.first
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.Second)
}
