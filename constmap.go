package ordmap

// ConstMap is a read-only view of a map. It reflects later changes of the
// underlying map.
type ConstMap[K, V any] struct {
	m *Map[K, V]
}

// At returns the value stored for key, or ErrKeyNotFound.
func (c ConstMap[K, V]) At(key K) (V, error) {
	return c.m.At(key)
}

// Index behaves like At: on a read-only map, a missing key cannot be
// inserted, and Index fails with ErrKeyNotFound.
func (c ConstMap[K, V]) Index(key K) (V, error) {
	return c.m.At(key)
}

// Find returns an iterator to the element with key, or End().
func (c ConstMap[K, V]) Find(key K) ConstIterator[K, V] {
	return c.m.Find(key).Const()
}

// Count returns the number of elements with key, i.e. 0 or 1.
func (c ConstMap[K, V]) Count(key K) int {
	return c.m.Count(key)
}

// Begin returns a read-only iterator to the first element.
func (c ConstMap[K, V]) Begin() ConstIterator[K, V] {
	return c.m.Begin().Const()
}

// End returns the read-only past-the-end iterator.
func (c ConstMap[K, V]) End() ConstIterator[K, V] {
	return c.m.End().Const()
}

// Size returns the number of elements.
func (c ConstMap[K, V]) Size() int {
	return c.m.Size()
}

// Empty reports whether the map has no elements.
func (c ConstMap[K, V]) Empty() bool {
	return c.m.Empty()
}

// Clone returns a deep, modifiable copy of the underlying map.
func (c ConstMap[K, V]) Clone() *Map[K, V] {
	return c.m.Clone()
}
