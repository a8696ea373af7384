package shape

// Store is an ordered, append-only sequence. Insertion order is the order in
// which items are drawn, so later items end up on top.
//
// A Store is owned by the frame loop and is not safe for concurrent use.
type Store[T any] struct {
	items []T
}

// NewStore returns an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Append adds v at the end.
func (s *Store[T]) Append(v T) {
	s.items = append(s.items, v)
}

// Len reports the number of stored items.
func (s *Store[T]) Len() int { return len(s.items) }

// At returns the i-th item in insertion order.
func (s *Store[T]) At(i int) T { return s.items[i] }

// All returns a copy of the stored items.
func (s *Store[T]) All() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every item in insertion order.
func (s *Store[T]) Each(fn func(T)) {
	for _, v := range s.items {
		fn(v)
	}
}
