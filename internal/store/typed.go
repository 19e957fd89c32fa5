package store

// Get returns the record under kind/id as T. A record of another type counts as absent.
func Get[T any](s *Store, kind Kind, id int) (T, bool) {
	var zero T
	raw, ok := s.Get(kind, id)
	if !ok {
		return zero, false
	}
	record, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return record, true
}

// Values returns every record of kind that is a T.
func Values[T any](s *Store, kind Kind) []T {
	raw := s.Values(kind)
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		if record, ok := r.(T); ok {
			out = append(out, record)
		}
	}
	return out
}

// Filter returns the records of kind matching keep.
func Filter[T any](s *Store, kind Kind, keep func(T) bool) []T {
	all := Values[T](s, kind)
	out := all[:0]
	for _, record := range all {
		if keep(record) {
			out = append(out, record)
		}
	}
	return out
}

// FirstByID returns the matching record with the lowest id, i.e. the earliest inserted one.
func FirstByID[T any](s *Store, kind Kind, id func(T) int, match func(T) bool) (T, bool) {
	var (
		best  T
		found bool
	)
	for _, record := range Values[T](s, kind) {
		if !match(record) {
			continue
		}
		if !found || id(record) < id(best) {
			best = record
			found = true
		}
	}
	return best, found
}

// Mutate applies fn to the T stored under kind/id and stores the result.
func Mutate[T any](s *Store, kind Kind, id int, fn func(T) T) (T, bool) {
	var zero T
	next, ok := s.Mutate(kind, id, func(current any) any {
		record, ok := current.(T)
		if !ok {
			return current
		}
		return fn(record)
	})
	if !ok {
		return zero, false
	}
	record, ok := next.(T)
	if !ok {
		return zero, false
	}
	return record, true
}
