package scope

// TakeIf returns (value, true) when predicate holds for it, otherwise the
// zero value of T and false. The predicate is called exactly once and must
// treat the value as read-only.
func TakeIf[T any](value T, predicate func(T) bool) (T, bool) {
	if predicate(value) {
		return value, true
	}
	var zero T
	return zero, false
}

// TakeUnless is the complement of TakeIf: it returns (value, true) when
// predicate does not hold.
func TakeUnless[T any](value T, predicate func(T) bool) (T, bool) {
	if !predicate(value) {
		return value, true
	}
	var zero T
	return zero, false
}
