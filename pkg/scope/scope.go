package scope

// Using calls transform with value and returns the result. The value is
// handed over to the transform; callers should not use it afterwards.
//
// Use it to derive a new value mid-expression:
//
//	area := scope.Using(readRect(), func(r Rect) float64 { return r.W * r.H })
func Using[T, R any](value T, transform func(T) R) R {
	return transform(value)
}

// Also calls action with value for its side effect and returns the same
// value. The action must treat the value as read-only.
//
// Use it to slot logging or assertions into a chain:
//
//	n := scope.Also(compute(), func(v int) { log.Printf("got %d", v) })
func Also[T any](value T, action func(T)) T {
	action(value)
	return value
}

// Apply calls action with a pointer to value and returns the value with
// whatever mutations the action performed. The pointer is to Apply's own
// copy, so the caller's original is never visible mid-mutation.
//
// Use it for build-then-configure:
//
//	srv := scope.Apply(NewServer(), func(s *Server) { s.Port = 8080 })
func Apply[T any](value T, action func(*T)) T {
	action(&value)
	return value
}
