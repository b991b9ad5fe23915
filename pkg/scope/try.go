package scope

// UsingTry calls transform with value and returns its result and error
// as-is. On error the returned R is the transform's (usually zero) value.
func UsingTry[T, R any](value T, transform func(T) (R, error)) (R, error) {
	return transform(value)
}

// AlsoTry calls action with value and returns the value together with the
// action's error, unmodified. The value is returned even on error so a
// chain can decide what to do with it.
func AlsoTry[T any](value T, action func(T) error) (T, error) {
	err := action(value)
	return value, err
}

// ApplyTry calls action with a pointer to value and returns the value and
// the action's error, unmodified. On error the value carries whatever
// mutations the action made before failing.
func ApplyTry[T any](value T, action func(*T) error) (T, error) {
	err := action(&value)
	return value, err
}
