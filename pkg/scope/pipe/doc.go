// Package pipe provides a fluent Pipe[T] carrier for chaining scope
// operations with method syntax. Each pipe carries a uuid trace id and a
// UTC creation timestamp that survive every step, including the
// type-changing Using hop, so a value can be followed through a chain.
//
// Key operations:
// - From: start a pipe from a value
// - Also/Apply/Map: observe, mutate, or transform in place
// - Using/UsingTry: switch to a new value type; these are free functions
//   because Go methods cannot introduce type parameters
// - Value: unwrap
package pipe
