// Package scope provides Kotlin-style scope functions for any value type:
// small generic helpers that run a caller-supplied function against a value
// inline, without an intermediate named binding.
//
// Core operations:
// - Using: consume a value and return the transform's result
// - Also: observe a value (side effect only) and return it unchanged
// - Apply: mutate a value through a pointer and return the mutated value
//
// Error-aware variants (UsingTry/AlsoTry/ApplyTry) lift functions returning
// (value, error); the error passes through unmodified. TakeIf/TakeUnless
// gate a value on a predicate with comma-ok results.
//
// Every operation is synchronous, invokes its function exactly once, and
// retains no reference to the value after returning. Ownership is by
// convention: Also's action must not mutate what it observes; Apply's
// action receives the only pointer to the copy being built, so no alias to
// the caller's original exists during the call.
package scope
