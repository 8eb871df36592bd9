// Package fp holds the pieces shared by the container packages: the
// absence check, the two signaling errors, value equality and the default
// callables used where a combinator needs a function but the caller has
// nothing useful to pass.
//
// Highlights:
// - IsNil: reports whether a value is Go's absence sentinel
// - ErrNullValue/ErrNoSuchValue: misuse signals raised by the containers
// - Equal/SameError: value and error equality used by every container
// - Identity/Noop/Discard/Zero: stateless default callables
//
// The containers themselves live in optional, maybe and try.
package fp
