// Package maybe provides Maybe[T], a value that is either definitely known
// or permanently unknown.
//
// Unlike optional.Optional, an unknown Maybe never equals anything, itself
// included: "no information" cannot be the outcome of a comparison.
package maybe
