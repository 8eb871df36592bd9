// Package try provides Result[T], the outcome of a computation that either
// produced a value or failed with an error.
//
// Highlights:
// - Successful/Failure/Perform: construct a Result, Perform converts a
//   returned error or a panic into a failure
// - Map/TryMap/FlatMap: move from Result[T] to Result[U]
// - Recover/RecoverWith/OrElse/GetOrElse: explicit recovery paths
// - FilterOrElse: turn a success into a failure when a predicate rejects it
// - Fold: reduce to a concrete value via failure/success handlers
// - Sequence/SequenceSeq/SequenceChan/Traverse: collect many results, the
//   first failure wins and stops consumption
// - SequenceAll: collect many results, joining every failure
//
// Only Perform, and the combinators documented to run through it, recover
// panics. Everything else lets a panicking callback propagate.
package try
