// Package optional provides Optional[T], a value that may be absent.
//
// Highlights:
// - Empty/Of/OfNullable/FromPtr: construct an Optional
// - Filter/Map/FlatMap: transform without touching the receiver
// - Get/MustGet/OrElse/OrElseGet/OrElseErr/Or: read with a fallback
// - IfPresent/IfPresentOrElse: side-effect helpers
//
// Of panics when handed nil; OfNullable collapses nil into Empty.
package optional
