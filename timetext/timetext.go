// Package timetext parses human-written date, time and duration text.
//
// Input like "18May", "2021-05-18 3pm est" or "2mo 3d" becomes a typed
// value: an Absolute instant (a point with a precision range), a Relative
// instant (a partial specification evaluated against a reference), or a
// Span (a duration with per-unit components). Every value keeps enough of
// its source notation to render itself back out, so a parsed value
// round-trips to its input text and a field adjustment re-renders only
// the fields it changed.
//
// All values are immutable; operations return new instances. The only
// process-wide state is the lazily built timezone lookup table.
package timetext

//go:generate go run ../internal/cmd/generate
