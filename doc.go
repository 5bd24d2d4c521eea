// Package streamfmt formats values through their stream-insertion
// capability, with an explicit, queryable registry deciding which rule
// renders which type.
//
// Many types carry their own human-readable rendering: a point that
// writes "(3, 4)", a matrix that writes an aligned multi-line grid. The
// package routes such class types to that rendering automatically, keeps
// matrix-like types away from generic bracketed-sequence output, and
// leaves primitives and string-like kinds to native formatting. The
// central entry points are [Fprint], [Sprint], and [Append].
//
// # Capabilities
//
// Two interfaces drive the automatic rules:
//
//   - [Streamer] — StreamTo(w io.Writer) error writes the value's own
//     rendering; eligible types format through it.
//   - [Deriver] — Derived() any, the derived-type accessor convention of
//     expression-style linear-algebra types; implementing it classifies
//     the type [RangeDisabled] so the sequence formatter never claims it.
//
// Both are ordinary Go interfaces satisfied implicitly; no type list is
// maintained anywhere.
//
// # Resolution Order
//
// Every value resolves through fixed, documented stages, most specific
// first (see [Precedence]):
//
//  1. registry — a [Func] registered for the exact dynamic type.
//  2. stream — class types (struct, slice, array, and map kinds, never
//     string or numeric kinds) implementing [Streamer].
//  3. range — slices and arrays as [a, b, c], maps as {k: v} with sorted
//     keys, unless the type's range classification disables it. Elements
//     resolve recursively, so []Point renders [(3, 4), (5, 6)]. Nested
//     strings are debug-quoted; top-level strings are not.
//  4. native — booleans, integers, floats, complex numbers, strings.
//
// A value no stage claims returns [ErrNoFormatter]. The order is total:
// at most one stage claims any value.
//
// Pointers resolve as-is first, so pointer-receiver StreamTo methods and
// *T registrations are honored, then dereference and re-resolve. Nil
// pointers and nil interfaces render "<nil>".
//
// # Registry
//
// [Register] binds a formatter func to a type; [SetRangeKind] overrides a
// type's range classification; both have package-level forms operating on
// a package-default registry in the manner of gob.Register, and methods
// on isolated [Registry] instances:
//
//	streamfmt.MustRegister(Celsius(0), func(w io.Writer, v any) error {
//		_, err := fmt.Fprintf(w, "%.1f°C", float64(v.(Celsius)))
//		return err
//	})
//
// [Streamed] is a ready-made Func forwarding to StreamTo without the
// stream stage's guards, for explicitly routing a type the automatic rule
// declines.
//
// # Grids
//
// Streamer implementations on matrix-like types usually want aligned
// columns. [WriteGrid] and [GridString] pad cells to the widest entry per
// column by display width, right-aligned, one line per row and no
// trailing newline.
//
// # Embedding in fmt
//
// [Wrap] adapts a value for stdlib fmt call sites: the result implements
// fmt.Formatter and fmt.Stringer and renders through the pipeline for the
// %v and %s verbs, so resolved output drops into log lines and templates.
//
// # Iterators
//
// [Seq] adapts an iter.Seq into a value the range stage renders as a
// sequence, formatting elements as they arrive.
//
// # Diagnostics
//
// [Explain] reports which stage claims a value and why; [Snapshot]
// captures a registry's registered types, overrides, and the precedence
// order as a [Report], encodable with [Report.WriteYAML].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoFormatter] — no stage claims the value's type
//   - [ErrMissingInterface] — [Streamed] applied to a non-Streamer
//   - [ErrTooDeep] — nesting beyond the recursion bound
//   - [ErrNilFunc], [ErrNilSample], [ErrAlreadyRegistered] — registration
//     misuse
//
// StreamTo and registered Func errors propagate unwrapped.
package streamfmt
