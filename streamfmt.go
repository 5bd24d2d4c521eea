package streamfmt

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoFormatter       = errors.New("no formatter")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrTooDeep           = errors.New("nesting too deep")
	ErrNilFunc           = errors.New("nil formatter func")
	ErrNilSample         = errors.New("nil sample")
	ErrAlreadyRegistered = errors.New("already registered")
)

// maxDepth bounds recursion through nested sequences, maps, and pointer
// chains. Exceeding it returns ErrTooDeep instead of overflowing the stack.
const maxDepth = 64

// --- Capability Interfaces ---

// Streamer is the stream-insertion capability. A type that can write its
// own human-readable rendering to a stream implements StreamTo; the
// resolver forwards eligible values to it instead of any generic
// rendering. Formatting a Streamer produces exactly the bytes StreamTo
// writes.
type Streamer interface {
	StreamTo(w io.Writer) error
}

// Deriver marks expression-style types (matrices, tensors, lazy expression
// nodes) that identify their concrete form through a derived-type
// accessor. Implementing it classifies the type [RangeDisabled], keeping
// the generic sequence formatter away from values that render themselves
// as grids. The interface is the whole contract: no linear-algebra library
// is consulted, so any type exposing the accessor is matched.
type Deriver interface {
	Derived() any
}

// --- Value Types ---

// Func formats a single value to w. Registered Funcs take precedence over
// every built-in rule for their type.
type Func func(w io.Writer, v any) error

// RangeKind classifies how a type participates in sequence formatting.
type RangeKind int

const (
	RangeAuto     RangeKind = iota // derive from the type (the default)
	RangeNone                      // not iterable
	RangeSequence                  // render elements as [a, b, c]
	RangeMap                       // render entries as {k: v}
	RangeDisabled                  // iterable shape, but never render as a sequence
)

// String returns the classification name.
func (k RangeKind) String() string {
	switch k {
	case RangeAuto:
		return "auto"
	case RangeNone:
		return "none"
	case RangeSequence:
		return "sequence"
	case RangeMap:
		return "map"
	case RangeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Rule identifies the resolution stage that claims a value. Stages are
// tried in the order listed by [Precedence].
type Rule string

const (
	RuleRegistry Rule = "registry"
	RuleStream   Rule = "stream"
	RuleRange    Rule = "range"
	RuleNative   Rule = "native"
	RuleNone     Rule = "none"
)

// Internal pseudo-stages used while walking pointer chains. Never returned
// by Explain.
const (
	ruleDeref Rule = "deref"
	ruleNil   Rule = "nil"
)

// Precedence returns the resolution order as stage names, most specific
// first. The order is fixed; it exists so diagnostics can state it.
func Precedence() []Rule {
	return []Rule{RuleRegistry, RuleStream, RuleRange, RuleNative}
}

// Resolution describes which stage claims a value and why, without
// formatting anything. Produced by [Explain].
type Resolution struct {
	Type      string    // dynamic type of the examined value
	Rule      Rule      // claiming stage, or RuleNone
	RangeKind RangeKind // effective range classification of the type
	Reason    string
}

// --- Package-Level API ---
//
// These operate on a package-default registry, in the manner of
// gob.Register. Use [NewRegistry] for an isolated instance.

var std = NewRegistry()

// Fprint formats v and writes it to w.
func Fprint(w io.Writer, v any) error { return std.Fprint(w, v) }

// Sprint formats v and returns the text.
func Sprint(v any) (string, error) { return std.Sprint(v) }

// Append formats v and appends the text to dst.
func Append(dst []byte, v any) ([]byte, error) { return std.Append(dst, v) }

// Register adds fn as the formatter for sample's dynamic type on the
// package-default registry.
func Register(sample any, fn Func) error { return std.Register(sample, fn) }

// MustRegister panics on registration failure. Useful for init-time wiring.
func MustRegister(sample any, fn Func) { std.MustRegister(sample, fn) }

// SetRangeKind overrides the range classification for sample's dynamic
// type on the package-default registry. RangeAuto clears the override.
func SetRangeKind(sample any, kind RangeKind) { std.SetRangeKind(sample, kind) }

// RangeKindOf reports the effective range classification for v's dynamic
// type: an explicit override if set, RangeDisabled for [Deriver] types,
// otherwise the classification of the type's kind.
func RangeKindOf(v any) RangeKind { return std.RangeKind(v) }

// Explain reports which stage of the package-default registry claims v.
func Explain(v any) Resolution { return std.Explain(v) }

// Snapshot captures the package-default registry's state for diagnostics.
func Snapshot() Report { return std.Snapshot() }

// Wrap adapts v for stdlib fmt call sites using the package-default
// registry.
func Wrap(v any) Wrapped { return std.Wrap(v) }
