package streamfmt

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Fprint formats v and writes it to w.
//
// Resolution order: a registered [Func] for the exact dynamic type, then
// the stream bridge for class types implementing [Streamer], then
// sequence/map rendering for types whose range classification allows it,
// then native scalar and string rendering. Pointers are resolved as-is
// first, then dereferenced and re-resolved. A value no stage claims
// returns ErrNoFormatter.
func (r *Registry) Fprint(w io.Writer, v any) error {
	return r.write(w, v, 0, true)
}

// Sprint formats v and returns the text.
func (r *Registry) Sprint(v any) (string, error) {
	var sb strings.Builder
	if err := r.write(&sb, v, 0, true); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Append formats v and appends the text to dst.
func (r *Registry) Append(dst []byte, v any) ([]byte, error) {
	buf := bytes.NewBuffer(dst)
	if err := r.write(buf, v, 0, true); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// claim is one stage's decision about a value, computed without writing.
type claim struct {
	rule     Rule
	fn       Func      // set when rule == RuleRegistry
	streamer Streamer  // set when rule == RuleStream
	kind     RangeKind // effective classification of the examined type
	reason   string
}

// claimFor walks the precedence ladder for v's dynamic type. v must be
// non-nil. Pointer values yield ruleNil/ruleDeref pseudo-claims for the
// caller to act on; every other outcome is final.
func (r *Registry) claimFor(v any) claim {
	t := reflect.TypeOf(v)
	c := claim{kind: r.rangeKindFor(t)}

	if fn, ok := r.lookupType(t); ok {
		c.rule, c.fn = RuleRegistry, fn
		c.reason = "registered formatter for " + t.String()
		return c
	}

	if t.Kind() == reflect.Pointer && reflect.ValueOf(v).IsNil() {
		c.rule = ruleNil
		c.reason = "nil " + t.String()
		return c
	}

	// Stream bridge. Only class-like kinds qualify: struct, slice,
	// array, and map, after pointer indirection. String and numeric
	// kinds never reach it, even when they implement Streamer.
	if s, ok := v.(Streamer); ok && classKind(t) {
		c.rule, c.streamer = RuleStream, s
		c.reason = "class type " + t.String() + " implements Streamer"
		return c
	}

	// Adapted iterators are pointer-shaped but never dereference.
	if t == seqType {
		if c.kind == RangeSequence {
			c.rule = RuleRange
			c.reason = "adapted iterator renders as a sequence"
		} else {
			c.rule = RuleNone
			c.reason = "range formatting disabled for adapted iterator"
		}
		return c
	}

	if t.Kind() == reflect.Pointer {
		c.rule = ruleDeref
		return c
	}

	switch c.kind {
	case RangeSequence:
		if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
			c.rule = RuleRange
			c.reason = "sequence " + t.String()
			return c
		}
	case RangeMap:
		if t.Kind() == reflect.Map {
			c.rule = RuleRange
			c.reason = "map " + t.String()
			return c
		}
	}

	if nativeKind(t.Kind()) {
		c.rule = RuleNative
		c.reason = t.Kind().String() + " kind formatted natively"
		return c
	}

	c.rule = RuleNone
	if c.kind == RangeDisabled {
		c.reason = "range formatting disabled for " + t.String() + " and no other stage claims it"
	} else {
		c.reason = "no stage claims " + t.String()
	}
	return c
}

// classKind reports whether t, after pointer indirection, is a class-like
// kind eligible for the stream bridge. Indirection is bounded so
// self-referential pointer types terminate.
func classKind(t reflect.Type) bool {
	for i := 0; i < maxDepth && t.Kind() == reflect.Pointer; i++ {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// write renders one value. top marks the root value; string kinds render
// verbatim at the root and debug-quoted when nested.
func (r *Registry) write(w io.Writer, v any, depth int, top bool) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: value nests beyond %d levels", ErrTooDeep, maxDepth)
	}
	if v == nil {
		_, err := io.WriteString(w, "<nil>")
		return err
	}

	c := r.claimFor(v)
	switch c.rule {
	case RuleRegistry:
		return c.fn(w, v)
	case RuleStream:
		return c.streamer.StreamTo(w)
	case RuleRange:
		return r.writeRange(w, v, depth)
	case RuleNative:
		return writeNative(w, reflect.ValueOf(v), top)
	case ruleNil:
		_, err := io.WriteString(w, "<nil>")
		return err
	case ruleDeref:
		return r.write(w, reflect.ValueOf(v).Elem().Interface(), depth+1, top)
	default:
		return fmt.Errorf("%w for type %s", ErrNoFormatter, reflect.TypeOf(v))
	}
}

// sprintNested renders v for embedding inside a sequence or map.
func (r *Registry) sprintNested(v any, depth int) (string, error) {
	var sb strings.Builder
	if err := r.write(&sb, v, depth, false); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Explain reports which stage claims v and why, without writing anything.
// The Type and RangeKind fields describe v's dynamic type; Rule and
// Reason describe the claiming stage after any pointer indirection.
func (r *Registry) Explain(v any) Resolution {
	if v == nil {
		return Resolution{Type: "<nil>", Rule: RuleNative, RangeKind: RangeNone, Reason: "nil renders <nil>"}
	}
	t := reflect.TypeOf(v)
	res := Resolution{Type: t.String(), RangeKind: r.rangeKindFor(t)}

	cur := v
	for depth := 0; depth <= maxDepth; depth++ {
		c := r.claimFor(cur)
		switch c.rule {
		case ruleNil:
			res.Rule = RuleNative
			res.Reason = c.reason + " renders <nil>"
			return res
		case ruleDeref:
			cur = reflect.ValueOf(cur).Elem().Interface()
		default:
			res.Rule = c.rule
			res.Reason = c.reason
			return res
		}
	}
	res.Rule = RuleNone
	res.Reason = fmt.Sprintf("pointer chain nests beyond %d levels", maxDepth)
	return res
}
