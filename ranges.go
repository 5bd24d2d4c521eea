package streamfmt

import (
	"io"
	"iter"
	"math"
	"reflect"
	"sort"
)

// Seq adapts an iterator into a value that renders as a sequence.
// Elements are formatted as they arrive through the full resolution
// pipeline, so an iterator over Streamer values renders each element's
// stream output. Go's iterators are its ranges; the adapter gives them
// the same [a, b, c] rendering that slices get.
func Seq[T any](seq iter.Seq[T]) any {
	return &seqValue{seq: func(yield func(any) bool) {
		seq(func(v T) bool { return yield(v) })
	}}
}

type seqValue struct {
	seq iter.Seq[any]
}

var seqType = reflect.TypeOf((*seqValue)(nil))

// writeRange renders a value the range stage has claimed: an adapted
// iterator, a slice or array, or a map.
func (r *Registry) writeRange(w io.Writer, v any, depth int) error {
	if sv, ok := v.(*seqValue); ok {
		return r.writeSeqValue(w, sv, depth)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map {
		return r.writeMap(w, rv, depth)
	}
	return r.writeSequence(w, rv, depth)
}

func (r *Registry) writeSequence(w io.Writer, rv reflect.Value, depth int) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if err := r.write(w, rv.Index(i).Interface(), depth+1, false); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

func (r *Registry) writeSeqValue(w io.Writer, sv *seqValue, depth int) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	var seqErr error
	sv.seq(func(item any) bool {
		if !first {
			if _, err := io.WriteString(w, ", "); err != nil {
				seqErr = err
				return false
			}
		}
		first = false
		if err := r.write(w, item, depth+1, false); err != nil {
			seqErr = err
			return false
		}
		return true
	})
	if seqErr != nil {
		return seqErr
	}
	_, err := io.WriteString(w, "]")
	return err
}

// writeMap renders map entries sorted for determinism: numerically for
// numeric key kinds (NaN keys first, keeping the order total), lexically
// on the key's string value or rendered text otherwise. Keys and values
// are captured together in one pass; a NaN key can never be looked up
// again.
func (r *Registry) writeMap(w io.Writer, rv reflect.Value, depth int) error {
	type mapEntry struct {
		key  reflect.Value
		val  reflect.Value
		text string
	}
	entries := make([]mapEntry, 0, rv.Len())
	mr := rv.MapRange()
	for mr.Next() {
		k, v := mr.Key(), mr.Value()
		text, err := r.sprintNested(k.Interface(), depth+1)
		if err != nil {
			return err
		}
		entries = append(entries, mapEntry{key: k, val: v, text: text})
	}

	keyKind := rv.Type().Key().Kind()
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].key, entries[j].key
		switch keyKind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return a.Int() < b.Int()
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return a.Uint() < b.Uint()
		case reflect.Float32, reflect.Float64:
			return floatLess(a.Float(), b.Float())
		case reflect.String:
			return a.String() < b.String()
		default:
			return entries[i].text < entries[j].text
		}
	})

	if _, err := io.WriteString(w, "{"); err != nil {
		return err
	}
	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, ", "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, e.text); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}
		if err := r.write(w, e.val.Interface(), depth+1, false); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "}")
	return err
}

// floatLess orders a before b, with NaN before every other value so keys
// containing NaN still sort totally.
func floatLess(a, b float64) bool {
	if math.IsNaN(a) {
		return !math.IsNaN(b)
	}
	if math.IsNaN(b) {
		return false
	}
	return a < b
}
