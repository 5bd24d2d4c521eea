package streamfmt

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry maps type identities to formatter funcs and holds per-type
// range-classification overrides. Every mapping is explicit: nothing is
// registered implicitly, and the full state is queryable through
// [Registry.Lookup], [Registry.Types], and [Registry.Snapshot].
//
// The zero value is empty and ready to use. A Registry is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[reflect.Type]Func
	kinds map[reflect.Type]RangeKind
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds fn as the formatter for sample's dynamic type. The type is
// keyed exactly, so T and *T can carry distinct formatters. Registering a
// type twice returns ErrAlreadyRegistered.
func (r *Registry) Register(sample any, fn Func) error {
	if sample == nil {
		return fmt.Errorf("%w: register needs a value of the target type", ErrNilSample)
	}
	if fn == nil {
		return fmt.Errorf("%w: register %T", ErrNilFunc, sample)
	}
	t := reflect.TypeOf(sample)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[t]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, t)
	}
	if r.funcs == nil {
		r.funcs = make(map[reflect.Type]Func)
	}
	r.funcs[t] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(sample any, fn Func) {
	if err := r.Register(sample, fn); err != nil {
		panic(err)
	}
}

// Lookup retrieves the registered formatter for sample's dynamic type.
func (r *Registry) Lookup(sample any) (Func, bool) {
	if sample == nil {
		return nil, false
	}
	return r.lookupType(reflect.TypeOf(sample))
}

func (r *Registry) lookupType(t reflect.Type) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[t]
	return fn, ok
}

// Types returns the sorted names of all types with registered formatters.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for t := range r.funcs {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

// SetRangeKind overrides the range classification for sample's dynamic
// type. Overrides win over the [Deriver] capability and over kind
// derivation; RangeAuto clears the override. A nil sample is ignored.
func (r *Registry) SetRangeKind(sample any, kind RangeKind) {
	if sample == nil {
		return
	}
	t := reflect.TypeOf(sample)

	r.mu.Lock()
	defer r.mu.Unlock()

	if kind == RangeAuto {
		delete(r.kinds, t)
		return
	}
	if r.kinds == nil {
		r.kinds = make(map[reflect.Type]RangeKind)
	}
	r.kinds[t] = kind
}

// RangeKind reports the effective range classification for sample's
// dynamic type.
func (r *Registry) RangeKind(sample any) RangeKind {
	if sample == nil {
		return RangeNone
	}
	return r.rangeKindFor(reflect.TypeOf(sample))
}

// rangeKindFor resolves the effective classification of t: explicit
// override, then the Deriver capability, then the type's kind.
func (r *Registry) rangeKindFor(t reflect.Type) RangeKind {
	r.mu.RLock()
	kind, ok := r.kinds[t]
	r.mu.RUnlock()
	if ok {
		return kind
	}
	if t.Implements(deriverType) {
		return RangeDisabled
	}
	if t == seqType {
		return RangeSequence
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return RangeSequence
	case reflect.Map:
		return RangeMap
	default:
		return RangeNone
	}
}

var deriverType = reflect.TypeOf((*Deriver)(nil)).Elem()
