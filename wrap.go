package streamfmt

import (
	"fmt"
	"io"
)

// Wrapped renders a value through a registry's resolution pipeline when
// printed with the stdlib fmt verbs %v and %s, so resolved output can be
// embedded at fmt, log, and template call sites:
//
//	log.Printf("solved system:\n%v", streamfmt.Wrap(m))
//
// Resolution errors surface in fmt's own convention, e.g.
// %!v(streamfmt: no formatter for type chan int).
type Wrapped struct {
	v any
	r *Registry
}

// Wrap adapts v for stdlib fmt call sites using this registry.
func (r *Registry) Wrap(v any) Wrapped {
	return Wrapped{v: v, r: r}
}

// Format implements fmt.Formatter.
func (wd Wrapped) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		s, err := wd.r.Sprint(wd.v)
		if err != nil {
			fmt.Fprintf(st, "%%!%c(streamfmt: %v)", verb, err)
			return
		}
		io.WriteString(st, s)
	default:
		fmt.Fprintf(st, "%%!%c(streamfmt.Wrapped)", verb)
	}
}

// String implements fmt.Stringer.
func (wd Wrapped) String() string {
	s, err := wd.r.Sprint(wd.v)
	if err != nil {
		return "%!(streamfmt: " + err.Error() + ")"
	}
	return s
}
