package streamfmt

import (
	"io"
	"reflect"
	"strconv"
)

// nativeKind reports whether the resolver formats kind k itself: booleans,
// the integer and float kinds, complex kinds, and string kinds. Runes are
// int32 and format numerically. Channels, funcs, and unsafe pointers are
// never formattable.
func nativeKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

func writeNative(w io.Writer, rv reflect.Value, top bool) error {
	var s string
	switch rv.Kind() {
	case reflect.Bool:
		s = strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		s = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		s = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		s = strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		s = strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64:
		s = strconv.FormatComplex(rv.Complex(), 'g', -1, 64)
	case reflect.Complex128:
		s = strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	case reflect.String:
		s = rv.String()
		if !top {
			s = strconv.Quote(s)
		}
	}
	_, err := io.WriteString(w, s)
	return err
}
