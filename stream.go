package streamfmt

import (
	"fmt"
	"io"
)

// Streamed is a ready-made [Func] that formats v through its [Streamer]
// capability, with none of the stream bridge's class-type guards.
// Registering it routes a type through StreamTo even when the automatic
// rule declines the type, e.g. a string-kind type that carries its own
// stream rendering:
//
//	streamfmt.MustRegister(Chord(""), streamfmt.Streamed)
//
// Values that do not implement Streamer return ErrMissingInterface.
func Streamed(w io.Writer, v any) error {
	s, ok := v.(Streamer)
	if !ok {
		return fmt.Errorf("%w: Streamed requires Streamer, not implemented by %T", ErrMissingInterface, v)
	}
	return s.StreamTo(w)
}
