package yenc

import "errors"

// ErrLineSizeTooSmall is returned by Encode when lineSize is less than 2.
// A line width of 0 or 1 cannot hold even a single escaped pair plus the
// trailing CRLF, and clamping it silently would desynchronize the caller's
// MaxLength-sized destination buffer from what Encode actually writes.
var ErrLineSizeTooSmall = errors.New("yenc: line size must be at least 2")

// Encode writes the yEnc encoding of src into dst, wrapping output lines at
// lineSize bytes, and returns the number of bytes written to dst.
//
// col is both an input and an output: it is the column the caller left off
// at (0 at the start of a fresh article/line), and Encode updates it to the
// column the next call should resume from. Passing the same *col across
// consecutive calls lets a caller encode a stream in chunks without
// re-deriving line-wrap state at each boundary.
//
// Encode treats src as a non-final chunk: a trailing TAB or SPACE in the
// output is left unescaped. Use EncodeEnd for the final chunk.
//
// dst must be at least MaxLength(len(src), lineSize) bytes; Encode does not
// bounds-check writes beyond trusting that sizing.
func Encode(lineSize int, col *int, src, dst []byte) (int, error) {
	return encode(lineSize, col, src, dst, false)
}

// EncodeEnd behaves like Encode but treats src as the final chunk of the
// stream: a trailing TAB or SPACE in the output is retroactively escaped so
// the result is safe to place immediately before a trailer line.
func EncodeEnd(lineSize int, col *int, src, dst []byte) (int, error) {
	return encode(lineSize, col, src, dst, true)
}

func encode(lineSize int, col *int, src, dst []byte, isEnd bool) (int, error) {
	if lineSize < 2 {
		return 0, ErrLineSizeTooSmall
	}

	c := 0
	if col != nil {
		c = *col
	}

	n, newCol := encodeScalar(lineSize, src, dst, c, isEnd)

	if col != nil {
		*col = newCol
	}
	return n, nil
}
