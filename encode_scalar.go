package yenc

// escapeLUT maps a raw byte to its plain encoded form (byte+42 mod 256), or
// to 0 if that encoded form is one of the bytes that always need escaping
// (NUL, CR, LF, '='). escapedLUT maps a raw byte to its two-byte escaped
// form packed as '=' | (byte+42+64 mod 256)<<8, and is populated for the
// always-escape set plus the position-dependent set (TAB, SPACE, '.') that
// only need escaping at specific points in the stream; the scalar loop
// below decides, from context, which table to consult.
var escapeLUT [256]byte
var escapedLUT [256]uint16

func init() {
	for n := 0; n < 256; n++ {
		encoded := byte((n + 42) & 0xff)
		alwaysEscape := encoded == 0 || encoded == '\r' || encoded == '\n' || encoded == '='
		if !alwaysEscape {
			escapeLUT[n] = encoded
		}

		if alwaysEscape || encoded == '\t' || encoded == ' ' || encoded == '.' {
			escaped := byte((n + 42 + 64) & 0xff)
			escapedLUT[n] = uint16('=') | uint16(escaped)<<8
		}
	}
}

// encodeScalar is the reference yEnc encoder kernel. It encodes src into
// dst starting at column col, wrapping lines at lineSize, and — when isEnd
// is set — retroactively escapes a trailing TAB/SPACE so the output is safe
// to splice directly before a trailer line. It returns the number of bytes
// written and the column the caller should pass to the next call.
func encodeScalar(lineSize int, src, dst []byte, col int, isEnd bool) (int, int) {
	if len(src) == 0 {
		return 0, col
	}

	p := 0 // dst write offset
	i := 0 // src read offset
	wide := EncodeKernel() == KernelWide

	if col == 0 {
		c := src[i]
		i++
		if e := escapedLUT[c]; e != 0 {
			dst[p], dst[p+1] = byte(e), byte(e>>8)
			p += 2
			col = 2
		} else {
			dst[p] = c + 42
			p++
			col = 1
		}
	}

	for i < len(src) {
		for col < lineSize-1 && i < len(src) {
			if wide && col+8 <= lineSize-1 && len(src)-i >= 8 {
				// encodeWide is greedy — it consumes every clean 8-byte
				// window it finds, with no notion of line width. Cap the
				// window handed to it at what's left on the current line
				// (rounded down to a multiple of 8) so it can never carry
				// col past lineSize-1 and skip the wrap below.
				room := lineSize - 1 - col
				room -= room % 8
				end := i + room
				if end > len(src) {
					end = len(src)
				}
				if n := encodeWide(dst[p:], src[i:end]); n > 0 {
					p += n
					i += n
					col += n
					continue
				}
			}

			c := src[i]
			i++
			if escapeLUT[c] != 0 {
				dst[p] = escapeLUT[c]
				p++
				col++
			} else {
				e := escapedLUT[c]
				dst[p], dst[p+1] = byte(e), byte(e>>8)
				p += 2
				col += 2
			}
		}

		if i >= len(src) {
			break
		}

		// Last character before the line would wrap. col is lineSize-1
		// here (one column of room left) unless an escape pair has already
		// filled the line — one started at column lineSize-2, or the pair
		// that opened the line when lineSize is 2 — leaving none; col <
		// lineSize guards that case. Within the remaining single column, the CRLF
		// break is taken before a byte that needs the full 2-byte escape
		// pair instead of splitting it: the byte becomes the first
		// character of the next line, just below. '.' is exempt from
		// escaping here regardless — dot-stuffing only applies at true
		// column 0, never at this one-column-short position.
		if col < lineSize {
			c := src[i]
			if !(escapedLUT[c] != 0 && c != '.'-42) {
				i++
				dst[p] = c + 42
				p++
				col++
			}
		}

		if i >= len(src) {
			break
		}

		// First character of the next line, after the hard CRLF.
		c := src[i]
		i++
		if e := escapedLUT[c]; e != 0 {
			dst[p], dst[p+1], dst[p+2], dst[p+3] = '\r', '\n', byte(e), byte(e>>8)
			p += 4
			col = 2
		} else {
			dst[p], dst[p+1], dst[p+2] = '\r', '\n', c+42
			p += 3
			col = 1
		}
	}

	if isEnd && p > 0 {
		last := dst[p-1]
		if last == '\t' || last == ' ' {
			dst[p-1] = '='
			dst[p] = last + 64
			p++
			col++
		}
	}

	return p, col
}
