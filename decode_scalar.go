package yenc

// genericByte applies the plain decoding rule to a byte seen outside of any
// CRLF/dot/escape context: '\r' opens a possible line break, '=' opens a
// possible escape, anything else is data.
func genericByte(b byte) (next State, emit bool, value byte) {
	switch b {
	case '\r':
		return StateCR, false, 0
	case '=':
		return StateEQ, false, 0
	default:
		return StateNone, true, b - 42
	}
}

// decodeCore runs the seven-state yEnc decoding machine over src, writing
// decoded bytes to dst (dst may alias src), and returns the number of input
// bytes consumed, the number of output bytes written, the state the stream
// is left in, and — when detectEnd is set — the end classification that
// stopped the scan early (EndNone if it ran out of input first).
//
// src and dst may be the same underlying array: every iteration reads
// src[i] before it ever writes dst[w], and w never outruns i, so aliasing
// in place never clobbers an input byte before it's consumed.
func decodeCore(isRaw, detectEnd bool, src, dst []byte, state State) (consumed, written int, end State, endKind End) {
	i, w := 0, 0
	s := state
	wide := DecodeKernel() == KernelWide

	for i < len(src) {
		if wide && s == StateNone {
			if n := decodeWide(dst[w:], src[i:]); n > 0 {
				i += n
				w += n
				continue
			}
		}

		b := src[i]

		switch s {
		case StateCRLF:
			switch {
			case isRaw && b == '.':
				s = StateCRLFDT
				i++
			case b == '\r':
				s = StateCR
				i++
			case b == '=':
				s = StateCRLFEQ
				i++
			default:
				dst[w] = b - 42
				w++
				s = StateNone
				i++
			}

		case StateCR:
			if b == '\n' {
				s = StateCRLF
				i++
				continue
			}
			next, emit, value := genericByte(b)
			if emit {
				dst[w] = value
				w++
			}
			s = next
			i++

		case StateEQ:
			dst[w] = b - 106
			w++
			s = StateNone
			i++

		case StateNone:
			next, emit, value := genericByte(b)
			if emit {
				dst[w] = value
				w++
			}
			s = next
			i++

		case StateCRLFDT:
			switch {
			case b == '\r':
				s = StateCRLFDTCR
				i++
			case b == '=':
				s = StateCRLFEQ
				i++
			default:
				dst[w] = b - 42
				w++
				s = StateNone
				i++
			}

		case StateCRLFDTCR:
			if b == '\n' {
				i++
				if detectEnd {
					return i, w, StateCRLF, EndArticle
				}
				s = StateCRLF
				continue
			}
			next, emit, value := genericByte(b)
			if emit {
				dst[w] = value
				w++
			}
			s = next
			i++

		case StateCRLFEQ:
			if detectEnd && b == 'y' {
				i++
				return i, w, StateNone, EndControl
			}
			dst[w] = b - 106
			w++
			s = StateNone
			i++
		}
	}

	return i, w, s, EndNone
}
