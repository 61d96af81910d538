package yenc

// decodeWide bulk-processes src while the decoder is in StateNone — mid-line,
// no pending escape, no dot-stuffing or end-sentinel context possible — by
// scanning 8 bytes at a time for CR, LF, or '=' and bulk-subtracting 42 from
// every clean window. It stops at the first window containing one of those
// bytes, or once fewer than 8 bytes remain, and returns the number of bytes
// consumed (always a multiple of 8).
//
// It must never be called from any state other than StateNone: the other
// six states each carry context (pending escape payload, possible
// dot-stuffing, possible end sentinel) that a blind bulk subtract would
// destroy.
func decodeWide(dst, src []byte) int {
	n := 0
	for len(src)-n >= 8 {
		w := loadLE64(src[n:])
		if hasByte(w, '\r') || hasByte(w, '\n') || hasByte(w, '=') {
			break
		}
		for k := 0; k < 8; k++ {
			dst[n+k] = src[n+k] - 42
		}
		n += 8
	}
	return n
}
