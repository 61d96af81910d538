package yenc

// Decode decodes the yEnc text in src into dst and returns the number of
// bytes written. src and dst may alias the same underlying array; otherwise
// dst must have capacity at least len(src).
//
// state is both input and output: it carries the sequence state across
// calls the way Encode's col does, so a caller can decode a stream in
// arbitrarily-sized chunks and get output byte-identical to a single call
// over the concatenation. Pass a *State pointing at StateCRLF (or nil) to
// start a fresh stream.
//
// isRaw enables NNTP dot-unstuffing: a line beginning with ".." in the wire
// form decodes to a line beginning with ".". Decode never errors — a
// trailing '=' with no payload yet is simply carried forward in StateEQ.
func Decode(isRaw bool, src, dst []byte, state *State) int {
	s := StateCRLF
	if state != nil {
		s = *state
	}

	_, written, next, _ := decodeCore(isRaw, false, src, dst, s)

	if state != nil {
		*state = next
	}
	return written
}

// DecodeIncremental decodes from *src into *dst with dot-unstuffing and
// end-sentinel detection always enabled, stopping early when it finds the
// \r\n=y end-of-control sentinel or the \r\n.\r\n end-of-article sentinel.
//
// On return, *src and *dst are advanced past the last consumed input byte
// and last emitted output byte respectively, and the return value reports
// why the call stopped: EndNone if it simply ran out of input, EndControl
// if src now points just past the 'y' of "=y", or EndArticle if src now
// points just past the final '\n' of ".\r\n".
//
// *src and *dst must be distinct slice variables even when they describe
// the same backing array — Go's slice value semantics already guarantee
// this for any two local variables, so no special aliasing API is needed.
func DecodeIncremental(src, dst *[]byte, state *State) End {
	s := StateCRLF
	if state != nil {
		s = *state
	}

	consumed, written, next, end := decodeCore(true, true, *src, *dst, s)

	*src = (*src)[consumed:]
	*dst = (*dst)[written:]
	if state != nil {
		*state = next
	}
	return end
}
