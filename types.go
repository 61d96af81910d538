package yenc

// State is the decoder's sequence state: a summary of the last few bytes
// seen on the logical (pre-decode) input stream, used to resume correctly
// across chunked calls and to recognise NNTP/yEnc sentinels that may span a
// call boundary.
//
// The shorthands represent: CR (\r), LF (\n), EQ (=), DT (.).
type State int

const (
	StateCRLF     State = iota // last was \r\n — line-start context (initial)
	StateCR                    // last was \r
	StateEQ                    // last was = (mid-escape, awaiting payload)
	StateNone                  // mid-line, no special context
	StateCRLFDT                // \r\n. (possibly end-of-article or dot-stuffing)
	StateCRLFDTCR               // \r\n.\r
	StateCRLFEQ                 // \r\n= (possibly end-of-control); in raw mode may also be \r\n.=
)

// String implements fmt.Stringer for diagnostics and test failure output.
func (s State) String() string {
	switch s {
	case StateCRLF:
		return "CRLF"
	case StateCR:
		return "CR"
	case StateEQ:
		return "EQ"
	case StateNone:
		return "NONE"
	case StateCRLFDT:
		return "CRLFDT"
	case StateCRLFDTCR:
		return "CRLFDTCR"
	case StateCRLFEQ:
		return "CRLFEQ"
	default:
		return "UNKNOWN"
	}
}

// End reports whether an incremental decode stopped because it ran out of
// input (None) or because it found an NNTP/yEnc sentinel in the stream.
type End int

const (
	EndNone    End = iota // end not reached, ran out of input
	EndControl            // \r\n=y found; src positioned after the 'y'
	EndArticle            // \r\n.\r\n found; src positioned after the final \n
)

func (e End) String() string {
	switch e {
	case EndNone:
		return "None"
	case EndControl:
		return "Control"
	case EndArticle:
		return "Article"
	default:
		return "Unknown"
	}
}
