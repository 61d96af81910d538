package yenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDecodeStateTransitions enumerates one byte at a time from each state
// and checks both the resulting state and whatever got emitted, so a future
// change to decodeCore's switch can't silently change behaviour for a
// state/byte pair nobody else happens to exercise.
func TestDecodeStateTransitions(t *testing.T) {
	type step struct {
		from      State
		isRaw     bool
		b         byte
		wantState State
		wantEmit  bool
		wantByte  byte
	}

	steps := []step{
		{StateCRLF, false, 'A', StateNone, true, 'A' - 42},
		{StateCRLF, false, '\r', StateCR, false, 0},
		{StateCRLF, false, '=', StateCRLFEQ, false, 0},
		{StateCRLF, true, '.', StateCRLFDT, false, 0},
		{StateCRLF, false, '.', StateNone, true, '.' - 42},

		{StateCR, false, '\n', StateCRLF, false, 0},
		{StateCR, false, 'A', StateNone, true, 'A' - 42},
		{StateCR, false, '\r', StateCR, false, 0},
		{StateCR, false, '=', StateEQ, false, 0},

		{StateEQ, false, 'A', StateNone, true, 'A' - 106 + 256},
		{StateEQ, false, '\r', StateNone, true, '\r' - 106 + 256},

		{StateNone, false, 'A', StateNone, true, 'A' - 42},
		{StateNone, false, '\r', StateCR, false, 0},
		{StateNone, false, '=', StateEQ, false, 0},

		{StateCRLFDT, false, '\r', StateCRLFDTCR, false, 0},
		{StateCRLFDT, false, '=', StateCRLFEQ, false, 0},
		{StateCRLFDT, false, 'A', StateNone, true, 'A' - 42},

		{StateCRLFDTCR, false, 'A', StateNone, true, 'A' - 42},
		{StateCRLFDTCR, false, '\r', StateCR, false, 0},

		{StateCRLFEQ, false, 'A', StateNone, true, 'A' - 106 + 256},
	}

	for _, s := range steps {
		dst := make([]byte, 1)
		consumed, written, next, _ := decodeCore(s.isRaw, false, []byte{s.b}, dst, s.from)
		require.Equal(t, 1, consumed)
		require.Equal(t, s.wantState, next)
		if s.wantEmit {
			require.Equal(t, 1, written)
			require.Equal(t, s.wantByte, dst[0])
		} else {
			require.Equal(t, 0, written)
		}
	}
}

func TestDecodeStateCRLFDTCREndOfArticleDetection(t *testing.T) {
	dst := make([]byte, 1)
	consumed, written, next, end := decodeCore(true, true, []byte("\n"), dst, StateCRLFDTCR)
	require.Equal(t, 1, consumed)
	require.Equal(t, 0, written)
	require.Equal(t, StateCRLF, next)
	require.Equal(t, EndArticle, end)
}

func TestDecodeStateCRLFEQControlDetection(t *testing.T) {
	dst := make([]byte, 1)
	consumed, written, next, end := decodeCore(true, true, []byte("y"), dst, StateCRLFEQ)
	require.Equal(t, 1, consumed)
	require.Equal(t, 0, written)
	require.Equal(t, StateNone, next)
	require.Equal(t, EndControl, end)
}
