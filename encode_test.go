package yenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name     string
		lineSize int
		src      string
		expected string
	}{
		// E1/E2 from the worked examples: plain bytes shift by 42, and the
		// four raw byte values whose shift lands on NUL/CR/LF/'=' get a
		// leading '=' and a further +64.
		{"plain", 128, "Hello", "\x72\x8f\x96\x96\x99"},
		{"always escape", 128, "\xd6\xe3\xe0\x13", "=\x40=\x4d=\x4a=\x7d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, MaxLength(len(tc.src), tc.lineSize))
			col := 0
			n, err := Encode(tc.lineSize, &col, []byte(tc.src), dst)
			require.NoError(t, err)
			require.Equal(t, []byte(tc.expected), dst[:n])
		})
	}
}

func TestEncodeLineWrap(t *testing.T) {
	src := make([]byte, 40)
	for i := range src {
		src[i] = byte(i)
	}

	dst := make([]byte, MaxLength(len(src), 10))
	col := 0
	n, err := Encode(10, &col, src, dst)
	require.NoError(t, err)

	out := dst[:n]
	require.Contains(t, string(out), "\r\n")
	for i, b := range out {
		if b == '\r' {
			require.Less(t, i+1, len(out), "stream must not end on a bare CR")
			require.Equal(t, byte('\n'), out[i+1], "every CR must be part of a CRLF line break")
		}
	}
}

func TestEncodeRejectsSmallLineSize(t *testing.T) {
	dst := make([]byte, 16)
	col := 0
	_, err := Encode(1, &col, []byte("x"), dst)
	require.ErrorIs(t, err, ErrLineSizeTooSmall)
}

func TestEncodeChunkedMatchesSingleCall(t *testing.T) {
	src := []byte("The quick brown fox jumps over the lazy dog, 0123456789!")

	full := make([]byte, MaxLength(len(src), 16))
	col := 0
	n, err := Encode(16, &col, src, full)
	require.NoError(t, err)
	full = full[:n]

	chunked := make([]byte, 0, len(full))
	col = 0
	for i := 0; i < len(src); i += 7 {
		end := i + 7
		if end > len(src) {
			end = len(src)
		}
		dst := make([]byte, MaxLength(end-i, 16))
		m, err := Encode(16, &col, src[i:end], dst)
		require.NoError(t, err)
		chunked = append(chunked, dst[:m]...)
	}

	require.Equal(t, full, chunked)
}

func TestEncodeEndEscapesTrailingWhitespace(t *testing.T) {
	dst := make([]byte, MaxLength(1, 128))
	col := 1 // mid-line, so the line-start escape cannot apply
	// 0xf6 encodes (plain, mid-line) to ' ' (0xf6+42 mod 256 = 0x20); at
	// end-of-stream that trailing space must be escaped instead.
	n, err := EncodeEnd(128, &col, []byte{0xf6}, dst)
	require.NoError(t, err)
	require.Equal(t, []byte("=\x60"), dst[:n])
}
