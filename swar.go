package yenc

import "encoding/binary"

// This file holds the SWAR ("SIMD within a register") helpers shared by the
// wide kernel tier of the encoder, decoder, and nothing else — the CRC wide
// tier uses a different, table-driven technique (see crc_wide.go) because
// CRC folding isn't a byte-membership test.
//
// loBytes/hiBytes/hasByte implement the classic branch-free "does this word
// contain byte b" trick: XOR the word against b broadcast into every lane,
// then test each lane for zero using the standard haszero identity. It is
// exact for every byte value in every lane — no false positives or
// negatives — and costs a handful of ALU ops to scan 8 bytes at once.
const (
	loBytes = 0x0101010101010101
	hiBytes = 0x8080808080808080
)

func hasByte(w uint64, b byte) bool {
	x := w ^ (loBytes * uint64(b))
	return (x-loBytes)&^x&hiBytes != 0
}

func loadLE64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}
