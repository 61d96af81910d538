package yenc

import "encoding/binary"

// slice8Table holds the full 8x256 slice-by-8 folding table: slice8Table[t]
// is the result of running the bit-at-a-time CRC step (t+1) times starting
// from each possible byte value, so a single lookup in slice8Table[t] folds
// in the effect of that byte sitting t positions further back in the
// stream than the byte the crc32Table lookup. slice8Table[0] is byte-for-
// byte identical to crc32Table.
var slice8Table [8][256]uint32

func init() {
	for t := 0; t < 8; t++ {
		for v := 0; v < 256; v++ {
			crc := uint32(v)
			for i := t; i >= 0; i-- {
				for j := 0; j < 8; j++ {
					if crc&1 != 0 {
						crc = (crc >> 1) ^ 0xEDB88320
					} else {
						crc >>= 1
					}
				}
			}
			slice8Table[t][v] = crc
		}
	}
}

// crcUpdateWide folds 8 bytes of data into crc per iteration using the
// slice-by-8 table, unrolled twice (16 bytes/iteration) to match the
// reference tier's UNROLL_CYCLES=2, then hands any remaining <8 bytes back
// to the caller to finish with crcUpdateScalar. crc is the complemented
// running state, same convention as crcUpdateScalar.
func crcUpdateWide(crc uint32, data []byte) (uint32, []byte) {
	fold8 := func(crc uint32, d []byte) uint32 {
		one := binary.LittleEndian.Uint32(d[0:4]) ^ crc
		two := binary.LittleEndian.Uint32(d[4:8])
		return slice8Table[0][(two>>24)&0xff] ^
			slice8Table[1][(two>>16)&0xff] ^
			slice8Table[2][(two>>8)&0xff] ^
			slice8Table[3][two&0xff] ^
			slice8Table[4][(one>>24)&0xff] ^
			slice8Table[5][(one>>16)&0xff] ^
			slice8Table[6][(one>>8)&0xff] ^
			slice8Table[7][one&0xff]
	}

	for len(data) >= 16 {
		crc = fold8(crc, data[0:8])
		crc = fold8(crc, data[8:16])
		data = data[16:]
	}
	for len(data) >= 8 {
		crc = fold8(crc, data[0:8])
		data = data[8:]
	}
	return crc, data
}
