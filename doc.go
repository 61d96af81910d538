// Package yenc implements the yEnc binary-to-text codec (encoder, decoder,
// and NNTP end-of-article/control-line detection) together with a CRC-32
// (IEEE 802.3, reflected) engine that supports closed-form composition
// arithmetic over the CRC Galois field: combine, zero-extend, zero-strip,
// and multiply/power.
//
// All three engines share the same architecture: a dispatch layer installs
// a kernel tier once, on first use, the kernel layer implements the hot loop
// for that tier, and a thin driver layer validates arguments and threads
// caller-owned state across calls. Every operation is synchronous,
// allocates nothing on the hot path, and is safe for concurrent use on
// disjoint buffers once init has run.
//
// This package does not parse or emit yEnc header/trailer lines
// (=ybegin/=ypart/=yend), does not handle multi-file archives or MIME
// wrapping, and does not provide cryptographic integrity — see the decoder
// End sentinel for where a caller's own header parser should take over.
package yenc
