package yenc

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Kernel identifies which implementation tier an engine has installed.
// The numeric values are a diagnostic convention only: 0 always means
// "generic scalar". Callers must not branch on these values; they exist so
// a host application can log/report what got selected.
type Kernel int

const (
	KernelScalar Kernel = iota // portable byte-at-a-time reference implementation
	KernelWide                 // portable word-parallel (SWAR) fast path
)

func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelWide:
		return "wide"
	default:
		return "unknown"
	}
}

// version is reported by Version(); it has no relationship to the module's
// VCS tag and exists only because every sibling implementation in this
// family (see rapidyenc's platform.go) exposes one.
const version = 0x010000

// Version returns the semantic version of this codec implementation.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

var dispatchOnce sync.Once

// dispatch probes CPU features once and selects the kernel tier for all
// three engines. It is idempotent and safe to call concurrently: it runs
// lazily, exactly once, behind sync.Once, the first time any public entry
// point needs the installed kernel.
func dispatch() {
	dispatchOnce.Do(func() {
		wide := wideAvailable()

		if wide {
			encodeKernel = KernelWide
			decodeKernel = KernelWide
			crcKernel = KernelWide
		} else {
			encodeKernel = KernelScalar
			decodeKernel = KernelScalar
			crcKernel = KernelScalar
		}
	})
}

// wideAvailable reports whether the portable SWAR kernel tier should be
// installed. The SWAR techniques used by encode_wide.go/decode_wide.go/
// crc_wide.go are pure Go and correct on every GOARCH; the CPU feature
// checks below are not a correctness gate, only a signal that this
// platform is one real hardware-SIMD or hardware-CRC kernels (not shipped
// here, see DESIGN.md) would specifically target, which is surfaced through
// EncodeKernel/DecodeKernel/CRCKernel for diagnostics.
func wideAvailable() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasSSE2
	case "arm64":
		return cpu.ARM64.HasASIMD
	default:
		return true
	}
}

var (
	encodeKernel Kernel
	decodeKernel Kernel
	crcKernel    Kernel
)

// EncodeKernel returns the kernel tier installed for Encode.
func EncodeKernel() Kernel {
	dispatch()
	return encodeKernel
}

// DecodeKernel returns the kernel tier installed for Decode/DecodeIncremental.
func DecodeKernel() Kernel {
	dispatch()
	return decodeKernel
}

// CRCKernel returns the kernel tier installed for Checksum/Update.
func CRCKernel() Kernel {
	dispatch()
	return crcKernel
}
