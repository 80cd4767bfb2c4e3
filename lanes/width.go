// SPDX-License-Identifier: MIT

package lanes

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Supported lane widths.
const (
	Scalar   = 1
	Width128 = 4  // 128-bit registers, 4×float32
	Width256 = 8  // 256-bit registers, 8×float32
	Width512 = 16 // 512-bit registers, 16×float32

	// MaxWidth is the widest lane group Dot accepts.
	MaxWidth = Width512
)

// Info describes the lane configuration picked for the running CPU.
type Info struct {
	Arch  string // runtime.GOARCH
	ISA   string // widest usable instruction set, "scalar" when none
	Width int    // float32 lanes per group
}

// native is resolved once; the CPU feature set never changes at runtime.
var native = detect()

// Width returns the native float32 lane width for this CPU.
// Complexity: O(1).
func Width() int { return native.Width }

// Detect returns the full lane description for this CPU.
func Detect() Info { return native }

// IsValidWidth reports whether w is a width Dot can run with.
func IsValidWidth(w int) bool {
	switch w {
	case Scalar, 2, Width128, Width256, Width512:
		return true
	default:
		return false
	}
}

// detect maps x/sys/cpu feature bits to a lane width. Feature structs for
// foreign architectures are all-false, so the switch is safe everywhere.
func detect() Info {
	info := Info{Arch: runtime.GOARCH, ISA: "scalar", Width: Scalar}
	switch {
	case cpu.X86.HasAVX512F:
		info.ISA, info.Width = "avx512f", Width512
	case cpu.X86.HasAVX2:
		info.ISA, info.Width = "avx2", Width256
	case cpu.X86.HasAVX:
		info.ISA, info.Width = "avx", Width256
	case cpu.ARM64.HasASIMD:
		info.ISA, info.Width = "asimd", Width128
	}

	return info
}
