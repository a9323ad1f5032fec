// Package rtabi defines the target ABI constants shared between the code
// generator and the end-to-end harness.
// These values follow the System V AMD64 ABI.
package rtabi

// Target configuration
const (
	// GOOS and GOARCH name the only platform whose toolchain can assemble
	// and run the output.
	GOOS   = "linux"
	GOARCH = "amd64"

	// Syntax is the assembler directive selecting Intel operand order.
	Syntax = ".intel_syntax noprefix"
)

// Sizes in bytes
const (
	// WordSize is the size of the one scalar type and of every stack slot.
	WordSize = 8

	// StackAlign is the required alignment of rsp at a call instruction.
	StackAlign = 16
)

// AlignFrame rounds a frame size up to a multiple of StackAlign.
func AlignFrame(size int) int {
	return (size + StackAlign - 1) / StackAlign * StackAlign
}

// Immediate limits. Pushed literals are encoded as sign-extended 32-bit
// immediates; wider values are truncated.
const (
	MinImm32 = -1 << 31
	MaxImm32 = 1<<31 - 1
)

// Imm32 truncates v to the signed 32-bit immediate the push encodes.
func Imm32(v uint64) int32 {
	return int32(uint32(v))
}
