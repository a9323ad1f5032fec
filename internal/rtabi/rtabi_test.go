package rtabi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignFrame(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, 0},
		{8, 16},
		{16, 16},
		{24, 32},
		{32, 32},
		{40, 48},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AlignFrame(tt.size), "size %d", tt.size)
	}
}

func TestImm32(t *testing.T) {
	assert.Equal(t, int32(42), Imm32(42))
	assert.Equal(t, int32(MaxImm32), Imm32(MaxImm32))
	assert.Equal(t, int32(MinImm32), Imm32(1<<31))
	assert.Equal(t, int32(0), Imm32(1<<32))
	assert.Equal(t, int32(-1), Imm32(1<<64-1))
}

func TestStackArgs(t *testing.T) {
	assert.Equal(t, 0, StackArgs(0))
	assert.Equal(t, 0, StackArgs(6))
	assert.Equal(t, 1, StackArgs(7))
	assert.Equal(t, 4, StackArgs(10))
	assert.Equal(t, "rdi", ArgRegs[0])
	assert.Equal(t, "r9", ArgRegs[NumArgRegs-1])
}
