package rtabi

// Symbols and labels of the emitted program
const (
	// EntrySymbol is the global symbol of the single emitted function.
	EntrySymbol = "main"

	// ReturnLabel is the shared epilogue every return jumps to.
	ReturnLabel = ".Lmain_ret"

	// Control-flow label prefixes; a per-unit counter is appended.
	LabelBegin = ".Lbegin"
	LabelElse  = ".Lelse"
	LabelEnd   = ".Lend"
)

// Registers with a fixed role in generated code
const (
	RegResult = "rax" // return value and left operand
	RegRemain = "rdx" // remainder of idiv
	RegCount  = "cl"  // shift count
	RegCallee = "r10" // target of a computed call
	RegFrame  = "rbp"
	RegStack  = "rsp"
)

// ArgRegs are the integer argument registers in argument order.
var ArgRegs = [...]string{"rdi", "rsi", "rdx", "rcx", "r8", "r9"}

// NumArgRegs is the number of arguments passed in registers.
const NumArgRegs = len(ArgRegs)

// StackArgs returns how many of n arguments are passed on the stack.
func StackArgs(n int) int {
	if n > NumArgRegs {
		return n - NumArgRegs
	}
	return 0
}
