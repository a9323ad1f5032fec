package codegen

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with helpers for emitting assembly text.
// The first write error is kept and every later write is skipped.
type emitter struct {
	w   io.Writer
	err error // first write error
}

// emit writes a formatted line to the output (no indentation).
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitLabel writes a label definition.
func (e *emitter) emitLabel(name string) {
	e.emit("%s:", name)
}

// emitInst writes an indented instruction line.
func (e *emitter) emitInst(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, "\t"+format+"\n", args...)
}

// labelName returns the assembler label for a prefix and counter value.
func labelName(prefix string, n int) string {
	return fmt.Sprintf("%s%d", prefix, n)
}
