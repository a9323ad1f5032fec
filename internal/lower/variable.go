package lower

import "fmt"

// SlotSize is the size in bytes of one variable's stack slot.
const SlotSize = 8

// Variable is a named stack slot. Its storage is at frame pointer minus
// Offset.
type Variable struct {
	Name   string
	Offset int // positive multiple of SlotSize
}

func (v *Variable) String() string {
	return fmt.Sprintf("%s@%d", v.Name, v.Offset)
}

// scope is the flat variable table of one unit. A name resolves to the
// same Variable everywhere; a new name takes the next slot.
type scope struct {
	vars  map[string]*Variable
	order []*Variable
}

func newScope() *scope {
	return &scope{vars: make(map[string]*Variable)}
}

// lookup returns the variable for name, allocating it on first use.
func (s *scope) lookup(name string) *Variable {
	if v, ok := s.vars[name]; ok {
		return v
	}
	v := &Variable{Name: name, Offset: (len(s.order) + 1) * SlotSize}
	s.vars[name] = v
	s.order = append(s.order, v)
	return v
}

// frameSize returns the bytes needed by all allocated variables.
func (s *scope) frameSize() int {
	return len(s.order) * SlotSize
}
