// internal/decode/buffer.go
package decode

// Buffer is the raw result of one holding-register read.
// Registers is a read-only snapshot: decoding never mutates or retains it.
type Buffer struct {
	Address   uint16
	Registers []uint16
}

// NewBuffer copies regs so later writes by the caller cannot race a decode.
func NewBuffer(addr uint16, regs []uint16) Buffer {
	cp := make([]uint16, len(regs))
	copy(cp, regs)
	return Buffer{Address: addr, Registers: cp}
}

// Len returns the number of registers in the buffer.
func (b Buffer) Len() int {
	return len(b.Registers)
}
