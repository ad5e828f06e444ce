package asm374

import "github.com/pgaskin/ASM374/token"

// Go through the arguments of the matched encoding, check that each fits its field, and record
// the field contents for emit.
func (m *InstMatcher) sanitizeArgs(pos []token.Position) error {
	argp := m.enc.argp
	for i := 0; i < len(argp); i++ {
		t, p := argp[i], posAt(pos, i)
		switch arg := m.args[i].(type) {
		case Reg:
			if !arg.IsValid() {
				return errorf(ErrOperandRange, p, "register %s = %v out of range (r0..r15)", slotName(t), arg)
			}
			m.regs[regSlot(t)] = arg
		case Imm:
			c, ok := resizeImm(arg)
			if !ok {
				return errorf(ErrOperandRange, p, "constant C = %v out of range (%s)", arg, immRange(arg))
			}
			m.c = c
		case Mem:
			if arg.Base == R0 || !arg.Base.IsValid() {
				return errorf(ErrOperandRange, p, "index register Rb = %v out of range (r1..r15)", arg.Base)
			}
			c, ok := resizeImm(arg.Disp)
			if !ok {
				return errorf(ErrOperandRange, p, "constant C = %v out of range (%s)", arg.Disp, immRange(arg.Disp))
			}
			m.regs[1], m.c = arg.Base, c
		}
	}
	return nil
}

// Get the index of a register slot in InstMatcher.regs.
func regSlot(t byte) int {
	switch t {
	case 'b':
		return 1
	case 'c':
		return 2
	}
	return 0
}
