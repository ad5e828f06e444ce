package asm374

import (
	. "github.com/pgaskin/ASM374/internal/flags"
)

// Encode the matched instruction. The result is zero if the last match failed.
func (m *InstMatcher) Encode() Word {
	if !m.encId.IsValid() {
		return 0
	}
	return m.emit()
}

// Pack the fixed bits and operand fields of the matched encoding.
func (m *InstMatcher) emit() Word {
	e := m.enc
	w := e.value
	for i := 0; i < len(e.argp); i++ {
		switch e.argp[i] {
		case 'a':
			w |= fieldRa.put(uint32(m.regs[0].Num()))
		case 'b':
			w |= fieldRb.put(uint32(m.regs[1].Num()))
		case 'c':
			w |= fieldRc.put(uint32(m.regs[2].Num()))
		case 'i':
			w |= fieldC.put(m.c)
		case 'm':
			w |= fieldRb.put(uint32(m.regs[1].Num())) | fieldC.put(m.c)
		}
	}
	if e.hasFlag(COND) {
		w |= fieldC2.put(uint32(m.cond))
	}
	return Word(w)
}
