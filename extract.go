package asm374

import (
	. "github.com/pgaskin/ASM374/internal/flags"
)

// Instruction is a single instruction, either decoded from a Word or matched from text.
type Instruction struct {
	Inst     Inst
	Cond     Cond     // branch condition, only meaningful for BR
	Args     []Arg    // operands in syntax order
	Encoding Encoding // syntax form, NoEncoding if the opcode is undefined
	Reserved uint32   // reserved bits which were set in the decoded word
}

// Decode an instruction word. Undefined opcodes return an ErrUndefinedOpcode diagnostic along
// with an Instruction holding the opcode and NoEncoding.
//
// Decode picks the most specific encoding matching the word, so ld/ldi/st words with Rb = r0
// decode to the absolute form. Reserved bits are reported in Reserved but do not affect
// decoding; undefined branch conditions are decoded as-is (see Check).
func Decode(w Word) (Instruction, error) {
	inst, d := decode(w)
	if d != nil {
		return inst, d
	}
	return inst, nil
}

func decode(w Word) (Instruction, *Diagnostic) {
	id, ok := decodeEnc(uint32(w))
	if !ok {
		op := fieldOp.get(uint32(w))
		return Instruction{Inst: Inst(op), Encoding: NoEncoding}, errorf(ErrUndefinedOpcode, 0, "undefined opcode %05b (%d)", op, op)
	}
	e := encs[id]
	inst := Instruction{
		Inst:     e.inst,
		Encoding: id,
		Reserved: uint32(w) & e.reserved(),
	}
	if e.hasFlag(COND) {
		inst.Cond = Cond(fieldC2.get(uint32(w)))
	}
	if len(e.argp) != 0 {
		inst.Args = make([]Arg, len(e.argp))
		for i := 0; i < len(e.argp); i++ {
			inst.Args[i] = extractArg(e.argp[i], uint32(w))
		}
	}
	return inst, nil
}

func extractArg(t byte, w uint32) Arg {
	switch t {
	case 'i':
		return extractImm(w)
	case 'm':
		return Mem{Disp: extractImm(w), Base: Reg(fieldRb.get(w))}
	}
	f, _ := argpField(t)
	return Reg(f.get(w))
}

func extractImm(w uint32) Imm {
	return Imm{Value: int64(signExtend(fieldC.get(w), fieldC.width))}
}

// Encode the instruction. The operands are range-checked as for Assemble, and reserved bits are
// not preserved.
func (inst Instruction) Encode() (Word, error) {
	m := NewInstMatcher()
	if err := m.Match(inst.Inst, inst.Cond, inst.Args...); err != nil {
		return 0, err
	}
	return m.Encode(), nil
}
