package asm374

// Disassemble an instruction word into canonical text.
//
// Disassembly fails open: a word with an undefined opcode is rendered as "?" with an
// ErrUndefinedOpcode diagnostic, and a branch with an undefined condition is rendered with a "?"
// condition suffix and an ErrIllegalEncoding diagnostic. Reserved bits are ignored; use Check to
// validate them.
func Disassemble(w Word) (string, error) {
	inst, err := Decode(w)
	if err != nil {
		return inst.String(), err
	}
	if inst.Inst == BR && !inst.Cond.IsValid() {
		return inst.String(), illegalCond(inst.Cond)
	}
	return inst.String(), nil
}

// Disassemble an instruction word given as 8 hexadecimal digits. If the word cannot be parsed,
// the text is empty and the error is an ErrSyntax diagnostic.
func DisassembleHex(s string) (string, error) {
	w, err := ParseWord(s)
	if err != nil {
		return "", err
	}
	return Disassemble(w)
}

func illegalCond(c Cond) *Diagnostic {
	return errorf(ErrIllegalEncoding, 0, "undefined branch condition %d (C2 must be 0-3)", uint8(c))
}
