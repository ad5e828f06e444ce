package asm374

// Check that an instruction word is architecturally legal. The result is nil for a legal word,
// otherwise the most severe finding of CheckAll: an error-level diagnostic if there is one, or a
// warning for a legal but pointless instruction.
//
// Check never affects disassembly; a word that fails Check still disassembles.
func Check(w Word) error {
	if ds := CheckAll(w); len(ds) != 0 {
		return ds[0]
	}
	return nil
}

// Check an instruction word given as 8 hexadecimal digits. If the word cannot be parsed, the
// error is an ErrSyntax diagnostic.
func CheckHex(s string) error {
	w, err := ParseWord(s)
	if err != nil {
		return err
	}
	return Check(w)
}

// Get every finding for an instruction word, errors first.
//
// Errors:
//   - ErrUndefinedOpcode for opcodes 28-31.
//   - ErrIllegalEncoding for branches with an undefined condition.
//   - ErrIllegalEncoding for reserved bits which are set.
//
// Warnings (ErrIllegalEncoding):
//   - a branch with a displacement of 0, which continues with the next instruction either way.
//   - addi or ori with Ra = Rb and C = 0, and andi with Ra = Rb and C = -1, which leave Ra unchanged.
func CheckAll(w Word) []*Diagnostic {
	inst, d := decode(w)
	if d != nil {
		return []*Diagnostic{d}
	}

	var ds []*Diagnostic
	if inst.Inst == BR && !inst.Cond.IsValid() {
		ds = append(ds, illegalCond(inst.Cond))
	}
	if inst.Reserved != 0 {
		ds = append(ds, errorf(ErrIllegalEncoding, 0, "reserved bits 0x%08X are set in %s (must be zero)", inst.Reserved, inst.Encoding))
	}

	switch inst.Inst {
	case BR:
		if c := inst.Args[1].(Imm); c.Value == 0 {
			ds = append(ds, warnf(ErrIllegalEncoding, "%s with displacement 0 has no effect", inst))
		}
	case ADDI, ORI:
		if isIdentity(inst, 0) {
			ds = append(ds, warnf(ErrIllegalEncoding, "%s has no effect", inst))
		}
	case ANDI:
		if isIdentity(inst, -1) {
			ds = append(ds, warnf(ErrIllegalEncoding, "%s has no effect", inst))
		}
	}
	return ds
}

// Check if an "op Ra, Rb, C" instruction has Ra = Rb and the given constant.
func isIdentity(inst Instruction, c int64) bool {
	return inst.Args[0] == inst.Args[1] && inst.Args[2].(Imm).Value == c
}
