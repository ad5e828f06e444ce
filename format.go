package asm374

import (
	"strconv"
	"strings"
)

// Render the instruction as canonical text: the lower-case mnemonic, a single space, and the
// operands separated by ", ". Constants are rendered as signed decimal values of their field, and
// indexed addresses as C(rN). Undefined opcodes are rendered as "?".
//
// Canonical text of a decoded instruction always assembles back to the same fields.
func (inst Instruction) String() string {
	if !inst.Inst.IsValid() {
		return "?"
	}
	var b strings.Builder
	b.WriteString(inst.Inst.Name())
	if inst.Inst == BR {
		b.WriteString(inst.Cond.String())
	}
	for i, arg := range inst.Args {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(formatArg(arg))
	}
	return b.String()
}

func formatArg(arg Arg) string {
	switch arg := arg.(type) {
	case Imm:
		return formatImm(arg)
	case Mem:
		return formatImm(arg.Disp) + "(" + arg.Base.String() + ")"
	case nil:
		return "?"
	}
	return arg.String()
}

// Constants are rendered as the CPU sees them, so 0x3FFFF becomes -1.
func formatImm(i Imm) string {
	if c, ok := resizeImm(i); ok {
		return strconv.Itoa(int(signExtend(c, fieldC.width)))
	}
	return i.String()
}
