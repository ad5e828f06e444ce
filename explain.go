package asm374

import "strings"

// Descriptions of each instruction's effect. Placeholders are replaced by the operands, or by
// the operand slot names if the operands are unknown:
//
//	{a} {b} {c}  registers Ra, Rb, Rc
//	{C}          the constant
//	{addr}       the address operand, C or Rb + C
//	{cond}       the branch condition
var explainTemplates = [numInsts]string{
	LD:   "loads the word at memory address {addr} into {a}",
	LDI:  "loads the value {addr} into {a}",
	ST:   "stores {a} into the word at memory address {addr}",
	ADD:  "adds {b} and {c}, writing the sum to {a}",
	SUB:  "subtracts {c} from {b}, writing the difference to {a}",
	AND:  "computes the bitwise AND of {b} and {c}, writing the result to {a}",
	OR:   "computes the bitwise OR of {b} and {c}, writing the result to {a}",
	SHR:  "shifts {b} right by {c} bits, shifting in zeros, and writes the result to {a}",
	SHRA: "shifts {b} right by {c} bits, shifting in copies of the sign bit, and writes the result to {a}",
	SHL:  "shifts {b} left by {c} bits, shifting in zeros, and writes the result to {a}",
	ROR:  "rotates {b} right by {c} bits, writing the result to {a}",
	ROL:  "rotates {b} left by {c} bits, writing the result to {a}",
	ADDI: "adds {C} to {b}, writing the sum to {a}",
	ANDI: "computes the bitwise AND of {b} and {C}, writing the result to {a}",
	ORI:  "computes the bitwise OR of {b} and {C}, writing the result to {a}",
	MUL:  "multiplies {a} by {b}, writing the high word of the 64-bit product to HI and the low word to LO",
	DIV:  "divides {a} by {b}, writing the quotient to LO and the remainder to HI",
	NEG:  "negates {b} (two's complement), writing the result to {a}",
	NOT:  "inverts every bit of {b}, writing the result to {a}",
	BR:   "if {a} is {cond}, branches to the address of the next instruction plus {C}",
	JR:   "jumps to the address in {a}",
	JAL:  "saves the address of the next instruction in " + LinkReg.String() + " and jumps to the address in {a}",
	IN:   "reads the input port into {a}",
	OUT:  "writes {a} to the output port",
	MFHI: "copies HI into {a}",
	MFLO: "copies LO into {a}",
	NOP:  "does nothing",
	HALT: "stops the processor",
}

type explainVars struct {
	a, b, c, C, addr, cond string
}

func symbolicVars(cond Cond) explainVars {
	return explainVars{a: "Ra", b: "Rb", c: "Rc", C: "C", addr: "Rb + C", cond: cond.Describe()}
}

func concreteVars(inst Instruction) explainVars {
	v := symbolicVars(inst.Cond)
	argp := inst.Encoding.Pattern()
	for i := 0; i < len(argp) && i < len(inst.Args); i++ {
		switch arg := inst.Args[i]; argp[i] {
		case 'a':
			v.a = formatArg(arg)
		case 'b':
			v.b = formatArg(arg)
		case 'c':
			v.c = formatArg(arg)
		case 'i':
			v.C = formatArg(arg)
			v.addr = v.C
		case 'm':
			if mem, ok := arg.(Mem); ok {
				v.b, v.C = mem.Base.String(), formatImm(mem.Disp)
				v.addr = v.b + " + " + v.C
			}
		}
	}
	return v
}

func (v explainVars) expand(tmpl string) string {
	return strings.NewReplacer(
		"{addr}", v.addr,
		"{cond}", v.cond,
		"{a}", v.a,
		"{b}", v.b,
		"{c}", v.c,
		"{C}", v.C,
	).Replace(tmpl)
}

// Describe the effect of the instruction as "<canonical text>: <description>.", or an empty
// string if the opcode is undefined.
func (inst Instruction) Explain() string {
	if !inst.Inst.IsValid() {
		return ""
	}
	return inst.String() + ": " + concreteVars(inst).expand(explainTemplates[inst.Inst]) + "."
}

// Explain what a single instruction does.
//
// For valid text, the result is "<canonical text>: <description>." with the operands filled in.
// If the mnemonic is recognised but the operands are not valid, the result is the mnemonic with a
// description using the operand slot names (Ra, Rb, Rc, C), along with the diagnostic. If the
// mnemonic is not recognised, the result is empty.
func (a *Assembler) Explain(text string) (string, error) {
	m := a.matcher()
	p, err := m.parse(text)
	if !p.known {
		return "", err
	}
	if err != nil {
		name := p.inst.Name()
		if p.inst == BR {
			name = Br(p.cond)
		}
		return name + ": " + symbolicVars(p.cond).expand(explainTemplates[p.inst]) + ".", err
	}
	inst, _ := Decode(m.emit())
	return inst.Explain(), nil
}

// Explain what a single instruction does, with all instruction groups enabled.
func Explain(text string) (string, error) {
	return NewAssembler().Explain(text)
}
