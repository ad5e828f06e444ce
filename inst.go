package asm374

import (
	"fmt"
	"math/bits"

	"github.com/pgaskin/ASM374/feats"
	. "github.com/pgaskin/ASM374/internal/flags"
)

func hasFlag(flags, flag uint32) bool { return flags&flag != 0 }

// Inst is an instruction mnemonic. The value of an Inst is its 5-bit opcode.
type Inst uint8

// Instructions
const (
	LD Inst = iota
	LDI
	ST
	ADD
	SUB
	AND
	OR
	SHR
	SHRA
	SHL
	ROR
	ROL
	ADDI
	ANDI
	ORI
	MUL
	DIV
	NEG
	NOT
	BR
	JR
	JAL
	IN
	OUT
	MFHI
	MFLO
	NOP
	HALT

	numInsts
)

// Format is the field layout of an instruction word.
type Format byte

const (
	FormatR Format = 'R' // Op Ra Rb Rc
	FormatI Format = 'I' // Op Ra Rb C
	FormatB Format = 'B' // Op Ra C2 C
	FormatJ Format = 'J' // Op Ra
	FormatM Format = 'M' // Op
)

func (f Format) String() string {
	if f == 0 {
		return "?"
	}
	return string(rune(f))
}

var instInfo = [numInsts]struct {
	name   string
	format Format
	feats  feats.Feature
}{
	LD:   {"ld", FormatI, feats.MEMORY},
	LDI:  {"ldi", FormatI, feats.MEMORY},
	ST:   {"st", FormatI, feats.MEMORY},
	ADD:  {"add", FormatR, feats.ALU},
	SUB:  {"sub", FormatR, feats.ALU},
	AND:  {"and", FormatR, feats.ALU},
	OR:   {"or", FormatR, feats.ALU},
	SHR:  {"shr", FormatR, feats.ALU},
	SHRA: {"shra", FormatR, feats.ALU},
	SHL:  {"shl", FormatR, feats.ALU},
	ROR:  {"ror", FormatR, feats.ALU},
	ROL:  {"rol", FormatR, feats.ALU},
	ADDI: {"addi", FormatI, feats.ALU},
	ANDI: {"andi", FormatI, feats.ALU},
	ORI:  {"ori", FormatI, feats.ALU},
	MUL:  {"mul", FormatI, feats.MULDIV},
	DIV:  {"div", FormatI, feats.MULDIV},
	NEG:  {"neg", FormatI, feats.ALU},
	NOT:  {"not", FormatI, feats.ALU},
	BR:   {"br", FormatB, feats.BRANCH},
	JR:   {"jr", FormatJ, feats.BRANCH},
	JAL:  {"jal", FormatJ, feats.BRANCH},
	IN:   {"in", FormatJ, feats.IO},
	OUT:  {"out", FormatJ, feats.IO},
	MFHI: {"mfhi", FormatJ, feats.MULDIV},
	MFLO: {"mflo", FormatJ, feats.MULDIV},
	NOP:  {"nop", FormatM, feats.CONTROL},
	HALT: {"halt", FormatM, feats.CONTROL},
}

// Check if the instruction has a defined opcode.
func (inst Inst) IsValid() bool { return inst < numInsts }

// Get the 5-bit opcode of the instruction.
func (inst Inst) Opcode() uint8 { return uint8(inst) & 0x1f }

// Get the lower-case mnemonic of the instruction. For BR, the condition suffix is not included.
func (inst Inst) Name() string {
	if inst.IsValid() {
		return instInfo[inst].name
	}
	return "?"
}

func (inst Inst) String() string {
	if inst.IsValid() {
		return instInfo[inst].name
	}
	return fmt.Sprintf("Inst(%d)", uint8(inst))
}

// Get the field layout of the instruction, or 0 if the opcode is undefined.
func (inst Inst) Format() Format {
	if inst.IsValid() {
		return instInfo[inst].format
	}
	return 0
}

// Get the instruction group the instruction belongs to.
func (inst Inst) Features() feats.Feature {
	if inst.IsValid() {
		return instInfo[inst].feats
	}
	return feats.IMPLICIT
}

// Get all syntax forms of the instruction, in table order.
func (inst Inst) Encodings() []Encoding {
	if !inst.IsValid() {
		return nil
	}
	ids := make([]Encoding, 0, instEncOffsets[inst+1]-instEncOffsets[inst])
	for id := instEncOffsets[inst]; id < instEncOffsets[inst+1]; id++ {
		ids = append(ids, Encoding(id))
	}
	return ids
}

func (inst Inst) encs() []enc {
	if !inst.IsValid() {
		return nil
	}
	return encs[instEncOffsets[inst]:instEncOffsets[inst+1]]
}

// Bit fields of an instruction word.
type field struct {
	shift uint8
	width uint8
}

var (
	fieldOp = field{27, 5}
	fieldRa = field{23, 4}
	fieldRb = field{19, 4}
	fieldRc = field{15, 4}
	fieldC2 = field{19, 4}
	fieldC  = field{0, 18}
)

func (f field) mask() uint32 { return (1<<f.width - 1) << f.shift }
func (f field) get(w uint32) uint32 { return (w >> f.shift) & (1<<f.width - 1) }
func (f field) put(v uint32) uint32 { return (v & (1<<f.width - 1)) << f.shift }
func (f field) top() int { return int(f.shift) + int(f.width) - 1 }
func (f field) bitString(w uint32) string {
	return fmt.Sprintf("%0*b", int(f.width), f.get(w))
}

// Operand patterns
//
// a : register in the Ra field
// b : register in the Rb field
// c : register in the Rc field
// i : constant in the C field
// m : indexed address C(Rb), constant in the C field and base in the Rb field
//
// Patterns are written in syntax order, so the store forms start with the address.
func argpField(t byte) (f field, ok bool) {
	switch t {
	case 'a':
		return fieldRa, true
	case 'b':
		return fieldRb, true
	case 'c':
		return fieldRc, true
	case 'i':
		return fieldC, true
	}
	return field{}, false
}

// An encoding (syntax form) of an instruction.
type enc struct {
	inst  Inst
	argp  string
	flags uint32

	// computed at init
	mask  uint32 // fixed bits
	value uint32 // values of the fixed bits
	used  uint32 // fixed bits and operand fields
}

func (e enc) reserved() uint32 { return ^e.used }
func (e enc) specificity() int { return bits.OnesCount32(e.mask) }
func (e enc) matches(w uint32) bool { return w&e.mask == e.value }
func (e enc) hasFlag(flag uint32) bool { return hasFlag(e.flags, flag) }

// Instruction encodings, grouped by instruction in opcode order.
var encs = [...]enc{
	{inst: LD, argp: "ai", flags: RB_ZERO},
	{inst: LD, argp: "am"},
	{inst: LDI, argp: "ai", flags: RB_ZERO},
	{inst: LDI, argp: "am"},
	{inst: ST, argp: "ia", flags: RB_ZERO},
	{inst: ST, argp: "ma"},
	{inst: ADD, argp: "abc"},
	{inst: SUB, argp: "abc"},
	{inst: AND, argp: "abc"},
	{inst: OR, argp: "abc"},
	{inst: SHR, argp: "abc"},
	{inst: SHRA, argp: "abc"},
	{inst: SHL, argp: "abc"},
	{inst: ROR, argp: "abc"},
	{inst: ROL, argp: "abc"},
	{inst: ADDI, argp: "abi"},
	{inst: ANDI, argp: "abi"},
	{inst: ORI, argp: "abi"},
	{inst: MUL, argp: "ab"},
	{inst: DIV, argp: "ab"},
	{inst: NEG, argp: "ab"},
	{inst: NOT, argp: "ab"},
	{inst: BR, argp: "ai", flags: COND},
	{inst: JR, argp: "a"},
	{inst: JAL, argp: "a"},
	{inst: IN, argp: "a"},
	{inst: OUT, argp: "a"},
	{inst: MFHI, argp: "a"},
	{inst: MFLO, argp: "a"},
	{inst: NOP, argp: ""},
	{inst: HALT, argp: ""},
}

// offsets of the first encoding for each instruction; instEncOffsets[numInsts] == len(encs)
var instEncOffsets [numInsts + 1]uint8

func init() {
	var next Inst
	for i := range encs {
		e := &encs[i]
		switch {
		case e.inst == next:
			instEncOffsets[next] = uint8(i)
			next++
		case e.inst+1 != next:
			panic(fmt.Sprintf("unexpected encoding for %v at offset %d", e.inst, i))
		}

		e.mask = fieldOp.mask()
		e.value = fieldOp.put(uint32(e.inst))
		if e.hasFlag(RB_ZERO) {
			e.mask |= fieldRb.mask()
		}
		e.used = e.mask
		if e.hasFlag(COND) {
			e.used |= fieldC2.mask()
		}
		for j := 0; j < len(e.argp); j++ {
			switch t := e.argp[j]; t {
			case 'm':
				e.used |= fieldC.mask() | fieldRb.mask()
			default:
				f, ok := argpField(t)
				if !ok {
					panic(fmt.Sprintf("unexpected operand pattern %q for %v", e.argp, e.inst))
				}
				e.used |= f.mask()
			}
		}
	}
	if next != numInsts {
		panic(fmt.Sprintf("missing encodings for %v", next))
	}
	instEncOffsets[numInsts] = uint8(len(encs))
}

// Encoding identifies a single syntax form of an instruction.
type Encoding uint8

// NoEncoding is the encoding of an instruction with an undefined opcode.
const NoEncoding Encoding = 0xff

func (id Encoding) IsValid() bool { return int(id) < len(encs) }

func (id Encoding) enc() enc { return encs[id] }

// Get the instruction the encoding belongs to.
func (id Encoding) Inst() Inst {
	if !id.IsValid() {
		return Inst(0xff)
	}
	return encs[id].inst
}

// Get the operand pattern of the encoding (see argpField for the pattern characters).
func (id Encoding) Pattern() string {
	if !id.IsValid() {
		return ""
	}
	return encs[id].argp
}

// Get the encoding's fixed bits.
func (id Encoding) Mask() uint32 {
	if !id.IsValid() {
		return 0
	}
	return encs[id].mask
}

// Get the values of the encoding's fixed bits.
func (id Encoding) Value() uint32 {
	if !id.IsValid() {
		return 0
	}
	return encs[id].value
}

// Get the bits which are neither fixed nor part of an operand field. They must be zero.
func (id Encoding) Reserved() uint32 {
	if !id.IsValid() {
		return 0
	}
	return encs[id].reserved()
}

// Get the number of fixed bits. When a word matches several encodings, the most specific wins.
func (id Encoding) Specificity() int {
	if !id.IsValid() {
		return 0
	}
	return encs[id].specificity()
}

// Describe the syntax of the encoding using operand slot names, e.g. "ld Ra, C(Rb)".
func (id Encoding) String() string {
	if !id.IsValid() {
		return "?"
	}
	e := encs[id]
	s := e.inst.Name()
	if e.hasFlag(COND) {
		s += "XX"
	}
	if e.argp != "" {
		s += " " + syntaxShape(e.argp)
	}
	return s
}

func syntaxShape(argp string) string {
	var s string
	for i := 0; i < len(argp); i++ {
		if i != 0 {
			s += ", "
		}
		s += slotName(argp[i])
	}
	return s
}

func slotName(t byte) string {
	switch t {
	case 'a':
		return "Ra"
	case 'b':
		return "Rb"
	case 'c':
		return "Rc"
	case 'i':
		return "C"
	case 'm':
		return "C(Rb)"
	}
	return "?"
}

// Find the most specific encoding matching w. Ties are broken by table order.
func decodeEnc(w uint32) (Encoding, bool) {
	inst := Inst(fieldOp.get(w))
	if !inst.IsValid() {
		return NoEncoding, false
	}
	best, bestSpec := NoEncoding, -1
	for id := instEncOffsets[inst]; id < instEncOffsets[inst+1]; id++ {
		if e := encs[id]; e.matches(w) && e.specificity() > bestSpec {
			best, bestSpec = Encoding(id), e.specificity()
		}
	}
	return best, best != NoEncoding
}
