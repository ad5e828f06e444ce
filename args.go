package asm374

import (
	"strconv"
)

// Arg is an instruction operand: a Reg, an Imm or a Mem.
type Arg interface {
	isArg()
	Kind() ArgKind
	String() string
}

// ArgKind is the syntactic shape of an operand.
type ArgKind uint8

const (
	KindReg ArgKind = iota + 1 // rN
	KindImm                    // C
	KindMem                    // C(rN)
)

func (k ArgKind) String() string {
	switch k {
	case KindReg:
		return "register"
	case KindImm:
		return "constant"
	case KindMem:
		return "indexed address"
	}
	return "ArgKind(" + strconv.Itoa(int(k)) + ")"
}

// Get the operand kind accepted by an operand pattern character.
func argpKind(t byte) ArgKind {
	switch t {
	case 'a', 'b', 'c':
		return KindReg
	case 'i':
		return KindImm
	case 'm':
		return KindMem
	}
	return 0
}

// Imm is a constant operand.
//
// Constants written in decimal, or with an explicit sign, are two's complement values and must
// fit in 18 bits as such. Constants written without a sign in hexadecimal, octal, binary or with
// the '$' prefix are Unsigned: they are the raw contents of the 18-bit field, so 0x3FFFF is -1.
type Imm struct {
	Value    int64
	Unsigned bool
}

func (i Imm) isArg()        {}
func (i Imm) Kind() ArgKind { return KindImm }

// Get the value the CPU sees after sign-extending the constant's 18-bit field. The result is
// only meaningful if the constant is in range.
func (i Imm) Int32() int32 { return signExtend(uint32(i.Value)&fieldC.mask(), fieldC.width) }

func (i Imm) String() string {
	if i.Unsigned {
		return "0x" + strconv.FormatUint(uint64(i.Value), 16)
	}
	return strconv.FormatInt(i.Value, 10)
}

// Mem is an indexed address operand, C(Rb). The effective address is Rb + C.
type Mem struct {
	Disp Imm
	Base Reg
}

func (m Mem) isArg()        {}
func (m Mem) Kind() ArgKind { return KindMem }

func (m Mem) String() string { return m.Disp.String() + "(" + m.Base.String() + ")" }

// Create an indexed address operand.
func Indexed(disp int64, base Reg) Mem { return Mem{Disp: Imm{Value: disp}, Base: base} }

// Create a signed constant operand.
func Const(v int64) Imm { return Imm{Value: v} }

// Create an unsigned constant operand holding the raw bits of the C field.
func Raw(v uint32) Imm { return Imm{Value: int64(v), Unsigned: true} }

func signExtend(v uint32, width uint8) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}
