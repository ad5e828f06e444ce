package asm374

import "strconv"

// Reg is a general-purpose 32-bit register, r0 through r15.
//
// Reg implements Arg.
type Reg uint8

// Registers
const (
	R0 Reg = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// NumRegs is the number of addressable registers (the width of a register field is 4 bits).
const NumRegs = 16

// The register written with the return address by JAL.
const LinkReg = R15

func (r Reg) isArg()        {}
func (r Reg) Kind() ArgKind { return KindReg }

// Get the register number.
func (r Reg) Num() uint8 { return uint8(r) }

// Check if the register number fits in a register field.
func (r Reg) IsValid() bool { return r < NumRegs }

func (r Reg) String() string { return "r" + strconv.Itoa(int(r)) }

func (r Reg) GoString() string { return "Reg(" + strconv.Itoa(int(r)) + ")" }

// Parse a register name (r0-r15, case-insensitive). The returned number is not range-checked,
// so r23 is reported as 23 and the caller decides how to reject it; ok is false if the name is
// not register-shaped at all.
func parseRegName(name string) (n int, ok bool) {
	if len(name) < 2 || len(name) > 6 || (name[0] != 'r' && name[0] != 'R') {
		return 0, false
	}
	digits := name[1:]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false // no leading zeros; r0 is spelled exactly once
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
		n = n*10 + int(digits[i]-'0')
	}
	return n, true
}
