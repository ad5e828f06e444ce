package asm374

import "strconv"

// Cond is a branch condition, tested against the branch's register operand. It is written as a
// suffix of the branch mnemonic (brzr, brnz, brpl, brmi) and encoded in the C2 field.
type Cond uint8

const (
	CondZero     Cond = 0 // zr: the register is zero
	CondNonZero  Cond = 1 // nz: the register is not zero
	CondPositive Cond = 2 // pl: the sign bit of the register is clear
	CondNegative Cond = 3 // mi: the sign bit of the register is set
)

// NumConds is the number of defined conditions. The C2 field is 4 bits wide, so encodings with
// C2 >= NumConds decode but are illegal.
const NumConds = 4

var condNames = [NumConds]string{
	CondZero:     "zr",
	CondNonZero:  "nz",
	CondPositive: "pl",
	CondNegative: "mi",
}

var condDescs = [NumConds]string{
	CondZero:     "zero",
	CondNonZero:  "non-zero",
	CondPositive: "positive",
	CondNegative: "negative",
}

var invcondTable = [NumConds]Cond{
	CondNonZero,  // CondZero
	CondZero,     // CondNonZero
	CondNegative, // CondPositive
	CondPositive, // CondNegative
}

// Check if the condition is defined.
func (c Cond) IsValid() bool { return c < NumConds }

// Get the mnemonic suffix for the condition, or "?" if it is undefined.
func (c Cond) String() string {
	if c.IsValid() {
		return condNames[c]
	}
	return "?"
}

func (c Cond) GoString() string { return "Cond(" + strconv.Itoa(int(c)) + ")" }

// Describe the condition in words, e.g. "non-zero".
func (c Cond) Describe() string {
	if c.IsValid() {
		return condDescs[c]
	}
	return "an undefined condition (" + strconv.Itoa(int(c)) + ")"
}

// Invert a condition. Undefined conditions are returned unchanged.
func Invcond(c Cond) Cond {
	if c.IsValid() {
		return invcondTable[c]
	}
	return c
}

// Get the branch mnemonic for a condition, e.g. "brnz".
func Br(c Cond) string { return BR.Name() + c.String() }

// Split a branch mnemonic into its condition. The mnemonic must already be lower case.
func parseCondSuffix(base, mnemonic string) (Cond, bool) {
	if len(mnemonic) != len(base)+2 || mnemonic[:len(base)] != base {
		return 0, false
	}
	for c, name := range condNames {
		if mnemonic[len(base):] == name {
			return Cond(c), true
		}
	}
	return 0, false
}
