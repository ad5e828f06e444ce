package asmflags

// Encoding flags
const (
	DEFAULT uint32 = 0         // this encoding has no special handling
	RB_ZERO uint32 = 1 << iota // the Rb field is fixed at r0 (absolute addressing form)
	COND                       // the mnemonic carries a condition suffix, encoded in the C2 field
)

func FlagName(f uint32) string { return flagNames[f] }

var flagNames = map[uint32]string{
	DEFAULT: "DEFAULT",
	RB_ZERO: "RB_ZERO",
	COND:    "COND",
}
