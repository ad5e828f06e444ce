package asm374

// Constant ranges of the 18-bit C field.
const (
	MinImm    = -1 << 17  // smallest signed constant
	MaxImm    = 1<<17 - 1 // largest signed constant
	MaxRawImm = 1<<18 - 1 // largest unsigned (raw field) constant
)

// Check if v can be written as a signed constant.
func FitsImm(v int64) bool { return MinImm <= v && v <= MaxImm }

// Get the contents of the C field for a constant. If the constant does not fit, ok is false;
// constants are never truncated.
func resizeImm(i Imm) (field uint32, ok bool) {
	if i.Unsigned {
		if i.Value < 0 || i.Value > MaxRawImm {
			return 0, false
		}
		return uint32(i.Value), true
	}
	if !FitsImm(i.Value) {
		return 0, false
	}
	return uint32(int32(i.Value)) & fieldC.mask(), true
}

// Describe the legal range for a constant written like i.
func immRange(i Imm) string {
	if i.Unsigned {
		return "0..0x3FFFF"
	}
	return "-131072..131071"
}
