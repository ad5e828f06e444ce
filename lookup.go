package asm374

import "github.com/pgaskin/ASM374/token"

const maxMnemonicLength = 8

var instMap = func() map[string]Inst {
	m := make(map[string]Inst, numInsts)
	for inst := Inst(0); inst < numInsts; inst++ {
		m[inst.Name()] = inst
	}
	return m
}()

// Lookup the instruction for a mnemonic. The mnemonic will be converted to lowercase if
// necessary. Branch mnemonics resolve to BR with the condition given by their suffix; the
// condition is zero for all other instructions.
//
// If the mnemonic is not known, the error is an ErrUnknownMnemonic diagnostic.
func LookupInst(mnemonic string) (Inst, Cond, error) {
	return lookupInst(mnemonic, token.Position(0))
}

func lookupInst(mnemonic string, pos token.Position) (Inst, Cond, error) {
	if len(mnemonic) == 0 {
		return 0, 0, errorf(ErrUnknownMnemonic, pos, "missing mnemonic")
	}
	if len(mnemonic) <= maxMnemonicLength {
		name := lowerCase(mnemonic)
		if inst, ok := instMap[name]; ok {
			if inst == BR {
				return 0, 0, errorf(ErrUnknownMnemonic, pos, "missing condition code for %q", mnemonic)
			}
			return inst, 0, nil
		}
		if cond, ok := parseCondSuffix(BR.Name(), name); ok {
			return BR, cond, nil
		}
	}
	return 0, 0, errorf(ErrUnknownMnemonic, pos, "unknown mnemonic %q", mnemonic)
}

func lowerCase(s string) string {
	var b [maxMnemonicLength]byte
	changed := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if 'A' <= ch && ch <= 'Z' {
			ch += 'a' - 'A'
			changed = true
		}
		b[i] = ch
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
