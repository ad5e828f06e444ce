package asm374

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	inst, _, err := LookupInst("ldi")
	if err != nil || inst != LDI {
		t.Fatalf("failed to find ldi: %v", err)
	}
	inst, _, err = LookupInst("LDI")
	if err != nil || inst != LDI {
		t.Fatalf("failed to find LDI: %v", err)
	}
	inst, cond, err := LookupInst("BrMi")
	if err != nil || inst != BR || cond != CondNegative {
		t.Fatalf("failed to find BrMi: %v", err)
	}
	for c := Cond(0); c < NumConds; c++ {
		if inst, cond, err := LookupInst(Br(c)); err != nil || inst != BR || cond != c {
			t.Errorf("LookupInst(%q) = %v, %v, %v", Br(c), inst, cond, err)
		}
	}
	for inst := Inst(0); inst < numInsts; inst++ {
		if inst == BR {
			continue
		}
		if got, _, err := LookupInst(inst.Name()); err != nil || got != inst {
			t.Errorf("LookupInst(%q) = %v, %v", inst.Name(), got, err)
		}
	}
}

func TestLookupErrors(t *testing.T) {
	for mnemonic, msg := range map[string]string{
		"":                  "missing mnemonic",
		"br":                `missing condition code for "br"`,
		"BR":                `missing condition code for "BR"`,
		"brzz":              `unknown mnemonic "brzz"`,
		"brzrx":             `unknown mnemonic "brzrx"`,
		"mov":               `unknown mnemonic "mov"`,
		"averylongmnemonic": `unknown mnemonic "averylongmnemonic"`,
	} {
		_, _, err := LookupInst(mnemonic)
		var d *Diagnostic
		if !errors.As(err, &d) || !errors.Is(err, ErrUnknownMnemonic) || d.Msg != msg {
			t.Errorf("LookupInst(%q) = %v, want %q", mnemonic, err, msg)
		}
	}
}
