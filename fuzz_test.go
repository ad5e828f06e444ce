package asm374

import (
	"errors"
	"testing"
)

// Disassembly is total, and legal text re-assembles to the same fields.
func checkRoundTrip(t *testing.T, w Word) {
	text, err := Disassemble(w)
	inst, derr := Decode(w)
	if derr != nil {
		if text != "?" || !errors.Is(err, ErrUndefinedOpcode) || !errors.Is(derr, ErrUndefinedOpcode) {
			t.Fatalf("Disassemble(%v) = %q, %v", w, text, err)
		}
		return
	}
	if text != inst.String() {
		t.Fatalf("Disassemble(%v) = %q, Decode = %q", w, text, inst.String())
	}
	if err != nil {
		if !errors.Is(err, ErrIllegalEncoding) || inst.Inst != BR || inst.Cond.IsValid() {
			t.Fatalf("Disassemble(%v) = %q, %v", w, text, err)
		}
		return
	}
	got, err := Assemble(text)
	if err != nil {
		t.Fatalf("Assemble(Disassemble(%v) = %q): %v", w, text, err)
	}
	if want := w &^ Word(inst.Reserved); got != want {
		t.Fatalf("Assemble(Disassemble(%v) = %q) = %v, want %v", w, text, got, want)
	}
	if again, _ := Disassemble(got); again != text {
		t.Fatalf("Disassemble(%v) = %q, want %q", got, again, text)
	}
	if inst.Reserved != 0 && !errors.Is(Check(w), ErrIllegalEncoding) {
		t.Fatalf("Check(%v) did not report reserved bits %08X", w, inst.Reserved)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, w := range []uint32{0, 0xD0000000, 0x9903F6D7, 0x17F3FFF8, 0xFFFFFFFF, 0x99200000, 0x18918001, 0x00040005} {
		f.Add(w)
	}
	f.Fuzz(func(t *testing.T, w uint32) {
		checkRoundTrip(t, Word(w))
	})
}

func TestRoundTripSweep(t *testing.T) {
	// every opcode with a spread of operand bits
	x := uint32(0x2545F491)
	for op := uint32(0); op < 32; op++ {
		for i := 0; i < 512; i++ {
			x ^= x << 13
			x ^= x >> 17
			x ^= x << 5
			checkRoundTrip(t, Word(op<<27|x&0x07ffffff))
		}
		checkRoundTrip(t, Word(op<<27))
		checkRoundTrip(t, Word(op<<27|0x07ffffff))
	}
}
