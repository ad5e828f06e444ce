package asm374

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		word     Word
		kind     error
		severity Severity
		msg      string
	}{
		{0x18918000, nil, 0, ""},
		{0x60900000, nil, 0, ""}, // addi r1, r2, 0
		{0x69980000, nil, 0, ""}, // andi r3, r3, 0
		{0x18918001, ErrIllegalEncoding, SeverityError, "reserved bits 0x00000001 are set in add Ra, Rb, Rc (must be zero)"},
		{0x00040005, ErrIllegalEncoding, SeverityError, "reserved bits 0x00040000 are set in ld Ra, C (must be zero)"},
		{0x7B380001, ErrIllegalEncoding, SeverityError, "reserved bits 0x00000001 are set in mul Ra, Rb (must be zero)"},
		{0xD0000100, ErrIllegalEncoding, SeverityError, "reserved bits 0x00000100 are set in nop (must be zero)"},
		{0x99200005, ErrIllegalEncoding, SeverityError, "undefined branch condition 4 (C2 must be 0-3)"},
		{0xE0000000, ErrUndefinedOpcode, SeverityError, "undefined opcode 11100 (28)"},
		{0xFFFFFFFF, ErrUndefinedOpcode, SeverityError, "undefined opcode 11111 (31)"},
		{0x99000000, ErrIllegalEncoding, SeverityWarning, "brzr r2, 0 with displacement 0 has no effect"},
		{0x60880000, ErrIllegalEncoding, SeverityWarning, "addi r1, r1, 0 has no effect"},
		{0x71100000, ErrIllegalEncoding, SeverityWarning, "ori r2, r2, 0 has no effect"},
		{0x699BFFFF, ErrIllegalEncoding, SeverityWarning, "andi r3, r3, -1 has no effect"},
	}
	for _, test := range tests {
		err := Check(test.word)
		if test.kind == nil {
			if err != nil {
				t.Errorf("Check(%v): %v", test.word, err)
			}
			continue
		}
		var d *Diagnostic
		if !errors.As(err, &d) {
			t.Errorf("Check(%v) = %v, want *Diagnostic", test.word, err)
			continue
		}
		if !errors.Is(err, test.kind) || d.Severity != test.severity || d.Msg != test.msg {
			t.Errorf("Check(%v) = %v %v %q, want %v %v %q", test.word, d.Kind, d.Severity, d.Msg, test.kind, test.severity, test.msg)
		}
		if d.Pos.IsValid() {
			t.Errorf("Check(%v): unexpected position %v", test.word, d.Pos)
		}

		// Check never gets in the way of disassembly
		if s, err := Disassemble(test.word); s == "" || (err != nil && !errors.Is(err, ErrUndefinedOpcode) && !errors.Is(err, ErrIllegalEncoding)) {
			t.Errorf("Disassemble(%v) = %q, %v", test.word, s, err)
		}
	}
}

func TestCheckAll(t *testing.T) {
	// br? r2, 0 with a reserved bit set
	ds := CheckAll(0x992C0000)
	var got []string
	for _, d := range ds {
		got = append(got, d.Error())
	}
	want := []string{
		"undefined branch condition 5 (C2 must be 0-3)",
		"reserved bits 0x00040000 are set in brXX Ra, C (must be zero)",
		"warning: br? r2, 0 with displacement 0 has no effect",
	}
	if len(got) != len(want) {
		t.Fatalf("CheckAll(992C0000) = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CheckAll(992C0000)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !ds[2].IsWarning() || ds[0].IsWarning() {
		t.Error("wrong severities")
	}

	if ds := CheckAll(0x18918000); len(ds) != 0 {
		t.Fatalf("CheckAll(18918000) = %v", ds)
	}
}

func TestCheckHex(t *testing.T) {
	if err := CheckHex("18918000"); err != nil {
		t.Fatal(err)
	}
	if err := CheckHex("18918001"); !errors.Is(err, ErrIllegalEncoding) {
		t.Fatalf(`CheckHex("18918001") = %v`, err)
	}
	if err := CheckHex("1891800"); !errors.Is(err, ErrSyntax) {
		t.Fatalf(`CheckHex("1891800") = %v`, err)
	}
}
