package disasm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	asm "github.com/pgaskin/ASM374"
)

func assemble(t *testing.T, texts ...string) []byte {
	t.Helper()
	var code []byte
	for _, text := range texts {
		w, err := asm.Assemble(text)
		if err != nil {
			t.Fatalf("Assemble(%q): %v", text, err)
		}
		code = Append(code, w)
	}
	return code
}

func collect(t *testing.T, code []byte) ([]Entry, error) {
	t.Helper()
	var entries []Entry
	err := Words(code, func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries, err
}

func TestWords(t *testing.T) {
	code := assemble(t, "ldi r2, 0x39(r1)", "brnz r2, -1", "st 0x80, r2")
	code = append(code, 0xff, 0xff, 0xff, 0xff) // undefined opcode

	entries, err := collect(t, code)
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{
		{Offset: 0, Word: 0x09080039, Text: "ldi r2, 57(r1)"},
		{Offset: 4, Word: 0x990BFFFF, Text: "brnz r2, -1"},
		{Offset: 8, Word: 0x11000080, Text: "st 128, r2"},
		{Offset: 12, Word: 0xFFFFFFFF, Text: "?"},
	}
	if diff := cmp.Diff(want, entries, cmpopts.IgnoreFields(Entry{}, "Err")); diff != "" {
		t.Fatalf("Words (-want +got):\n%s", diff)
	}
	for _, e := range entries[:3] {
		if e.Err != nil {
			t.Errorf("%v: %v", e.Word, e.Err)
		}
	}
	if !errors.Is(entries[3].Err, asm.ErrUndefinedOpcode) {
		t.Errorf("%v: %v", entries[3].Word, entries[3].Err)
	}
}

func TestWordsHalt(t *testing.T) {
	code := assemble(t, "addi r1, r1, 1", "halt")
	code = append(code, make([]byte, 32)...)
	entries, err := collect(t, code)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[1].Text != "halt" {
		t.Fatalf("expected %v instructions, found %v", 2, len(entries))
	}

	// halt followed by more code does not end the stream
	code = assemble(t, "halt", "nop")
	if entries, _ := collect(t, code); len(entries) != 2 {
		t.Fatalf("expected %v instructions, found %v", 2, len(entries))
	}
}

func TestWordsWhile(t *testing.T) {
	code := assemble(t, "nop", "nop", "nop", "halt")
	n := 0
	err := Words(code, func(e Entry) bool {
		n++
		return n < 2
	})
	if err != nil || n != 2 {
		t.Fatalf("Words stopped after %d entries: %v", n, err)
	}
}

func TestWordsPartial(t *testing.T) {
	code := append(assemble(t, "nop"), 0xd0, 0x00)
	entries, err := collect(t, code)
	if err == nil {
		t.Fatal("expected an error for a partial word")
	}
	if len(entries) != 1 {
		t.Fatalf("expected %v instructions, found %v", 1, len(entries))
	}
}

func TestAppend(t *testing.T) {
	got := Append([]byte{0xaa}, 0x9903F6D7, 0xD0000000)
	want := []byte{0xaa, 0x99, 0x03, 0xf6, 0xd7, 0xd0, 0x00, 0x00, 0x00}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Append (-want +got):\n%s", diff)
	}
}
