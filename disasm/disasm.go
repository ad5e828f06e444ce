package disasm

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	asm "github.com/pgaskin/ASM374"
)

// Entry is a single disassembled word.
type Entry struct {
	Offset int      // byte offset of the word in the stream
	Word   asm.Word // the word itself
	Text   string   // canonical text, "?" for undefined opcodes
	Err    error    // the disassembly diagnostic, if any
}

// Disassemble big-endian instruction words from code until while returns false.
//
// A halt instruction followed only by zero bytes ends the stream, since memory images are
// typically zero-filled past the end of the program. If code ends with a partial word, an error
// is returned after all complete words have been visited.
func Words(code []byte, while func(Entry) bool) error {
	s := cryptobyte.String(code)
	for off := 0; !s.Empty(); off += 4 {
		var w uint32
		if !s.ReadUint32(&w) {
			return fmt.Errorf("%d trailing bytes at offset %d are not a complete word", len(s), off)
		}
		text, err := asm.Disassemble(asm.Word(w))
		if !while(Entry{Offset: off, Word: asm.Word(w), Text: text, Err: err}) {
			return nil
		}
		if asm.Word(w) == halt && isZero(s) {
			return nil
		}
	}
	return nil
}

// Append the big-endian encoding of words to b.
func Append(b []byte, words ...asm.Word) []byte {
	bb := cryptobyte.NewBuilder(b)
	for _, w := range words {
		bb.AddUint32(uint32(w))
	}
	return bb.BytesOrPanic()
}

var halt = func() asm.Word {
	w, err := asm.Assemble("halt")
	if err != nil {
		panic(err)
	}
	return w
}()

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
