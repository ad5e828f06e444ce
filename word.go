package asm374

import (
	"encoding/binary"
	"fmt"

	"github.com/pgaskin/ASM374/token"
)

// Word is an encoded 32-bit instruction.
//
// Words are exchanged as 8 hexadecimal digits, most significant first. Parsing is
// case-insensitive; String always renders upper case.
type Word uint32

const hexDigits = "0123456789ABCDEF"

func (w Word) String() string {
	var b [8]byte
	for i := range b {
		b[i] = hexDigits[(w>>(28-4*uint(i)))&0xf]
	}
	return string(b[:])
}

func (w Word) GoString() string { return fmt.Sprintf("Word(0x%08X)", uint32(w)) }

// Get the big-endian byte representation of the word.
func (w Word) Bytes() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(w))
	return b
}

// Get the word for a big-endian byte representation.
func WordFromBytes(b [4]byte) Word { return Word(binary.BigEndian.Uint32(b[:])) }

// Parse exactly 8 hexadecimal digits (in either case) into a word. Anything else is an
// ErrSyntax diagnostic positioned at the first offending character.
func ParseWord(s string) (Word, error) {
	var w Word
	for i := 0; i < len(s); i++ {
		d := hexVal(s[i])
		if d >= 16 || i >= 8 {
			return 0, errorf(ErrSyntax, textPos(s, i), "invalid hexadecimal word %q (expected 8 hex digits)", s)
		}
		w = w<<4 | Word(d)
	}
	if len(s) != 8 {
		return 0, errorf(ErrSyntax, textPos(s, len(s)), "invalid hexadecimal word %q (expected 8 hex digits)", s)
	}
	return w, nil
}

func hexVal(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0xff
}

// Get the position of byte offset i within s, counting columns in code points.
func textPos(s string, i int) token.Position {
	if i > len(s) {
		i = len(s)
	}
	pos, err := token.NewPosition(i, len([]rune(s[:i]))+1)
	if err != nil {
		return token.Position(0)
	}
	return pos
}
