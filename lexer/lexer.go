// Copyright 2022 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package lexer includes functionality for scanning a line of
// ASM374 instruction text into a sequence of tokens.
package lexer

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/pgaskin/ASM374/token"
)

// Lexeme describes a token, its position, and its textual
// value.
type Lexeme struct {
	Token    token.Token
	Position token.Position
	Value    string
}

func (l Lexeme) String() string {
	return fmt.Sprintf("%s (%s) at %#v", l.Token, l.Value, l.Position)
}

// lexer scans a string, producing a sequence of instruction
// tokens.
type lexer struct {
	// Immutable state.
	src   string
	yield func(Lexeme) bool

	// Mutable state as we progress through the source.
	offset     int            // Offset into the text where the current token starts.
	nextOffset int            // Offset into the text of the current location.
	pos        token.Position // Position where the current token starts.
	column     int            // Column number of the current location.
	width      int            // Number of bytes in the last code point read.
	stopped    bool           // Whether the consumer has stopped iterating.
}

// Scan returns the sequence of lexical tokens in the given
// instruction text.
//
// The sequence is lazy and may be ranged over any number of
// times; each iteration scans the text from the start. It ends
// with a single EndOfInput lexeme, or with an Error lexeme at the
// first character that cannot be tokenised. No attempt is made to
// recover from errors.
func Scan(src string) iter.Seq[Lexeme] {
	return func(yield func(Lexeme) bool) {
		l := &lexer{
			src:   src,
			yield: yield,

			offset:     0,
			nextOffset: 0,
			pos:        token.Start,
			column:     1,
			width:      0,
		}

		l.run()
	}
}

// run scans through the lexer's source, emitting tokens
// until the end of the text is reached, an error is
// encountered, or the consumer stops.
func (l *lexer) run() {
	if len(l.src) > token.MaxOffset {
		l.errorf(token.Start, "instruction text is too long")
		return
	}

	for !l.stopped {
		// Skip over any whitespace.
		for isWhitespace(l.next()) {
		}

		l.backup()
		l.advance()

		// Read the next rune.
		r := l.next()
		if r == eof {
			l.lexeme(token.EndOfInput)
			return
		}

		switch {
		case r == ',':
			l.lexeme(token.Comma)
		case r == '(':
			l.lexeme(token.ParenOpen)
		case r == ')':
			l.lexeme(token.ParenClose)
		case r == '+':
			l.lexeme(token.Plus)
		case r == '-':
			l.lexeme(token.Minus)
		case isLetter(r):
			// Keep going until we get a non-identifier
			// rune.
			for r = l.next(); isAlphanumeric(r); r = l.next() {
			}

			l.backup() // Don't include the next rune.
			l.lexeme(token.Identifier)
		case isDigit(r):
			if !l.scanNumber(r) {
				return
			}
		case r == '$':
			// An unsigned hexadecimal literal.
			if r = l.next(); digitVal(r) >= 16 {
				l.errorf(l.here(), "expected hexadecimal digit after '$', found %s", describe(r))
				return
			}

			if !l.scanDigits(16) {
				return
			}
		default:
			l.errorf(l.here(), "unexpected character %s", describe(r))
			return
		}
	}
}

// scanNumber is called after the first digit of a number
// has been scanned. It returns false if scanning should
// stop.
func (l *lexer) scanNumber(first rune) bool {
	base := 10
	if first == '0' {
		switch l.peek() {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}

		if base != 10 {
			l.next() // Consume the prefix.

			if r := l.next(); digitVal(r) >= base {
				l.errorf(l.here(), "expected base %d digit after prefix, found %s", base, describe(r))
				return false
			}
		}
	}

	return l.scanDigits(base)
}

// scanDigits consumes the remaining digits of a number
// in the given base and emits it. Any letter or digit
// that is not valid in base is an error.
func (l *lexer) scanDigits(base int) bool {
	for {
		r := l.next()
		if !isAlphanumeric(r) {
			break
		}

		if digitVal(r) >= base {
			l.errorf(l.here(), "illegal character %q in base %d number", r, base)
			return false
		}
	}

	l.backup() // Don't include the next rune.
	l.lexeme(token.Number)

	return !l.stopped
}

const (
	// End of input pseudo-rune.
	eof = -1

	// Byte order mark.
	bom = 0xfeff
)

// eof returns whether the lexer has reached the end
// of the source.
func (l *lexer) eof() bool {
	return l.nextOffset >= len(l.src)
}

// emit passes a lexeme to the consumer, recording
// whether it wants any more.
func (l *lexer) emit(lexeme Lexeme) {
	if l.stopped {
		return
	}

	if !l.yield(lexeme) {
		l.stopped = true
	}
}

// errorf emits an error lexeme at the given position.
// An error always ends the sequence.
func (l *lexer) errorf(pos token.Position, format string, v ...any) {
	l.emit(Lexeme{Token: token.Error, Position: pos, Value: fmt.Sprintf(format, v...)})
	l.stopped = true
}

// here returns the position of the most recently
// consumed rune, or the end of the text if next
// returned eof.
func (l *lexer) here() token.Position {
	offset, column := l.nextOffset-l.width, l.column-1
	if l.width == 0 {
		offset, column = l.nextOffset, l.column
	}

	pos, err := token.NewPosition(offset, column)
	if err != nil {
		return l.pos
	}

	return pos
}

// next consumes the next code point, returning it.
//
// Encoding problems are returned as utf8.RuneError
// and reported by the caller as unexpected characters.
func (l *lexer) next() (r rune) {
	if l.eof() {
		l.width = 0
		return eof
	}

	// Try an ASCII character first.
	r, l.width = rune(l.src[l.nextOffset]), 1
	if r >= utf8.RuneSelf {
		// Not ASCII.
		r, l.width = utf8.DecodeRuneInString(l.src[l.nextOffset:])
	}

	l.nextOffset += l.width
	l.column++

	return r
}

// backup steps back by one rune.
//
// Calling backup twice without an intervening call to
// next has no further effect.
func (l *lexer) backup() {
	if l.width == 0 {
		return
	}

	l.nextOffset -= l.width
	l.width = 0
	l.column--
}

// peek returns the next rune, without consuming
// it from the source.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()

	return r
}

// advance the source position.
func (l *lexer) advance() {
	l.offset = l.nextOffset
	pos, err := token.NewPosition(l.offset, l.column)
	if err == nil {
		l.pos = pos
	}
}

// lexeme emits a Lexeme from the current position,
// with the given token type.
func (l *lexer) lexeme(tok token.Token) {
	val := l.src[l.offset:l.nextOffset]
	l.emit(Lexeme{Token: tok, Position: l.pos, Value: val})
	l.advance()
}

// describe renders r for an error message.
func describe(r rune) string {
	switch r {
	case eof:
		return "end of input"
	case utf8.RuneError:
		return "invalid UTF-8"
	case bom:
		return "byte order mark"
	case 0:
		return "NUL"
	}

	return fmt.Sprintf("%q", r)
}

// Rune predicates.

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func digitVal(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r - 'a' + 10)
	case 'A' <= r && r <= 'F':
		return int(r - 'A' + 10)
	}

	return 16 // larger than any legal digit val
}
