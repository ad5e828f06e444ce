// Copyright 2022 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package lexer

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pgaskin/ASM374/token"
)

func position(t *testing.T, offset, column int) token.Position {
	pos, err := token.NewPosition(offset, column)
	if err != nil {
		t.Helper()
		t.Fatalf("invalid position: %v", err)
	}

	return pos
}

func TestLexer(t *testing.T) {
	tests := []struct {
		src  string
		want []Lexeme
	}{
		{
			src: "",
			want: []Lexeme{
				{token.EndOfInput, position(t, 0, 1), ""},
			},
		},
		{
			src: "nop",
			want: []Lexeme{
				{token.Identifier, position(t, 0, 1), "nop"},
				{token.EndOfInput, position(t, 3, 4), ""},
			},
		},
		{
			src: "add r1, r2, r3",
			want: []Lexeme{
				{token.Identifier, position(t, 0, 1), "add"},
				{token.Identifier, position(t, 4, 5), "r1"},
				{token.Comma, position(t, 6, 7), ","},
				{token.Identifier, position(t, 8, 9), "r2"},
				{token.Comma, position(t, 10, 11), ","},
				{token.Identifier, position(t, 12, 13), "r3"},
				{token.EndOfInput, position(t, 14, 15), ""},
			},
		},
		{
			src: "\tldi R0,-0x39(r1) ",
			want: []Lexeme{
				{token.Identifier, position(t, 1, 2), "ldi"},
				{token.Identifier, position(t, 5, 6), "R0"},
				{token.Comma, position(t, 7, 8), ","},
				{token.Minus, position(t, 8, 9), "-"},
				{token.Number, position(t, 9, 10), "0x39"},
				{token.ParenOpen, position(t, 13, 14), "("},
				{token.Identifier, position(t, 14, 15), "r1"},
				{token.ParenClose, position(t, 16, 17), ")"},
				{token.EndOfInput, position(t, 18, 19), ""},
			},
		},
		{
			src: "brzr r2, +$270F",
			want: []Lexeme{
				{token.Identifier, position(t, 0, 1), "brzr"},
				{token.Identifier, position(t, 5, 6), "r2"},
				{token.Comma, position(t, 7, 8), ","},
				{token.Plus, position(t, 9, 10), "+"},
				{token.Number, position(t, 10, 11), "$270F"},
				{token.EndOfInput, position(t, 15, 16), ""},
			},
		},
		{
			src: "0b0101 0o17 0 0000",
			want: []Lexeme{
				{token.Number, position(t, 0, 1), "0b0101"},
				{token.Number, position(t, 7, 8), "0o17"},
				{token.Number, position(t, 12, 13), "0"},
				{token.Number, position(t, 14, 15), "0000"},
				{token.EndOfInput, position(t, 18, 19), ""},
			},
		},
		{
			src: "st 5 ;",
			want: []Lexeme{
				{token.Identifier, position(t, 0, 1), "st"},
				{token.Number, position(t, 3, 4), "5"},
				{token.Error, position(t, 5, 6), "unexpected character ';'"},
			},
		},
		{
			src: "ldi r1, 12ab",
			want: []Lexeme{
				{token.Identifier, position(t, 0, 1), "ldi"},
				{token.Identifier, position(t, 4, 5), "r1"},
				{token.Comma, position(t, 6, 7), ","},
				{token.Error, position(t, 10, 11), "illegal character 'a' in base 10 number"},
			},
		},
		{
			src: "$0x10",
			want: []Lexeme{
				{token.Error, position(t, 2, 3), "illegal character 'x' in base 16 number"},
			},
		},
		{
			src: "$-5",
			want: []Lexeme{
				{token.Error, position(t, 1, 2), "expected hexadecimal digit after '$', found '-'"},
			},
		},
		{
			src: "0x",
			want: []Lexeme{
				{token.Error, position(t, 2, 3), "expected base 16 digit after prefix, found end of input"},
			},
		},
		{
			src: "0b102",
			want: []Lexeme{
				{token.Error, position(t, 4, 5), "illegal character '2' in base 2 number"},
			},
		},
		{
			src: "é r1",
			want: []Lexeme{
				{token.Error, position(t, 0, 1), "unexpected character 'é'"},
			},
		},
		{
			src: "r1 \xff",
			want: []Lexeme{
				{token.Identifier, position(t, 0, 1), "r1"},
				{token.Error, position(t, 3, 4), "unexpected character invalid UTF-8"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			got := slices.Collect(Scan(test.src))
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Fatalf("Scan(%q): (-want, +got)\n%s", test.src, diff)
			}
		})
	}
}

func TestLexerRestartable(t *testing.T) {
	seq := Scan("jal r15")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second scan differs: (-first, +second)\n%s", diff)
	}

	if len(first) != 3 {
		t.Fatalf("got %d lexemes, want 3", len(first))
	}
}

func TestLexerEarlyStop(t *testing.T) {
	var n int
	for lexeme := range Scan("add r1, r2, r3") {
		n++
		if lexeme.Token == token.Comma {
			break
		}
	}

	if n != 3 {
		t.Fatalf("got %d lexemes before the first comma, want 3", n)
	}
}

func TestLexerTooLong(t *testing.T) {
	src := make([]byte, token.MaxOffset+1)
	for i := range src {
		src[i] = ' '
	}

	got := slices.Collect(Scan(string(src)))
	if len(got) != 1 || got[0].Token != token.Error {
		t.Fatalf("Scan(long text): got %v, want a single error", got)
	}
}
