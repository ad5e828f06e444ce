// Copyright 2022 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package token contains constants for the lexical tokens of
// ASM374 instruction text and a type to compactly store a
// position within that text.
package token

import (
	"strconv"
)

// Token is the set of lexical tokens in an instruction.
type Token int

const (
	// Special tokens.
	EndOfInput Token = iota
	Error

	// Primitive tokens.
	Identifier // Mnemonic or register name.
	Number     // 12, 0x1f, 0o17, 0b101, $1f
	Comma      // ,
	ParenOpen  // (
	ParenClose // )
	Plus       // +
	Minus      // -

	endTokens
)

var tokens = [...]string{
	EndOfInput: "end of input",
	Error:      "error",

	Identifier: "identifier",
	Number:     "number",
	Comma:      "comma",
	ParenOpen:  "opening parenthesis",
	ParenClose: "closing parenthesis",
	Plus:       "plus sign",
	Minus:      "minus sign",
}

// String returns the textual representation for
// the token t.
func (t Token) String() string {
	if 0 <= t && t < endTokens {
		return tokens[t]
	}

	return "Token(" + strconv.Itoa(int(t)) + ")"
}
