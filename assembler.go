package asm374

import (
	"github.com/pgaskin/ASM374/feats"
)

// An Assembler assembles and explains single instructions, restricted to a set of instruction
// groups.
//
// The zero value has no groups enabled; use NewAssembler. An Assembler may be shared between
// goroutines once it is configured.
type Assembler struct {
	feats feats.Feature
}

// Create a new Assembler with all instruction groups enabled.
func NewAssembler() *Assembler {
	return &Assembler{feats: feats.AllFeatures}
}

// Get the current, allowable instruction groups.
//
// See package feats for all available groups.
func (a *Assembler) Features() feats.Feature { return a.feats }

// Restrict the allowable instruction groups.
//
// See package feats for all available groups.
func (a *Assembler) SetFeatures(enabledFeatures feats.Feature) { a.feats = enabledFeatures }

// Control the allowable instruction groups.
//
// See package feats for all available groups.
func (a *Assembler) DisableFeature(feature feats.Feature) { a.feats &^= feature }

// Control the allowable instruction groups.
//
// See package feats for all available groups.
func (a *Assembler) EnableFeature(feature feats.Feature) { a.feats |= feature }

func (a *Assembler) matcher() *InstMatcher {
	return &InstMatcher{feats: a.feats, encId: NoEncoding}
}

// Assemble a single instruction.
//
// Assembly fails closed: if the text is not exactly one valid instruction, the word is zero and
// the error is a *Diagnostic describing the first problem found.
func (a *Assembler) Assemble(text string) (Word, error) {
	m := a.matcher()
	if _, err := m.parse(text); err != nil {
		return 0, err
	}
	return m.emit(), nil
}

// Parse a single instruction without encoding it. The operands are as written, so constants
// keep their signedness.
func (a *Assembler) Parse(text string) (Instruction, error) {
	m := a.matcher()
	if _, err := m.parse(text); err != nil {
		return Instruction{Inst: Inst(0xff), Encoding: NoEncoding}, err
	}
	return m.Instruction(), nil
}

// Assemble a single instruction with all instruction groups enabled.
func Assemble(text string) (Word, error) {
	return NewAssembler().Assemble(text)
}

// Assemble a single instruction with all instruction groups enabled, returning the word as 8
// upper-case hexadecimal digits, or an empty string on failure.
func AssembleHex(text string) (string, error) {
	w, err := Assemble(text)
	if err != nil {
		return "", err
	}
	return w.String(), nil
}
