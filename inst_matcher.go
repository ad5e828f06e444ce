package asm374

import (
	"github.com/pgaskin/ASM374/feats"
	"github.com/pgaskin/ASM374/token"
)

// InstMatcher finds the encoding for an instruction with arguments.
//
// An InstMatcher is not safe for concurrent use; the package-level functions and Assembler
// create one per call.
type InstMatcher struct {
	// enabled instruction groups:
	feats feats.Feature

	// scratch space for current instruction, arguments, and matched encoding:

	inst  Inst
	cond  Cond
	args  []Arg // sized reference to _args
	_args [3]Arg

	encId Encoding // matched encoding, NoEncoding if none
	enc   enc

	// resolved fields:

	regs [3]Reg // Ra, Rb, Rc
	c    uint32 // C field
}

// Create an instruction matcher with all instruction groups enabled by default.
func NewInstMatcher() *InstMatcher {
	return &InstMatcher{feats: feats.AllFeatures, encId: NoEncoding}
}

func (m *InstMatcher) reset() {
	*m = InstMatcher{feats: m.feats, encId: NoEncoding}
}

// Get the current, allowable instruction groups for instruction-matching.
//
// See package feats for all available groups.
func (m *InstMatcher) Features() feats.Feature { return m.feats }

// Restrict the allowable instruction groups for instruction-matching.
//
// See package feats for all available groups.
func (m *InstMatcher) SetFeatures(enabledFeatures feats.Feature) { m.feats = enabledFeatures }

// Control the allowable instruction groups for instruction-matching.
//
// See package feats for all available groups.
func (m *InstMatcher) DisableFeature(feature feats.Feature) { m.feats &^= feature }

// Control the allowable instruction groups for instruction-matching.
//
// See package feats for all available groups.
func (m *InstMatcher) EnableFeature(feature feats.Feature) { m.feats |= feature }

// Get the matched encoding, or NoEncoding if the last match failed.
func (m *InstMatcher) EncodingId() Encoding { return m.encId }

// Get the instruction group required by the matched instruction.
func (m *InstMatcher) InstFeatures() feats.Feature { return m.inst.Features() }

// Find the encoding for inst with args. The condition is only used by BR and must be zero
// otherwise. If no encoding matches, the returned error describes why.
func (m *InstMatcher) Match(inst Inst, cond Cond, args ...Arg) error {
	if err := m.prepare(inst, cond, token.Position(0)); err != nil {
		return err
	}
	return m.match(args, nil)
}

// Find the encoding for inst with a register operand.
func (m *InstMatcher) R(inst Inst, ra Reg) error { return m.Match(inst, 0, ra) }

// Find the encoding for inst with two register operands.
func (m *InstMatcher) RR(inst Inst, ra, rb Reg) error { return m.Match(inst, 0, ra, rb) }

// Find the encoding for inst with three register operands.
func (m *InstMatcher) RRR(inst Inst, ra, rb, rc Reg) error { return m.Match(inst, 0, ra, rb, rc) }

// Find the encoding for inst with two register operands and a constant.
func (m *InstMatcher) RRI(inst Inst, ra, rb Reg, c Imm) error { return m.Match(inst, 0, ra, rb, c) }

// Find the encoding for inst with a register destination and a memory source.
func (m *InstMatcher) RM(inst Inst, ra Reg, src Mem) error { return m.Match(inst, 0, ra, src) }

// Find the encoding for inst with a memory destination and a register source.
func (m *InstMatcher) MR(inst Inst, dst Mem, ra Reg) error { return m.Match(inst, 0, dst, ra) }

// Find the encoding for a conditional branch.
func (m *InstMatcher) Branch(cond Cond, ra Reg, disp Imm) error { return m.Match(BR, cond, ra, disp) }

// Check that inst can be matched at all with the enabled groups.
func (m *InstMatcher) prepare(inst Inst, cond Cond, pos token.Position) error {
	m.reset()
	if !inst.IsValid() {
		return errorf(ErrUnknownMnemonic, pos, "undefined instruction %v", inst)
	}
	if inst.Features()&m.feats == 0 {
		return errorf(ErrUnknownMnemonic, pos, "%s is not available: instruction group %v is disabled", inst.Name(), inst.Features())
	}
	if inst == BR {
		if !cond.IsValid() {
			return errorf(ErrOperandRange, pos, "branch condition %d out of range (zr, nz, pl, mi)", cond)
		}
	} else if cond != 0 {
		return errorf(ErrOperandMismatch, pos, "%s does not take a condition", inst.Name())
	}
	m.inst, m.cond = inst, cond
	return nil
}

// Get the matched instruction. The operands are the ones given to Match.
func (m *InstMatcher) Instruction() Instruction {
	if !m.encId.IsValid() {
		return Instruction{Inst: m.inst, Encoding: NoEncoding}
	}
	return Instruction{
		Inst:     m.inst,
		Cond:     m.cond,
		Args:     append([]Arg(nil), m.args...),
		Encoding: m.encId,
	}
}
