package asm374

import (
	"strings"

	"github.com/pgaskin/ASM374/token"
)

// Count the leading arguments whose kinds fit the operand pattern.
func matchPattern(argp string, args []Arg) int {
	n := 0
	for n < len(argp) && n < len(args) {
		if args[n] == nil || args[n].Kind() != argpKind(argp[n]) {
			break
		}
		n++
	}
	return n
}

// Select the encoding for the prepared instruction. pos holds the position of each argument,
// followed by the position just past the last one; it may be nil.
func (m *InstMatcher) match(args []Arg, pos []token.Position) error {
	exact, prefix := NoEncoding, NoEncoding
	for i, e := range m.inst.encs() {
		id := Encoding(int(instEncOffsets[m.inst]) + i)
		if n := matchPattern(e.argp, args); n == len(e.argp) {
			switch {
			case n == len(args):
				if exact == NoEncoding || e.specificity() > exact.Specificity() {
					exact = id
				}
			case prefix == NoEncoding:
				prefix = id
			}
		}
	}
	switch {
	case exact != NoEncoding:
		m.args = m._args[:copy(m._args[:], args)]
		m.encId, m.enc = exact, encs[exact]
	case prefix != NoEncoding:
		// report the first operand after a complete syntax form
		n := len(encs[prefix].argp)
		err := errorf(ErrTrailingInput, posAt(pos, n), "unexpected operand %s (%s takes %s)", args[n], m.mnemonic(), syntaxShapeOrNone(encs[prefix].argp))
		m.reset()
		return err
	default:
		return m.mismatch(args, pos)
	}

	if err := m.sanitizeArgs(pos); err != nil {
		m.reset()
		return err
	}
	return nil
}

func (m *InstMatcher) mismatch(args []Arg, pos []token.Position) error {
	// report at the first argument which no syntax form accepts
	best := 0
	var shapes []string
	for _, e := range m.inst.encs() {
		best = max(best, matchPattern(e.argp, args))
		if e.argp == "" {
			shapes = append(shapes, "no operands")
		} else {
			shapes = append(shapes, `"`+syntaxShape(e.argp)+`"`)
		}
	}
	var found string
	if len(args) == 0 {
		found = "no operands"
	} else {
		kinds := make([]string, len(args))
		for i, arg := range args {
			if arg == nil {
				kinds[i] = "nothing"
			} else {
				kinds[i] = arg.Kind().String()
			}
		}
		found = `"` + strings.Join(kinds, ", ") + `"`
	}
	err := errorf(ErrOperandMismatch, posAt(pos, best), "%s takes %s, found %s", m.mnemonic(), strings.Join(shapes, " or "), found)
	m.reset()
	return err
}

// Get the mnemonic as written, including the condition suffix of a branch.
func (m *InstMatcher) mnemonic() string {
	if m.inst == BR {
		return Br(m.cond)
	}
	return m.inst.Name()
}

func syntaxShapeOrNone(argp string) string {
	if argp == "" {
		return "no operands"
	}
	return syntaxShape(argp)
}

func posAt(pos []token.Position, i int) token.Position {
	if i < len(pos) {
		return pos[i]
	}
	return token.Position(0)
}
