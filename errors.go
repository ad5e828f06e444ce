package asm374

import (
	"errors"
	"fmt"

	"github.com/pgaskin/ASM374/token"
)

// Diagnostic kinds. Every error returned by this package is a *Diagnostic wrapping one of these,
// so callers can test the kind with errors.Is and get the details with errors.As.
var (
	ErrSyntax          = errors.New("syntax error")         // malformed text or hex word
	ErrUnknownMnemonic = errors.New("unknown mnemonic")     // missing or unrecognized mnemonic
	ErrOperandMismatch = errors.New("operand mismatch")     // operands don't fit any syntax form
	ErrOperandRange    = errors.New("operand out of range") // operand doesn't fit its field
	ErrTrailingInput   = errors.New("trailing input")       // text after a complete instruction
	ErrUndefinedOpcode = errors.New("undefined opcode")     // opcode 28-31
	ErrIllegalEncoding = errors.New("illegal encoding")     // decodable, but not architecturally legal
)

// Severity of a diagnostic.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// Diagnostic describes a problem with an instruction's text or encoding.
type Diagnostic struct {
	Kind     error          // one of the Err* kinds
	Severity Severity       // warnings are only produced by Check
	Pos      token.Position // position in the instruction text, or invalid for encodings
	Msg      string
}

func (d *Diagnostic) Error() string {
	s := d.Msg
	if d.Severity == SeverityWarning {
		s = "warning: " + s
	}
	if d.Pos.IsValid() {
		s = "column " + d.Pos.String() + ": " + s
	}
	return s
}

func (d *Diagnostic) Unwrap() error { return d.Kind }

// Check if the diagnostic is a warning, i.e. describes a legal but pointless instruction.
func (d *Diagnostic) IsWarning() bool { return d.Severity == SeverityWarning }

func errorf(kind error, pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: SeverityError, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func warnf(kind error, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: SeverityWarning, Msg: fmt.Sprintf(format, args...)}
}
