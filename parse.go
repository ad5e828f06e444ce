package asm374

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/pgaskin/ASM374/lexer"
	"github.com/pgaskin/ASM374/token"
)

// Operand grammar:
//
//	instruction := mnemonic [ operand { ',' operand } ]
//	operand     := register | immediate | immediate '(' register ')'
//	immediate   := [ '+' | '-' ] number

// An instruction as far as it could be parsed.
type parsed struct {
	known    bool // the mnemonic was recognised
	inst     Inst
	cond     Cond
	mnemonic lexer.Lexeme
	args     []Arg
	pos      []token.Position // position of each operand, then of whatever follows the last
}

type parser struct {
	lexemes []lexer.Lexeme // always ends with EndOfInput or Error
	i       int
}

func (ps *parser) peek() lexer.Lexeme { return ps.lexemes[ps.i] }

func (ps *parser) advance() lexer.Lexeme {
	l := ps.lexemes[ps.i]
	if ps.i+1 < len(ps.lexemes) {
		ps.i++
	}
	return l
}

// Parse text and match it against the prepared matcher. On failure, p holds whatever was
// recognised before the error.
func (m *InstMatcher) parse(text string) (p parsed, err error) {
	ps := parser{lexemes: slices.Collect(lexer.Scan(text))}

	first := ps.peek()
	switch first.Token {
	case token.Identifier:
	case token.Error:
		return p, syntaxErr(first)
	case token.EndOfInput:
		return p, errorf(ErrUnknownMnemonic, first.Position, "missing mnemonic")
	default:
		return p, errorf(ErrUnknownMnemonic, first.Position, "expected mnemonic, found %s", describe(first))
	}
	ps.advance()

	inst, cond, err := lookupInst(first.Value, first.Position)
	if err != nil {
		return p, err
	}
	p.known, p.inst, p.cond, p.mnemonic = true, inst, cond, first

	if err := ps.operands(&p); err != nil {
		return p, err
	}
	if err := m.prepare(inst, cond, first.Position); err != nil {
		return p, err
	}
	if err := m.match(p.args, p.pos); err != nil {
		return p, err
	}
	if rest := ps.peek(); rest.Token != token.EndOfInput {
		m.reset()
		return p, errorf(ErrTrailingInput, rest.Position, "unexpected %s after complete instruction", describe(rest))
	}
	return p, nil
}

func (ps *parser) operands(p *parsed) error {
	if l := ps.peek(); l.Token == token.EndOfInput {
		p.pos = append(p.pos, l.Position)
		return nil
	}
	for {
		start := ps.peek()
		arg, err := ps.operand()
		if err != nil {
			return err
		}
		p.args = append(p.args, arg)
		p.pos = append(p.pos, start.Position)
		if ps.peek().Token != token.Comma {
			break
		}
		ps.advance()
	}
	rest := ps.peek()
	if rest.Token == token.Error {
		return syntaxErr(rest)
	}
	p.pos = append(p.pos, rest.Position)
	return nil
}

func (ps *parser) operand() (Arg, error) {
	l := ps.peek()
	switch l.Token {
	case token.Identifier:
		ps.advance()
		return register(l)
	case token.Plus, token.Minus, token.Number:
		imm, err := ps.immediate()
		if err != nil {
			return nil, err
		}
		if ps.peek().Token != token.ParenOpen {
			return imm, nil
		}
		ps.advance()

		r := ps.peek()
		switch r.Token {
		case token.Identifier:
		case token.Error:
			return nil, syntaxErr(r)
		default:
			return nil, errorf(ErrSyntax, r.Position, "expected index register after '(', found %s", describe(r))
		}
		ps.advance()
		base, err := register(r)
		if err != nil {
			return nil, err
		}

		c := ps.peek()
		switch c.Token {
		case token.ParenClose:
		case token.Error:
			return nil, syntaxErr(c)
		default:
			return nil, errorf(ErrSyntax, c.Position, "expected ')' after index register, found %s", describe(c))
		}
		ps.advance()
		return Mem{Disp: imm, Base: base}, nil
	case token.Error:
		return nil, syntaxErr(l)
	}
	return nil, errorf(ErrSyntax, l.Position, "expected operand, found %s", describe(l))
}

func register(l lexer.Lexeme) (Reg, error) {
	n, ok := parseRegName(l.Value)
	switch {
	case !ok:
		return 0, errorf(ErrOperandMismatch, l.Position, "expected register or constant, found %q", l.Value)
	case n > 0xff:
		return 0, errorf(ErrOperandRange, l.Position, "register %s out of range (r0..r15)", l.Value)
	}
	return Reg(n), nil
}

func (ps *parser) immediate() (Imm, error) {
	start := ps.peek()
	var sign string
	if start.Token == token.Plus || start.Token == token.Minus {
		sign = start.Value
		ps.advance()
	}

	l := ps.peek()
	switch l.Token {
	case token.Number:
	case token.Error:
		return Imm{}, syntaxErr(l)
	default:
		return Imm{}, errorf(ErrSyntax, l.Position, "expected number after %q, found %s", sign, describe(l))
	}
	ps.advance()

	digits, base := l.Value, 10
	switch {
	case digits[0] == '$':
		if sign != "" {
			return Imm{}, errorf(ErrSyntax, l.Position, "unsigned constant %s cannot have a sign", l.Value)
		}
		digits, base = digits[1:], 16
	case len(digits) > 2 && digits[0] == '0':
		switch digits[1] {
		case 'x', 'X':
			digits, base = digits[2:], 16
		case 'o', 'O':
			digits, base = digits[2:], 8
		case 'b', 'B':
			digits, base = digits[2:], 2
		}
	}

	// the lexer has already checked the digits, so this can only fail if the value is too large
	n, err := strconv.ParseUint(digits, base, 63)
	if err != nil {
		return Imm{}, errorf(ErrOperandRange, start.Position, "constant C = %s%s out of range", sign, l.Value)
	}
	v := int64(n)
	if sign == "-" {
		v = -v
	}
	return Imm{Value: v, Unsigned: sign == "" && base != 10}, nil
}

func syntaxErr(l lexer.Lexeme) error {
	return errorf(ErrSyntax, l.Position, "%s", l.Value)
}

func describe(l lexer.Lexeme) string {
	switch l.Token {
	case token.EndOfInput:
		return "end of input"
	case token.Identifier, token.Number:
		return fmt.Sprintf("%s %q", l.Token, l.Value)
	}
	return fmt.Sprintf("%q", l.Value)
}
