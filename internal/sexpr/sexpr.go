// Package sexpr reads CTL formulas written as s-expressions, for example
//
//	(E (U (EX (not p0)) (AF (and p1 p2))))
//
// Bare symbols are atomic propositions except for true and false. A
// proposition that is not a plain symbol is written as a Go string literal,
// e.g. "true" or "door open". A ';' starts a comment running to the end of
// the line.
package sexpr

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/goatx/ctl"
)

// SyntaxError reports malformed input. Offset counts runes from the start of
// the input to the offending token.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

type tokenType int

const (
	tokEOF tokenType = iota
	tokLParen
	tokRParen
	tokSymbol
	tokString
	tokInvalid
)

type token struct {
	typ    tokenType
	text   string
	offset int
}

type tokenizer struct {
	input []rune
	pos   int
}

func (t *tokenizer) skipWhitespace() {
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == ';' {
			for t.pos < len(t.input) && t.input[t.pos] != '\n' {
				t.pos++
			}
		} else if unicode.IsSpace(c) {
			t.pos++
		} else {
			break
		}
	}
}

func (t *tokenizer) next() token {
	t.skipWhitespace()
	if t.pos >= len(t.input) {
		return token{typ: tokEOF, offset: t.pos}
	}

	start := t.pos
	switch t.input[t.pos] {
	case '(':
		t.pos++
		return token{typ: tokLParen, text: "(", offset: start}
	case ')':
		t.pos++
		return token{typ: tokRParen, text: ")", offset: start}
	case '"':
		return t.quoted()
	}
	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if unicode.IsSpace(c) || c == '(' || c == ')' || c == ';' || c == '"' {
			break
		}
		t.pos++
	}
	return token{typ: tokSymbol, text: string(t.input[start:t.pos]), offset: start}
}

// quoted reads a Go string literal. A malformed literal becomes a tokInvalid
// token whose text is the error message.
func (t *tokenizer) quoted() token {
	start := t.pos
	t.pos++
	for t.pos < len(t.input) {
		switch t.input[t.pos] {
		case '\\':
			t.pos += 2
			continue
		case '"':
			t.pos++
			lit := string(t.input[start:t.pos])
			s, err := strconv.Unquote(lit)
			if err != nil {
				return token{typ: tokInvalid, text: "invalid string literal " + lit, offset: start}
			}
			return token{typ: tokString, text: s, offset: start}
		}
		t.pos++
	}
	t.pos = len(t.input)
	return token{typ: tokInvalid, text: "unterminated string literal", offset: start}
}

type parser struct {
	tokenizer *tokenizer
	current   token
}

// Parse reads exactly one formula from input.
func Parse(input string) (ctl.Formula, error) {
	p := &parser{tokenizer: &tokenizer{input: []rune(input)}}
	p.advance()

	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.current.typ != tokEOF {
		return nil, p.errorf("unexpected %q after formula", p.current.text)
	}
	return f, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input string) ctl.Formula {
	f, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return f
}

func (p *parser) advance() token {
	tok := p.current
	p.current = p.tokenizer.next()
	return tok
}

func (p *parser) invalid() error {
	return &SyntaxError{Offset: p.current.offset, Msg: p.current.text}
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.current.offset, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(typ tokenType, what string) error {
	if p.current.typ != typ {
		if p.current.typ == tokEOF {
			return p.errorf("expected %s, got end of input", what)
		}
		return p.errorf("expected %s, got %q", what, p.current.text)
	}
	p.advance()
	return nil
}

func (p *parser) parseFormula() (ctl.Formula, error) {
	switch p.current.typ {
	case tokSymbol:
		tok := p.advance()
		switch tok.text {
		case "true":
			return ctl.True(), nil
		case "false":
			return ctl.False(), nil
		}
		return ctl.Atomic(ctl.Proposition(tok.text)), nil
	case tokString:
		tok := p.advance()
		return ctl.Atomic(ctl.Proposition(tok.text)), nil
	case tokInvalid:
		return nil, p.invalid()
	case tokLParen:
		p.advance()
	case tokEOF:
		return nil, p.errorf("expected formula, got end of input")
	default:
		return nil, p.errorf("expected formula, got %q", p.current.text)
	}

	if p.current.typ != tokSymbol {
		return nil, p.errorf("expected operator")
	}
	op := p.advance()

	var f ctl.Formula
	var err error
	switch op.text {
	case "not":
		f, err = p.unary(ctl.Not)
	case "and", "or":
		f, err = p.variadic(op.text)
	case "implies":
		f, err = p.binary(ctl.Implies)
	case "EX":
		f, err = p.unary(ctl.EX)
	case "AX":
		f, err = p.unary(ctl.AX)
	case "EF":
		f, err = p.unary(ctl.EF)
	case "AF":
		f, err = p.unary(ctl.AF)
	case "EG":
		f, err = p.unary(ctl.EG)
	case "AG":
		f, err = p.unary(ctl.AG)
	case "EU":
		f, err = p.binary(ctl.EU)
	case "AU":
		f, err = p.binary(ctl.AU)
	case "E", "A":
		var path ctl.PathFormula
		path, err = p.parsePath()
		if err == nil {
			if op.text == "E" {
				f = ctl.Exists(path)
			} else {
				f = ctl.Forall(path)
			}
		}
	default:
		return nil, &SyntaxError{Offset: op.offset, Msg: fmt.Sprintf("unknown operator %q", op.text)}
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *parser) parsePath() (ctl.PathFormula, error) {
	if err := p.expect(tokLParen, "path formula"); err != nil {
		return nil, err
	}
	if p.current.typ != tokSymbol {
		return nil, p.errorf("expected X or U")
	}
	op := p.advance()

	var path ctl.PathFormula
	switch op.text {
	case "X":
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		path = ctl.Next(f)
	case "U":
		l, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		r, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		path = ctl.Until(l, r)
	default:
		return nil, &SyntaxError{Offset: op.offset, Msg: fmt.Sprintf("unknown path operator %q", op.text)}
	}
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return path, nil
}

func (p *parser) unary(build func(ctl.Formula) ctl.Formula) (ctl.Formula, error) {
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	return build(f), nil
}

func (p *parser) binary(build func(l, r ctl.Formula) ctl.Formula) (ctl.Formula, error) {
	l, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	r, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	return build(l, r), nil
}

// variadic folds (and a b c) into (and (and a b) c), and likewise for or.
func (p *parser) variadic(op string) (ctl.Formula, error) {
	build := ctl.And
	if op == "or" {
		build = ctl.Or
	}
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	n := 1
	for p.current.typ != tokRParen && p.current.typ != tokEOF {
		g, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		f = build(f, g)
		n++
	}
	if n < 2 {
		return nil, p.errorf("%s needs at least two operands", op)
	}
	return f, nil
}
