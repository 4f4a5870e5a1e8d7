package ribparse

import (
	"fmt"
	"strconv"
	"strings"
)

// tokenKind discriminates lexical tokens in a RIB stream.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokLBracket
	tokRBracket
	tokComment // '#' to end of line; Structure true for '##' records
)

type token struct {
	kind      tokenKind
	text      string  // ident, string contents, or comment text
	num       float64 // number value
	isInt     bool    // number lexeme had no '.' or exponent
	structure bool    // comment was a '##' structural record
	line      int
}

// lexer tokenizes a whole RIB document held in memory. RIB documents fed
// to this tool are small scene descriptions, so buffering the input keeps
// the lexer trivial.
type lexer struct {
	src  string
	pos  int
	line int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func isIdentStart(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isIdent(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9' || c == '_'
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}

// next returns the following token, or an error for malformed input.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}
	c := l.src[l.pos]
	switch {
	case c == '#':
		return l.comment(), nil
	case c == '[':
		l.pos++
		return token{kind: tokLBracket, line: l.line}, nil
	case c == ']':
		l.pos++
		return token{kind: tokRBracket, line: l.line}, nil
	case c == '"':
		return l.stringLit()
	case isNumberStart(c):
		return l.number()
	case isIdentStart(c):
		return l.ident(), nil
	default:
		l.pos++
		return token{}, fmt.Errorf("line %d: unexpected character %q", l.line, c)
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.line++
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) comment() token {
	start := l.line
	l.pos++ // '#'
	structure := false
	if l.pos < len(l.src) && l.src[l.pos] == '#' {
		structure = true
		l.pos++
	}
	begin := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}
	text := l.src[begin:l.pos]
	if !structure {
		text = strings.TrimPrefix(text, " ")
	}
	return token{kind: tokComment, text: text, structure: structure, line: start}
}

func (l *lexer) stringLit() (token, error) {
	start := l.line
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch c {
		case '"':
			l.pos++
			return token{kind: tokString, text: b.String(), line: start}, nil
		case '\\':
			l.pos++
			if l.pos >= len(l.src) {
				return token{}, fmt.Errorf("line %d: unterminated string", start)
			}
			switch e := l.src[l.pos]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(e)
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
			l.pos++
		case '\n':
			l.line++
			b.WriteByte(c)
			l.pos++
		default:
			b.WriteByte(c)
			l.pos++
		}
	}
	return token{}, fmt.Errorf("line %d: unterminated string", start)
}

func (l *lexer) number() (token, error) {
	start := l.pos
	isInt := true
	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c >= '0' && c <= '9':
			l.pos++
		case c == '.':
			isInt = false
			l.pos++
		case c == 'e' || c == 'E':
			isInt = false
			l.pos++
			if l.pos < len(l.src) && (l.src[l.pos] == '-' || l.src[l.pos] == '+') {
				l.pos++
			}
		default:
			goto done
		}
	}
done:
	lexeme := l.src[start:l.pos]
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return token{}, fmt.Errorf("line %d: bad number %q", l.line, lexeme)
	}
	return token{kind: tokNumber, num: f, isInt: isInt, line: l.line}, nil
}

func (l *lexer) ident() token {
	start := l.pos
	for l.pos < len(l.src) && isIdent(l.src[l.pos]) {
		l.pos++
	}
	return token{kind: tokIdent, text: l.src[start:l.pos], line: l.line}
}
