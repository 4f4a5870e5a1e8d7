// Package ribparse reads textual RIB and drives an ri.Renderer with the
// parsed request stream.
//
// The parser is table-driven: each request name maps to a function that
// consumes the request's fixed arguments and trailing parameter list and
// invokes the matching Renderer method. Stream errors (unknown requests,
// malformed arguments) are reported through the error handler with file
// and line position, and parsing resumes at the next request, so one bad
// request never aborts a document.
package ribparse

import (
	"fmt"
	"io"

	"github.com/strattonbrazil/aqsis/internal/ri"
)

// Parser reads one RIB document and feeds a Renderer.
type Parser struct {
	lex     *lexer
	tok     token
	target  ri.Renderer
	handler ri.ErrorHandler
	file    string
	errs    int
}

// Option configures a Parser.
type Option func(*Parser)

// WithErrorHandler sets the error reporting collaborator.
// Default: a LogHandler on slog.Default.
func WithErrorHandler(h ri.ErrorHandler) Option {
	return func(p *Parser) { p.handler = h }
}

// WithFileName sets the name used in error positions.
func WithFileName(name string) Option {
	return func(p *Parser) { p.file = name }
}

// Parse reads RIB from r and invokes target for each request. It returns
// a non-nil error if reading fails or if any stream errors were reported;
// individual errors go to the error handler as they are found.
func Parse(r io.Reader, target ri.Renderer, opts ...Option) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading rib input: %w", err)
	}
	p := &Parser{
		lex:     newLexer(string(src)),
		target:  target,
		handler: &ri.LogHandler{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.advance()
	p.run()
	if p.errs > 0 {
		return fmt.Errorf("%s: %d stream errors", p.displayName(), p.errs)
	}
	return nil
}

func (p *Parser) displayName() string {
	if p.file != "" {
		return p.file
	}
	return "rib input"
}

func (p *Parser) report(code ri.ErrorCode, line int, format string, args ...any) {
	p.errs++
	err := ri.Errorf(code, format, args...)
	err.File = p.displayName()
	err.Line = line
	p.handler.HandleError(err)
}

// advance moves the lookahead past any malformed lexemes, reporting each.
func (p *Parser) advance() {
	for {
		t, err := p.lex.next()
		if err != nil {
			p.report(ri.ErrSyntax, p.lex.line, "%v", err)
			continue
		}
		p.tok = t
		return
	}
}

// skipToRequest resynchronizes after an error: discard tokens until the
// next request identifier, comment, or end of input.
func (p *Parser) skipToRequest() {
	for p.tok.kind != tokEOF && p.tok.kind != tokIdent && p.tok.kind != tokComment {
		p.advance()
	}
}

func (p *Parser) run() {
	for p.tok.kind != tokEOF {
		switch p.tok.kind {
		case tokComment:
			kind := "comment"
			if p.tok.structure {
				kind = "structure"
			}
			p.target.ArchiveRecord(kind, p.tok.text)
			p.advance()
		case tokIdent:
			name, line := p.tok.text, p.tok.line
			p.advance()
			h, ok := requests[name]
			if !ok {
				p.report(ri.ErrBadToken, line, "unrecognized request %q", name)
				p.skipToRequest()
				continue
			}
			if err := h(p); err != nil {
				p.report(ri.ErrSyntax, p.tok.line, "%s: %v", name, err)
				p.skipToRequest()
			}
		default:
			p.report(ri.ErrSyntax, p.tok.line, "unexpected token outside a request")
			p.advance()
		}
	}
}

// Argument readers. Each consumes the lookahead on success.

func (p *Parser) stringArg() (string, error) {
	if p.tok.kind != tokString {
		return "", fmt.Errorf("expected string")
	}
	s := p.tok.text
	p.advance()
	return s, nil
}

func (p *Parser) floatArg() (float64, error) {
	if p.tok.kind != tokNumber {
		return 0, fmt.Errorf("expected number")
	}
	f := p.tok.num
	p.advance()
	return f, nil
}

func (p *Parser) intArg() (int, error) {
	f, err := p.floatArg()
	return int(f), err
}

func (p *Parser) boolArg() (bool, error) {
	f, err := p.floatArg()
	return f != 0, err
}

func (p *Parser) nFloats(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		f, err := p.floatArg()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

func (p *Parser) floatArrayArg() ([]float64, error) {
	if p.tok.kind != tokLBracket {
		return nil, fmt.Errorf("expected [")
	}
	p.advance()
	var out []float64
	for p.tok.kind == tokNumber {
		out = append(out, p.tok.num)
		p.advance()
	}
	if p.tok.kind != tokRBracket {
		return nil, fmt.Errorf("expected ]")
	}
	p.advance()
	return out, nil
}

func (p *Parser) intArrayArg() ([]int, error) {
	fs, err := p.floatArrayArg()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = int(f)
	}
	return out, nil
}

func (p *Parser) stringArrayArg() ([]string, error) {
	if p.tok.kind != tokLBracket {
		return nil, fmt.Errorf("expected [")
	}
	p.advance()
	var out []string
	for p.tok.kind == tokString {
		out = append(out, p.tok.text)
		p.advance()
	}
	if p.tok.kind != tokRBracket {
		return nil, fmt.Errorf("expected ]")
	}
	p.advance()
	return out, nil
}

// tripleArg reads three floats, bracketed or bare. Color, Opacity, and
// point arguments appear both ways in the wild.
func (p *Parser) tripleArg() ([3]float64, error) {
	var out [3]float64
	if p.tok.kind == tokLBracket {
		fs, err := p.floatArrayArg()
		if err != nil {
			return out, err
		}
		if len(fs) != 3 {
			return out, fmt.Errorf("expected 3 values, got %d", len(fs))
		}
		copy(out[:], fs)
		return out, nil
	}
	fs, err := p.nFloats(3)
	if err != nil {
		return out, err
	}
	copy(out[:], fs)
	return out, nil
}

func (p *Parser) matrixArg() (ri.Matrix, error) {
	var m ri.Matrix
	fs, err := p.floatArrayArg()
	if err != nil {
		return m, err
	}
	if len(fs) != 16 {
		return m, fmt.Errorf("matrix needs 16 values, got %d", len(fs))
	}
	copy(m[:], fs)
	return m, nil
}

func (p *Parser) boundArg() (ri.Bound, error) {
	var b ri.Bound
	var fs []float64
	var err error
	if p.tok.kind == tokLBracket {
		fs, err = p.floatArrayArg()
	} else {
		fs, err = p.nFloats(6)
	}
	if err != nil {
		return b, err
	}
	if len(fs) != 6 {
		return b, fmt.Errorf("bound needs 6 values, got %d", len(fs))
	}
	copy(b[:], fs)
	return b, nil
}

// basisArg accepts a standard basis name or a 16-element matrix.
func (p *Parser) basisArg() (ri.Basis, error) {
	if p.tok.kind == tokString {
		b, ok := ri.BasisForName(p.tok.text)
		if !ok {
			return ri.Basis{}, fmt.Errorf("unknown basis %q", p.tok.text)
		}
		p.advance()
		return b, nil
	}
	var b ri.Basis
	fs, err := p.floatArrayArg()
	if err != nil {
		return b, err
	}
	if len(fs) != 16 {
		return b, fmt.Errorf("basis needs 16 values, got %d", len(fs))
	}
	copy(b[:], fs)
	return b, nil
}

// paramList reads trailing "decl" value pairs until the next request.
// Numeric values become IntArray only when every element is written as an
// integer; a single float anywhere makes the whole value a FloatArray.
// This follows the lexical form rather than the declaration, which is all
// a stream-rewriting tool needs.
func (p *Parser) paramList() (ri.ParamList, error) {
	var pl ri.ParamList
	for p.tok.kind == tokString {
		decl := p.tok.text
		p.advance()
		val, err := p.paramValue()
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", decl, err)
		}
		pl = append(pl, ri.Param{Decl: decl, Value: val})
	}
	return pl, nil
}

func (p *Parser) paramValue() (ri.Value, error) {
	switch p.tok.kind {
	case tokString:
		s := p.tok.text
		p.advance()
		return ri.StringArray{s}, nil
	case tokNumber:
		t := p.tok
		p.advance()
		if t.isInt {
			return ri.IntArray{int(t.num)}, nil
		}
		return ri.FloatArray{t.num}, nil
	case tokLBracket:
		p.advance()
		return p.bracketedValue()
	default:
		return nil, fmt.Errorf("expected value")
	}
}

func (p *Parser) bracketedValue() (ri.Value, error) {
	if p.tok.kind == tokString {
		var out ri.StringArray
		for p.tok.kind == tokString {
			out = append(out, p.tok.text)
			p.advance()
		}
		if p.tok.kind != tokRBracket {
			return nil, fmt.Errorf("expected ]")
		}
		p.advance()
		return out, nil
	}
	var nums []float64
	allInt := true
	for p.tok.kind == tokNumber {
		nums = append(nums, p.tok.num)
		allInt = allInt && p.tok.isInt
		p.advance()
	}
	if p.tok.kind != tokRBracket {
		return nil, fmt.Errorf("expected ]")
	}
	p.advance()
	if allInt {
		out := make(ri.IntArray, len(nums))
		for i, f := range nums {
			out[i] = int(f)
		}
		return out, nil
	}
	return ri.FloatArray(nums), nil
}
