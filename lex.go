package latexcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// num is the value of a tokenNum.
	num float64
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a real number.
	tokenNum
	// tokenIdent is a constant, variable, or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token
//go:generate go mod tidy

// Operators contains the bytes which are considered to be operators. A ^
// immediately followed by + or - lexes as the single operator ^+ or ^-.
const Operators = "+-*/^"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Runes that cannot begin a token,
// including whitespace and backslashes, are skipped. At the end of the input,
// the result is an EOF token.
func (l *lexer) next() (lexToken, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lexToken{kind: tokenEOF, pos: l.rune + 1}, nil
			}
			return lexToken{pos: l.rune}, err
		}
		tok := lexToken{pos: l.rune}
		switch {
		case r < 0x80 && isDigit(byte(r)), r == '.':
			l.unreadRune()
			if err := l.scanRun(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return tok, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			tok.kind = tokenNum
			tok.num = v
			return tok, nil
		case r < 0x80 && isLetter(byte(r)):
			l.unreadRune()
			if err := l.scanRun(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == '^':
			tok.kind = tokenOp
			tok.text = "^"
			s, err := l.readRune()
			switch {
			case err == nil && (s == '+' || s == '-'):
				tok.text += string(s)
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return tok, err
			}
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case r < 0x80 && isOperator(byte(r)):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		}
	}
}

// scanRun scans a maximal run of ASCII letters, digits, and dots into the
// lexer's buffer.
func (l *lexer) scanRun() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides run scanning before
				// calling scanRun, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if r >= 0x80 || !isLetter(byte(r)) && !isDigit(byte(r)) && r != '.' {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// tokens scans all tokens of a normalized formula, excluding the final EOF.
func tokens(src string) ([]lexToken, error) {
	scan := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
