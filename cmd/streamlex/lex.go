package main

import (
	"fmt"
	"strings"

	"github.com/coregx/streamlex"
	"github.com/coregx/streamlex/internal/punct"
	"github.com/coregx/streamlex/pattern"
	"github.com/coregx/streamlex/predicate"
)

type kind int

const (
	kindIdent kind = iota
	kindNumber
	kindString
	kindPunct
	kindComment
	kindOther
)

var kindNames = [...]string{
	kindIdent:   "ident",
	kindNumber:  "number",
	kindString:  "string",
	kindPunct:   "punct",
	kindComment: "comment",
	kindOther:   "other",
}

func (k kind) String() string { return kindNames[k] }

type token struct {
	Kind   kind
	Offset int64
	Text   string
}

var (
	identStart   = predicate.AnyOf(predicate.XIDStart, predicate.Chars("_"))
	numberChars  = predicate.Chars("0123456789._")
	commentStart = pattern.Strings{"//", "/*"}
	commentEnd   = pattern.String("*/")
	stringEnd    = pattern.Runes{'"', '\\'}
)

// lexError reports malformed input at an absolute offset.
type lexError struct {
	Offset int64
	Msg    string
}

func (e *lexError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// lex splits C-like source into tokens, skipping whitespace.
func lex(r *streamlex.Reader, emit func(token) error) error {
	for {
		if _, err := r.TakeWhile(predicate.Whitespace); err != nil {
			return err
		}
		if r.Exhausted() {
			return nil
		}
		tok, err := lexOne(r)
		if err != nil {
			return err
		}
		if err := emit(tok); err != nil {
			return err
		}
		r.Compact()
	}
}

func lexOne(r *streamlex.Reader) (token, error) {
	tok := token{Offset: r.Consumed()}

	which, ok, err := r.Matches(commentStart)
	if err != nil {
		return tok, err
	}
	if ok {
		tok.Kind = kindComment
		if which == 0 {
			body, err := r.TakeWhile(notNewline)
			if err != nil {
				return tok, err
			}
			tok.Text = "//" + strings.TrimSuffix(body.Span.String(), "\r")
			return tok, nil
		}
		body, err := r.Until(commentEnd)
		if err != nil {
			return tok, err
		}
		if !body.OK {
			return tok, &lexError{Offset: tok.Offset, Msg: "unterminated block comment"}
		}
		tok.Text = "/*" + body.Span.String() + "*/"
		return tok, nil
	}

	if which, ok, err := r.Matches(punct.PunctPattern{}); err != nil {
		return tok, err
	} else if ok {
		tok.Kind, tok.Text = kindPunct, punct.Punct(which).Text()
		return tok, nil
	}

	ch, ok, err := r.Peek()
	if err != nil || !ok {
		return tok, err
	}
	switch {
	case ch == '"':
		return lexString(r, tok)
	case identStart.Accept(ch):
		word, err := r.TakeWhile(predicate.XIDContinue)
		tok.Kind, tok.Text = kindIdent, word.Span.Clone()
		return tok, err
	case predicate.Digit.Accept(ch):
		num, err := r.TakeWhile(numberChars)
		tok.Kind, tok.Text = kindNumber, num.Span.Clone()
		return tok, err
	}

	if _, _, err := r.Next(); err != nil {
		return tok, err
	}
	tok.Kind, tok.Text = kindOther, string(ch)
	return tok, nil
}

// lexString reads a double-quoted literal with backslash escapes.
func lexString(r *streamlex.Reader, tok token) (token, error) {
	tok.Kind = kindString
	var sb strings.Builder
	sb.WriteByte('"')
	r.Consume(1)
	for {
		f, err := r.Until(stringEnd)
		if err != nil {
			return tok, err
		}
		if !f.OK {
			return tok, &lexError{Offset: tok.Offset, Msg: "unterminated string"}
		}
		sb.WriteString(f.Span.String())
		if f.Which == 0 {
			sb.WriteByte('"')
			tok.Text = sb.String()
			return tok, nil
		}
		sb.WriteByte('\\')
		esc, ok, err := r.Next()
		if err != nil {
			return tok, err
		}
		if !ok {
			return tok, &lexError{Offset: tok.Offset, Msg: "unterminated string"}
		}
		sb.WriteRune(esc)
	}
}
