// Package scanner turns source text into a stream of highlighted tokens.
//
// The scanner reads one rune at a time with a single rune of pushback.
// It has two output side effects: a '/' that does not open a comment is
// written straight to the sink, and documentation comments are handed to
// the doc formatter which writes to the sink itself.
package scanner

import (
	"io"
	"strings"

	"github.com/arthur-debert/hilite/pkg/cursor"
	"github.com/arthur-debert/hilite/pkg/docformat"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/keywords"
	"github.com/arthur-debert/hilite/pkg/token"
)

// Options configures a Scanner
type Options struct {
	// Keywords is the reserved word table; nil means keywords.Java()
	Keywords *keywords.Table

	// AnnotateChar flags a comment as an annotation when it is the first
	// character after the comment opening. Zero disables annotations.
	AnnotateChar rune

	// AnnotateTag is the markup spliced into annotation comments in place
	// of the sentinel
	AnnotateTag string

	// FormatDocs enables doc comment formatting; when false /** opens an
	// ordinary block comment
	FormatDocs bool

	// Doc renders doc comments; nil means a formatter with default options
	Doc *docformat.Formatter
}

// Scanner produces tokens from a source
type Scanner struct {
	c    *cursor.Cursor
	sink io.Writer
	opts Options

	annotate bool
	done     bool
}

// New creates a scanner reading src. sink receives the output the scanner
// writes directly.
func New(src io.Reader, sink io.Writer, opts Options) *Scanner {
	if opts.Keywords == nil {
		opts.Keywords = keywords.Java()
	}
	if opts.Doc == nil {
		opts.Doc = docformat.New(docformat.Options{})
	}
	return &Scanner{
		c:    cursor.New(src),
		sink: sink,
		opts: opts,
	}
}

// Next returns the next token. After the EOF token every call returns EOF
// again. Unterminated strings and block comments are reported as errors
// with code UNTERMINATED_STRING or UNTERMINATED_COMMENT.
func (s *Scanner) Next() (token.Token, error) {
	for {
		if s.done {
			return token.Token{Kind: token.EOF}, nil
		}

		r, err := s.c.Next()
		if err == io.EOF {
			s.done = true
			return token.Token{Kind: token.EOF}, nil
		}
		if err != nil {
			return token.Token{}, s.readErr(err)
		}

		switch {
		case keywords.IsIdentifierStart(r):
			return s.identifier(r)

		case keywords.IsDigit(r):
			return s.number(r)

		case r == '/':
			tok, ok, err := s.slash()
			if err != nil || ok {
				return tok, err
			}
			// a lone '/' was written to the sink; scan on

		case keywords.IsQuote(r):
			return s.quoted(r)

		case keywords.IsBracket(r):
			return token.Token{Kind: token.Bracket, Text: string(r)}, nil

		default:
			return token.Token{Kind: token.PlainChar, Text: escape(r)}, nil
		}
	}
}

func (s *Scanner) identifier(first rune) (token.Token, error) {
	var word strings.Builder
	word.WriteRune(first)

	for {
		r, err := s.c.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token.Token{}, s.readErr(err)
		}
		if !keywords.IsIdentifierPart(r) {
			if err := s.unread(r); err != nil {
				return token.Token{}, err
			}
			break
		}
		word.WriteRune(r)
	}

	return s.classify(word.String()), nil
}

// classify applies the identifier precedence: constant-like, class-like,
// keyword, plain text.
func (s *Scanner) classify(word string) token.Token {
	switch {
	case keywords.IsConstantLike(word):
		return token.Token{Kind: token.ConstantName, Text: word}
	case keywords.IsClassLike(word):
		return token.Token{Kind: token.ClassName, Text: word}
	}
	if cat, ok := s.opts.Keywords.Lookup(word); ok {
		return token.Token{Kind: token.Keyword, Text: word, Category: cat}
	}
	return token.Token{Kind: token.PlainText, Text: word}
}

func (s *Scanner) number(first rune) (token.Token, error) {
	var digits strings.Builder
	digits.WriteRune(first)

	for {
		r, err := s.c.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token.Token{}, s.readErr(err)
		}
		if !keywords.IsDigit(r) {
			if err := s.unread(r); err != nil {
				return token.Token{}, err
			}
			break
		}
		digits.WriteRune(r)
	}

	return token.Token{Kind: token.Number, Text: digits.String()}, nil
}

// slash handles a '/' that may open a comment. ok is false when the '/'
// was plain and has been written to the sink.
func (s *Scanner) slash() (tok token.Token, ok bool, err error) {
	r, err := s.c.Next()
	if err != nil && err != io.EOF {
		return tok, false, s.readErr(err)
	}

	switch {
	case err == nil && r == '/':
		tok, err = s.lineComment()
		return tok, true, err
	case err == nil && r == '*':
		tok, err = s.blockComment()
		return tok, true, err
	}

	if _, werr := io.WriteString(s.sink, "/"); werr != nil {
		return tok, false, errors.Wrap(werr, errors.ErrFileWrite, "failed to write output")
	}
	if err == nil {
		if err := s.unread(r); err != nil {
			return tok, false, err
		}
	}
	return tok, false, nil
}

// checkAnnotate looks at the first content character of a comment. Leading
// blanks are copied to text; if the next rune is the annotation sentinel it
// is consumed and the annotation tag is spliced in its place.
func (s *Scanner) checkAnnotate(text *strings.Builder) error {
	s.annotate = false

	for {
		r, err := s.c.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return s.readErr(err)
		}

		switch {
		case r == ' ' || r == '\t':
			text.WriteRune(r)
		case s.opts.AnnotateChar != 0 && r == s.opts.AnnotateChar:
			s.annotate = true
			text.WriteString(s.opts.AnnotateTag)
			return nil
		default:
			return s.unread(r)
		}
	}
}

func (s *Scanner) lineComment() (token.Token, error) {
	var text strings.Builder
	text.WriteString("//")

	if err := s.checkAnnotate(&text); err != nil {
		return token.Token{}, err
	}

	for {
		r, err := s.c.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return token.Token{}, s.readErr(err)
		}
		text.WriteString(escape(r))
		if r == '\n' {
			break
		}
	}

	return token.Token{Kind: token.Comment, Text: text.String(), Annotated: s.annotate}, nil
}

func (s *Scanner) blockComment() (token.Token, error) {
	if s.opts.FormatDocs {
		tok, doc, err := s.docComment()
		if err != nil || doc {
			return tok, err
		}
	}

	var text strings.Builder
	text.WriteString("/*")

	if err := s.checkAnnotate(&text); err != nil {
		return token.Token{}, err
	}

	for {
		r, err := s.mustNext(errors.ErrUnterminatedComment, "end of input inside comment")
		if err != nil {
			return token.Token{}, err
		}
		text.WriteString(escape(r))
		if r != '*' {
			continue
		}

		following, err := s.mustNext(errors.ErrUnterminatedComment, "end of input inside comment")
		if err != nil {
			return token.Token{}, err
		}
		if following == '/' {
			text.WriteByte('/')
			break
		}
		if err := s.unread(following); err != nil {
			return token.Token{}, err
		}
	}

	return token.Token{Kind: token.Comment, Text: text.String(), Annotated: s.annotate}, nil
}

// docComment runs the doc formatter if the block comment just opened is a
// doc comment. doc is false, with the cursor unchanged, when the next rune
// is not a '*'. The empty comment "/**/" is returned as an ordinary
// comment token.
func (s *Scanner) docComment() (tok token.Token, doc bool, err error) {
	r, err := s.c.Next()
	if err == io.EOF {
		return tok, false, nil
	}
	if err != nil {
		return tok, false, s.readErr(err)
	}
	if r != '*' {
		return tok, false, s.unread(r)
	}

	following, err := s.mustNext(errors.ErrUnterminatedComment, "end of input inside comment")
	if err != nil {
		return tok, true, err
	}
	s.annotate = false
	if following == '/' {
		return token.Token{Kind: token.Comment, Text: "/**/"}, true, nil
	}
	if err := s.unread(following); err != nil {
		return tok, true, err
	}

	if err := s.opts.Doc.Format(s.c, s.sink); err != nil {
		return tok, true, err
	}
	return token.Token{Kind: token.DocComment}, true, nil
}

func (s *Scanner) mustNext(code errors.ErrorCode, msg string) (rune, error) {
	r, err := s.c.Next()
	if err == io.EOF {
		line, col := s.c.Position()
		return 0, errors.New(code, msg).
			WithDetail("line", line).
			WithDetail("column", col)
	}
	if err != nil {
		return 0, s.readErr(err)
	}
	return r, nil
}

// quoted reads a string literal. A quote preceded by one backslash is
// escaped; a quote preceded by two backslashes ends the string.
func (s *Scanner) quoted(quote rune) (token.Token, error) {
	var text strings.Builder
	text.WriteRune(quote)

	var prev, prevPrev rune
	cur := quote
	for {
		prevPrev, prev = prev, cur

		r, err := s.mustNext(errors.ErrUnterminatedString, "end of input inside string")
		if err != nil {
			return token.Token{}, err
		}
		cur = r
		text.WriteString(escape(r))

		if r != quote {
			continue
		}
		if prev != '\\' || prevPrev == '\\' {
			break
		}
	}

	return token.Token{Kind: token.String, Text: text.String()}, nil
}

func (s *Scanner) unread(r rune) error {
	if err := s.c.Unread(r); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "scanner pushback")
	}
	return nil
}

func (s *Scanner) readErr(err error) error {
	return errors.Wrap(err, errors.ErrRead, "failed to read input")
}

// escape returns the HTML form of r
func escape(r rune) string {
	switch r {
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '&':
		return "&amp;"
	}
	return cursor.String(r)
}
