// Package docformat renders documentation comments (/** ... */) and their
// @tag metadata as HTML.
//
// The formatter reads straight from the scanner's cursor and writes
// straight to the output sink. The comment body is not HTML escaped: doc
// comments are expected to carry HTML already.
package docformat

import (
	"io"
	"strings"
	"unicode"

	"github.com/arthur-debert/hilite/pkg/cursor"
	"github.com/arthur-debert/hilite/pkg/errors"
)

// Options configures a Formatter
type Options struct {
	// Background and TextColor are the doc block colours; empty means unstyled
	Background string
	TextColor  string

	// Labels maps tag names to display labels; nil means StandardLabels
	Labels map[string]string
}

// Formatter renders doc comments. It holds no per-comment state and can
// be shared.
type Formatter struct {
	opts Options
}

// New creates a formatter
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format consumes a doc comment body from c, starting just after the
// opening "/**", and writes it to w. It returns once the closing "*/" has
// been consumed.
func (f *Formatter) Format(c *cursor.Cursor, w io.Writer) error {
	s := &docState{
		c:    c,
		w:    &errWriter{w: w},
		tags: NewTagTable(),
	}

	s.w.str("\n</pre>\n<table class=\"doc-comment\"" + attr("background-color", f.opts.Background) +
		" width=\"90%\" border=\"1\" cellpadding=\"10\">\n<tr><td><span" +
		attr("color", f.opts.TextColor) + ">\n")

	if err := s.body(); err != nil {
		return err
	}

	if s.tags.Len() > 0 {
		f.writeTags(s.w, s.tags)
	}

	s.w.str("\n</span></td></tr>\n</table>\n<pre>\n")
	if s.w.err != nil {
		return errors.Wrap(s.w.err, errors.ErrFileWrite, "failed to write doc comment")
	}
	return nil
}

func attr(prop, value string) string {
	if value == "" {
		return ""
	}
	return ` style="` + prop + ":" + value + `"`
}

type docState struct {
	c    *cursor.Cursor
	w    *errWriter
	tags *TagTable
}

func (s *docState) next() (rune, error) {
	r, err := s.c.Next()
	if err == io.EOF {
		line, col := s.c.Position()
		return 0, errors.New(errors.ErrUnterminatedComment, "end of input inside doc comment").
			WithDetail("line", line).
			WithDetail("column", col)
	}
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrRead, "failed to read input")
	}
	return r, nil
}

func (s *docState) unread(r rune) error {
	if err := s.c.Unread(r); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "doc comment pushback")
	}
	return nil
}

// body copies the comment text through, skipping margin stars and
// collecting tags, until the closing "*/".
func (s *docState) body() error {
	for {
		r, err := s.next()
		if err != nil {
			return err
		}

		for r == '*' {
			if r, err = s.next(); err != nil {
				return err
			}
			if r == '/' {
				return nil
			}
		}

		switch r {
		case '\\':
			if r, err = s.next(); err != nil {
				return err
			}
			s.w.rune(r)
		case '@':
			done, err := s.at()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		default:
			s.w.rune(r)
		}
	}
}

// at handles an '@' in the comment body. It reports whether the comment
// ended while reading a tag definition.
func (s *docState) at() (bool, error) {
	r, err := s.next()
	if err != nil {
		return false, err
	}
	if unicode.IsLetter(r) {
		return s.tag(r)
	}

	s.w.rune('@')
	if r == '*' {
		// keep a closing "*/" visible to body
		return false, s.unread(r)
	}
	s.w.rune(r)
	return false, nil
}

// tag reads a tag name starting with first and then its definition.
func (s *docState) tag(first rune) (bool, error) {
	var name strings.Builder
	name.WriteRune(first)

	r, err := s.next()
	for ; err == nil && unicode.IsLetter(r); r, err = s.next() {
		name.WriteRune(r)
	}
	if err != nil {
		return false, err
	}
	s.tags.Register(name.String())

	if r == '\n' {
		return false, nil
	}
	if !unicode.IsSpace(r) {
		if err := s.unread(r); err != nil {
			return false, err
		}
	}
	return s.definition(name.String(), r)
}

// definition reads the rest of the line as one definition of name. A "*/"
// on the line ends both the definition and the comment. An '@' after
// whitespace followed by a letter starts the next tag.
func (s *docState) definition(name string, prev rune) (bool, error) {
	var def strings.Builder
	record := func() {
		if d := strings.TrimSpace(def.String()); d != "" {
			s.tags.Add(name, d)
		}
	}

	for {
		r, err := s.next()
		if err != nil {
			return false, err
		}

		switch {
		case r == '\n':
			record()
			return false, nil

		case r == '*':
			following, err := s.next()
			if err != nil {
				return false, err
			}
			if following == '/' {
				record()
				return true, nil
			}
			if err := s.unread(following); err != nil {
				return false, err
			}
			def.WriteString(cursor.String(r))

		case r == '@' && unicode.IsSpace(prev):
			following, err := s.next()
			if err != nil {
				return false, err
			}
			if unicode.IsLetter(following) {
				record()
				return s.tag(following)
			}
			if err := s.unread(following); err != nil {
				return false, err
			}
			def.WriteString(cursor.String(r))

		default:
			def.WriteString(cursor.String(r))
		}
		prev = r
	}
}

func (f *Formatter) writeTags(w *errWriter, tags *TagTable) {
	w.str("\n<p><table class=\"doc-tags\">")

	for _, tag := range tags.Names() {
		w.str("\n<tr><td valign=\"top\"><strong>" + Label(f.opts.Labels, tag) + "</strong></td><td>&nbsp;</td>")

		defs := tags.Definitions(tag)
		if len(defs) == 0 {
			w.str("</tr>")
			continue
		}

		param := strings.EqualFold(tag, "param")
		w.str("\n<td>")
		if param {
			w.str("<table>\n")
		}
		for i, def := range defs {
			if i > 0 {
				if param {
					w.str("\n")
				} else {
					w.str(", ")
				}
			}
			w.str(f.formatDefinition(tag, def))
		}
		if param {
			w.str("\n</table>")
		}
		w.str("\n</td></tr>")
	}

	w.str("\n</table>\n")
}

func (f *Formatter) formatDefinition(tag, def string) string {
	switch {
	case strings.EqualFold(tag, "param"):
		term, desc := splitParam(def)
		color := attr("color", f.opts.TextColor)
		return "<tr><td valign=\"baseline\"><span" + color + "><tt>" + term +
			"&nbsp;</tt></span></td><td><span" + color + ">- " + desc + "</span></td></tr>"
	case strings.EqualFold(tag, "see"):
		return seeLink(def)
	}
	return def
}

// errWriter remembers the first write error and drops later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) str(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *errWriter) rune(r rune) {
	e.str(cursor.String(r))
}
