// Package cursor provides a rune source with exactly one rune of pushback.
package cursor

import (
	"bufio"
	stderrors "errors"
	"io"
	"unicode/utf8"
)

// rawBase is the first of 256 values, past the last Unicode code point,
// that stand for input bytes which are not valid UTF-8.
const rawBase = utf8.MaxRune + 1

// ErrPushbackFull is returned when a rune is pushed back while another one
// is still pending.
var ErrPushbackFull = stderrors.New("cursor: pushback buffer already holds a rune")

// Cursor reads runes from an input and tracks the position of the last
// rune read.
type Cursor struct {
	in *bufio.Reader

	pending    rune
	hasPending bool

	line, col         int
	prevLine, prevCol int
}

// New returns a cursor reading from r
func New(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{in: br, line: 1}
}

// Next returns the next rune. At end of input it returns io.EOF.
func (c *Cursor) Next() (rune, error) {
	var r rune
	if c.hasPending {
		r = c.pending
		c.hasPending = false
	} else {
		var (
			size int
			err  error
		)
		r, size, err = c.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if r == utf8.RuneError && size == 1 {
			if err := c.in.UnreadRune(); err != nil {
				return 0, err
			}
			b, err := c.in.ReadByte()
			if err != nil {
				return 0, err
			}
			r = rawBase + rune(b)
		}
	}
	c.prevLine, c.prevCol = c.line, c.col
	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return r, nil
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, error) {
	r, err := c.Next()
	if err != nil {
		return 0, err
	}
	return r, c.Unread(r)
}

// Unread pushes r back so the next call to Next returns it. Only one rune
// may be pending at a time.
func (c *Cursor) Unread(r rune) error {
	if c.hasPending {
		return ErrPushbackFull
	}
	c.pending = r
	c.hasPending = true
	c.line, c.col = c.prevLine, c.prevCol
	return nil
}

// Pending reports whether a pushed back rune is waiting to be read
func (c *Cursor) Pending() bool {
	return c.hasPending
}

// Position returns the 1-based line and column of the last rune read
func (c *Cursor) Position() (line, col int) {
	return c.line, c.col
}

// RawByte reports the input byte r stands for when Next met a byte that is
// not valid UTF-8.
func RawByte(r rune) (byte, bool) {
	if r < rawBase || r > rawBase+0xFF {
		return 0, false
	}
	return byte(r - rawBase), true
}

// String returns the input text of r: its UTF-8 encoding, or the raw byte
// it was read from.
func String(r rune) string {
	if b, ok := RawByte(r); ok {
		return string([]byte{b})
	}
	return string(r)
}
