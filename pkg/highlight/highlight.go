// Package highlight drives the scanner and renderer over whole documents
// and files.
package highlight

import (
	"bufio"
	"io"
	"time"

	"github.com/arthur-debert/hilite/pkg/docformat"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/keywords"
	"github.com/arthur-debert/hilite/pkg/render"
	"github.com/arthur-debert/hilite/pkg/scanner"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/arthur-debert/hilite/pkg/token"
)

// Options configures highlighting. The zero value highlights Java with
// the default palette and no doc comment formatting.
type Options struct {
	Palette  *style.Palette
	Keywords *keywords.Table

	// AnnotateChar is the annotation sentinel; zero disables annotations
	AnnotateChar rune
	FormatDocs   bool
	// Labels overrides the doc tag labels
	Labels map[string]string

	Stylesheet string
	Locale     string
	// Clock stamps the postamble; nil means time.Now
	Clock func() time.Time

	// Gzip also writes a precompressed copy of every output file
	Gzip bool
}

func (o Options) palette() *style.Palette {
	if o.Palette == nil {
		return style.Resolve(nil)
	}
	return o.Palette
}

func (o Options) now() time.Time {
	if o.Clock == nil {
		return time.Now()
	}
	return o.Clock()
}

// Stats counts the tokens of one document
type Stats struct {
	Tokens      int
	DocComments int
	Annotations int
	ByKind      map[token.Kind]int
}

// Highlight writes the highlighted HTML document for src to dst. doc names
// the document; its Stylesheet, Locale and Now are filled from opts when
// empty.
func Highlight(src io.Reader, dst io.Writer, doc render.Document, opts Options) (*Stats, error) {
	palette := opts.palette()
	r := render.New(palette)

	if doc.Stylesheet == "" {
		doc.Stylesheet = opts.Stylesheet
	}
	if doc.Locale == "" {
		doc.Locale = opts.Locale
	}
	if doc.Now.IsZero() {
		doc.Now = opts.now()
	}

	out := bufio.NewWriter(dst)
	if err := r.Preamble(out, doc); err != nil {
		return nil, err
	}

	s := scanner.New(src, out, scanner.Options{
		Keywords:     opts.Keywords,
		AnnotateChar: opts.AnnotateChar,
		AnnotateTag:  palette.AnnotateTagMarkup(),
		FormatDocs:   opts.FormatDocs,
		Doc: docformat.New(docformat.Options{
			Background: palette.DocBackground,
			TextColor:  palette.DocText,
			Labels:     opts.Labels,
		}),
	})

	stats := &Stats{ByKind: make(map[token.Kind]int)}
	for {
		tok, err := s.Next()
		if err != nil {
			// keep what was produced so far visible to the caller's sink
			_ = out.Flush()
			return stats, err
		}
		if tok.Kind == token.EOF {
			break
		}

		stats.Tokens++
		stats.ByKind[tok.Kind]++
		switch {
		case tok.Kind == token.DocComment:
			stats.DocComments++
		case tok.Annotated:
			stats.Annotations++
		}

		if _, err := out.WriteString(r.Render(tok)); err != nil {
			return stats, errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
		}
	}

	if err := r.Postamble(out, doc); err != nil {
		return stats, err
	}
	if err := out.Flush(); err != nil {
		return stats, errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return stats, nil
}
