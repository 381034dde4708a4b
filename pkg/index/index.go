// Package index writes the page linking the files of a highlighting batch.
package index

import (
	"io"
	"sort"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/beevik/etree"
)

// DefaultTitle is used when a page has no title
const DefaultTitle = "Highlighted sources"

// Entry is one linked file
type Entry struct {
	// Name is the label, normally the source file name
	Name string
	// Href is the link target relative to the index page
	Href string
}

// Page is an index page
type Page struct {
	Title   string
	Entries []Entry
}

// Build returns the page as an XHTML-compatible document. Entries are
// listed by name.
func Build(page Page) *etree.Document {
	title := page.Title
	if title == "" {
		title = DefaultTitle
	}

	entries := make([]Entry, len(page.Entries))
	copy(entries, page.Entries)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	doc := etree.NewDocument()
	doc.CreateDirective("DOCTYPE html")

	html := doc.CreateElement("html")
	head := html.CreateElement("head")
	head.CreateElement("meta").CreateAttr("charset", "utf-8")
	head.CreateElement("title").SetText(title)

	body := html.CreateElement("body")
	body.CreateElement("h1").SetText(title)

	list := body.CreateElement("ul")
	list.CreateAttr("class", "sources")
	for _, e := range entries {
		a := list.CreateElement("li").CreateElement("a")
		a.CreateAttr("href", e.Href)
		a.CreateElement("tt").SetText(e.Name)
	}

	doc.Indent(2)
	return doc
}

// Write renders page to w
func Write(w io.Writer, page Page) error {
	if _, err := Build(page).WriteTo(w); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write index page")
	}
	return nil
}
