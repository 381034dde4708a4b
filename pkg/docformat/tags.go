package docformat

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TagTable records the @tag definitions of a single doc comment. Tag
// names keep their first-encounter order and definitions keep the order
// they were read in.
type TagTable struct {
	names []string
	defs  map[string][]string
}

// NewTagTable returns an empty table
func NewTagTable() *TagTable {
	return &TagTable{defs: make(map[string][]string)}
}

// Register makes sure name appears in the table, even without definitions
func (t *TagTable) Register(name string) {
	if _, ok := t.defs[name]; ok {
		return
	}
	t.names = append(t.names, name)
	t.defs[name] = nil
}

// Add appends a definition to name, registering it first if needed
func (t *TagTable) Add(name, def string) {
	t.Register(name)
	t.defs[name] = append(t.defs[name], def)
}

// Names returns the tag names in encounter order
func (t *TagTable) Names() []string {
	return t.names
}

// Definitions returns the definitions recorded for name
func (t *TagTable) Definitions(name string) []string {
	return t.defs[name]
}

// Len returns the number of registered tags
func (t *TagTable) Len() int {
	return len(t.names)
}

var standardLabels = map[string]string{
	"author":     "Author:",
	"deprecated": "Deprecated!",
	"exception":  "Throws:",
	"param":      "Parameters:",
	"return":     "Returns:",
	"see":        "See also:",
	"since":      "Since:",
	"throws":     "Throws:",
	"version":    "Version:",
}

// StandardLabels returns a copy of the built-in tag label table
func StandardLabels() map[string]string {
	out := make(map[string]string, len(standardLabels))
	for k, v := range standardLabels {
		out[k] = v
	}
	return out
}

// Label returns the display label of tag. Tags without a known label get
// their capitalised name followed by a colon.
func Label(labels map[string]string, tag string) string {
	if labels == nil {
		labels = standardLabels
	}
	if label, ok := labels[tag]; ok {
		return label
	}
	return cases.Title(language.Und).String(tag) + ":"
}

// splitParam splits a @param definition at its first space or tab
func splitParam(def string) (term, desc string) {
	i := strings.IndexAny(def, " \t")
	if i < 0 {
		return def, ""
	}
	return def[:i], strings.TrimSpace(def[i:])
}

// seeLink turns a @see definition into a link unless it already is one.
// "pkg.Type#member" links to pkg.Type.html#member labelled "member";
// "pkg.Type" links to pkg.Type.html labelled "Type".
func seeLink(def string) string {
	if len(def) >= 7 && strings.EqualFold(def[:7], "<a href") {
		return def
	}

	base, frag := def, ""
	if i := strings.LastIndex(def, "#"); i >= 0 {
		base, frag = def[:i], def[i:]
	}

	href := base
	if base != "" {
		href += ".html"
	}
	href += frag

	label := base[strings.LastIndex(base, ".")+1:]
	if frag != "" {
		label = frag[1:]
	}
	return `<a href="` + href + `">` + label + "</a>"
}
