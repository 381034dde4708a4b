package hilite

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Highlight source files as HTML pages"
	MsgPreviewShort    = "Show a highlighted file in the terminal"
	MsgStylesShort     = "List the style keys and their values"
	MsgKeywordsShort   = "List the keywords by category"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgConfigShort     = "Show where the configuration was loaded from"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgWrote         = "Wrote [path]%s[/path] [muted](%d tokens)[/muted]"
	MsgSkipped       = "[warning]Skipped[/warning] [path]%s[/path], not overwritten"
	MsgFailed        = "[error]Failed[/error] [path]%s[/path]: %v"
	MsgIndexWritten  = "Index [path]%s[/path]"
	MsgConfigWritten = "Wrote configuration to [path]%s[/path]"
	MsgManWritten    = "Wrote man pages to [path]%s[/path]"
	MsgNoSources     = "Built-in defaults only"
	MsgUnknownKey    = "[warning]Unknown style key[/warning] [key]%s[/key]"

	// Error messages
	MsgErrNoInput     = "no input files"
	MsgErrSomeFailed  = "%d of %d files failed"
	MsgErrOpenPreview = "failed to open %s"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Configuration file, read after the user and project files"
	MsgFlagCSS       = "Stylesheet linked from the pages"
	MsgFlagDir       = "Directory the pages are written to"
	MsgFlagOutput    = "Output file name (single input only)"
	MsgFlagForce     = "Overwrite existing pages without asking"
	MsgFlagExt       = "Extension tried when an input name has none"
	MsgFlagNoDocs    = "Treat doc comments as ordinary comments"
	MsgFlagAnnotate  = "Annotation character flagging comments"
	MsgFlagGzip      = "Also write a gzip compressed copy of each page"
	MsgFlagTitle     = "Title of the index page"
	MsgFlagLocale    = "Locale of the generation date (en_US, fr_FR, ...)"
	MsgFlagWrite     = "Write the configuration to hilite.toml instead of stdout"
	MsgFlagResolved  = "Print every style key and option with its value in effect"
	MsgFlagFormatter = "Terminal formatter (terminal16m, terminal256, terminal16, noop)"
	MsgFlagManDir    = "Directory the man pages are written to; stdout when empty"
)

//go:embed msgs/*.txt
var msgFiles embed.FS

//go:embed topics/*.md
var topicFiles embed.FS

func readMsg(name string) string {
	data, err := msgFiles.ReadFile("msgs/" + name + ".txt")
	if err != nil {
		panic("missing message " + name)
	}
	return string(data)
}

func msg(name string) string {
	return strings.TrimSpace(readMsg(name))
}

// examples keep their indentation
func example(name string) string {
	return strings.TrimRight(readMsg(name), "\n")
}

// Long messages from embedded files
var (
	MsgRootLong       = msg("root-long")
	MsgRootExample    = example("root-example")
	MsgPreviewLong    = msg("preview-long")
	MsgStylesLong     = msg("styles-long")
	MsgGenConfigLong  = msg("genconfig-long")
	MsgCompletionLong = msg("completion-long")
	MsgUsageTemplate  = msg("usage-template")
)
