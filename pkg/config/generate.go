package config

import (
	"strings"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// DefaultContent returns the embedded default configuration
func DefaultContent() string {
	return string(defaultConfig)
}

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "",
			strings.HasPrefix(trimmed, "#"),
			strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

type resolvedFile struct {
	Options Options `toml:"options"`
}

// DumpResolved renders the effective configuration as TOML: every style key
// with its resolved value ("*" when unstyled) followed by the options.
func DumpResolved(cfg *Config) ([]byte, error) {
	styles, err := toml.Marshal(cfg.Palette().Values())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode style table")
	}
	options, err := toml.Marshal(resolvedFile{Options: cfg.Options})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode options")
	}

	var b strings.Builder
	b.WriteString("# Effective hilite configuration\n")
	for _, src := range cfg.Sources {
		b.WriteString("# loaded: " + src + "\n")
	}
	b.WriteString("\n")
	b.Write(styles)
	b.WriteString("\n")
	b.Write(options)
	return []byte(b.String()), nil
}
