package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/paths"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/magiconair/properties"
	"github.com/spf13/afero"
)

//go:embed embedded/hilite.toml
var defaultConfig []byte

// EnvPrefix prefixes the environment variables read as configuration
const EnvPrefix = "HILITE_"

const optionsKey = "options"

// Options are the non-style settings
type Options struct {
	AnnotateChar string `koanf:"annotate_char" toml:"annotate_char"`
	FormatDocs   bool   `koanf:"format_docs" toml:"format_docs"`
	Stylesheet   string `koanf:"stylesheet" toml:"stylesheet"`
	Extension    string `koanf:"extension" toml:"extension"`
	Locale       string `koanf:"locale" toml:"locale"`
	Gzip         bool   `koanf:"gzip" toml:"gzip"`
}

// AnnotateRune returns the annotation sentinel, zero when disabled
func (o Options) AnnotateRune() rune {
	r, _ := utf8.DecodeRuneInString(o.AnnotateChar)
	if r == utf8.RuneError {
		return 0
	}
	return r
}

// Config is the loaded configuration
type Config struct {
	Options Options
	// Style holds every style key that was set, upper-cased
	Style style.Config
	// Sources lists the files that were loaded, in load order
	Sources []string
}

// Palette resolves the style table
func (c *Config) Palette() *style.Palette {
	return style.Resolve(c.Style)
}

// UnknownKeys returns the style table keys that are not style keys
func (c *Config) UnknownKeys() []string {
	var unknown []string
	for key := range c.Style {
		if !style.IsKey(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// Sources selects the configuration files to load
type Sources struct {
	// WorkDir is searched for a project configuration file; empty means
	// the current directory
	WorkDir string
	// File is an explicitly requested configuration file
	File string
	// NoUser skips the user configuration file
	NoUser bool
	// NoEnv skips the environment
	NoEnv bool
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, fmt.Errorf("not implemented")
}

// Load reads the configuration layers in order, later layers winning:
// embedded defaults, the user file, the project file, the explicit file
// and the environment.
func Load(src Sources) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	cfg := &Config{}

	// 1. Embedded defaults
	if err := loadLayer(k, &rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config
	if !src.NoUser {
		path := paths.UserConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			cfg.Sources = append(cfg.Sources, path)
		}
	}

	// 3. Project config
	dir := src.WorkDir
	if dir == "" {
		dir = "."
	}
	if path := paths.FindProjectConfig(afero.NewOsFs(), dir); path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	// 4. Explicit config
	if src.File != "" {
		path := paths.ExpandHome(src.File)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(err, errors.ErrFileNotFound, "config file not found").
				WithDetail("path", path)
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	// 5. Environment
	if !src.NoEnv {
		if err := loadLayer(k, env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg.Options,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf(optionsKey, &cfg.Options, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid options")
	}
	if utf8.RuneCountInString(cfg.Options.AnnotateChar) > 1 {
		return nil, errors.Newf(errors.ErrConfigParse, "annotate_char must be a single character, got %q", cfg.Options.AnnotateChar)
	}

	cfg.Style = style.Config{}
	for key, value := range k.Raw() {
		if key == optionsKey {
			continue
		}
		if _, isMap := value.(map[string]interface{}); isMap {
			logger.Warn().Str("table", key).Msg("Ignoring unknown configuration table")
			continue
		}
		cfg.Style[key] = fmt.Sprint(value)
	}

	for _, key := range cfg.UnknownKeys() {
		logger.Warn().Str("key", key).Msg("Unknown style key")
	}
	logger.Debug().Strs("sources", cfg.Sources).Int("styleKeys", len(cfg.Style)).Msg("Configuration loaded")

	return cfg, nil
}

// loadFile loads one configuration file, choosing the parser from its name
func loadFile(k *koanf.Koanf, path string) error {
	var err error
	switch {
	case filepath.Base(path) == paths.LegacyConfigFile || filepath.Ext(path) == ".properties":
		err = loadProperties(k, path)
	case filepath.Ext(path) == ".yaml" || filepath.Ext(path) == ".yml":
		err = loadLayer(k, file.Provider(path), yaml.Parser())
	default:
		err = loadLayer(k, file.Provider(path), toml.Parser())
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to load config file").
			WithDetail("path", path)
	}
	return nil
}

// loadProperties reads a Java properties file such as Hilite.Configuration
func loadProperties(k *koanf.Koanf, path string) error {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return err
	}
	values := make(map[string]interface{}, p.Len())
	for key, value := range p.Map() {
		values[key] = value
	}
	return loadLayer(k, confmap.Provider(values, "."), nil)
}

// loadLayer reads a layer into a scratch instance, normalizes its keys and
// merges it into k. Style keys are upper-cased and option keys lower-cased
// so that spelling differences between files do not create duplicates.
func loadLayer(k *koanf.Koanf, provider koanf.Provider, parser koanf.Parser) error {
	tmp := koanf.New(".")
	if err := tmp.Load(provider, parser); err != nil {
		return err
	}
	return k.Load(confmap.Provider(normalize(tmp.Raw()), "."), nil)
}

func normalize(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		if strings.EqualFold(key, optionsKey) {
			if opts, ok := value.(map[string]interface{}); ok {
				lowered := make(map[string]interface{}, len(opts))
				for name, v := range opts {
					lowered[strings.ToLower(name)] = v
				}
				out[optionsKey] = lowered
				continue
			}
		}
		if _, isMap := value.(map[string]interface{}); isMap {
			out[key] = value
			continue
		}
		out[strings.ToUpper(key)] = value
	}
	return out
}

// envKey maps HILITE_KEYWORD_COLOR to KEYWORD_COLOR and
// HILITE_OPTIONS_FORMAT_DOCS to options.format_docs. Other variables are
// skipped.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if style.IsKey(key) {
		return key
	}
	if name, ok := strings.CutPrefix(key, "OPTIONS_"); ok && name != "" {
		return optionsKey + "." + strings.ToLower(name)
	}
	return ""
}
