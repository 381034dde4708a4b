package hilite

import (
	"fmt"
	"io"

	"github.com/arthur-debert/hilite/internal/version"
	"github.com/arthur-debert/hilite/pkg/cobrax/topics"
	"github.com/arthur-debert/hilite/pkg/config"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/highlight"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/ui/confirm"
	"github.com/arthur-debert/hilite/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
}

// highlightFlags override configuration options for one run
type highlightFlags struct {
	css      string
	dir      string
	output   string
	force    bool
	ext      string
	noDocs   bool
	annotate string
	gzip     bool
	title    string
	locale   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		global globalFlags
		flags  highlightFlags
	)

	rootCmd := &cobra.Command{
		Use:     "hilite [files...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		// inputs, not subcommand names
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(global.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New(errors.ErrInvalidInput, MsgErrNoInput)
			}
			return runHighlight(cmd, args, global, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&global.configFile, "config", "c", "", MsgFlagConfig)

	f := rootCmd.Flags()
	f.StringVar(&flags.css, "css", "", MsgFlagCSS)
	f.StringVarP(&flags.dir, "dir", "d", "", MsgFlagDir)
	f.StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	f.BoolVarP(&flags.force, "force", "f", false, MsgFlagForce)
	f.StringVar(&flags.ext, "ext", "", MsgFlagExt)
	f.BoolVar(&flags.noDocs, "no-docs", false, MsgFlagNoDocs)
	f.StringVar(&flags.annotate, "annotate", "", MsgFlagAnnotate)
	f.BoolVar(&flags.gzip, "gzip", false, MsgFlagGzip)
	f.StringVar(&flags.title, "title", "", MsgFlagTitle)
	f.StringVar(&flags.locale, "locale", "", MsgFlagLocale)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newPreviewCmd(&global))
	rootCmd.AddCommand(newStylesCmd(&global))
	rootCmd.AddCommand(newKeywordsCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newConfigCmd(&global))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	tm, err := topics.Load(topicFiles, "topics", topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		tm.Install(rootCmd)
	}

	return rootCmd
}

// loadConfig reads the configuration layers, the --config file last
func loadConfig(global globalFlags) (*config.Config, error) {
	return config.Load(config.Sources{File: global.configFile})
}

// apply lays the flags that were set over the configured options
func (f highlightFlags) apply(cmd *cobra.Command, opts *config.Options) {
	changed := cmd.Flags().Changed
	if changed("css") {
		opts.Stylesheet = f.css
	}
	if changed("ext") {
		opts.Extension = f.ext
	}
	if changed("no-docs") {
		opts.FormatDocs = !f.noDocs
	}
	if changed("annotate") {
		opts.AnnotateChar = f.annotate
	}
	if changed("gzip") {
		opts.Gzip = f.gzip
	}
	if changed("locale") {
		opts.Locale = f.locale
	}
}

func highlightOptions(cfg *config.Config) highlight.Options {
	return highlight.Options{
		Palette:      cfg.Palette(),
		AnnotateChar: cfg.Options.AnnotateRune(),
		FormatDocs:   cfg.Options.FormatDocs,
		Stylesheet:   cfg.Options.Stylesheet,
		Locale:       cfg.Options.Locale,
		Gzip:         cfg.Options.Gzip,
	}
}

func runHighlight(cmd *cobra.Command, args []string, global globalFlags, flags highlightFlags) error {
	logging.LogCommand(cmd.Name(), args)

	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}
	flags.apply(cmd, &cfg.Options)
	if utf8Len(cfg.Options.AnnotateChar) > 1 {
		return errors.Newf(errors.ErrInvalidInput, "annotation character must be a single character, got %q", cfg.Options.AnnotateChar)
	}

	var confirmer highlight.Confirmer
	if !flags.force {
		confirmer = confirm.New()
	}
	driver := highlight.New(afero.NewOsFs(), highlightOptions(cfg), confirmer)

	batch, err := driver.Files(args, highlight.Request{
		DefaultExt: cfg.Options.Extension,
		Output:     flags.output,
		Dir:        flags.dir,
		Clobber:    flags.force,
		Title:      flags.title,
	})
	if batch != nil {
		report(cmd.OutOrStdout(), cmd.ErrOrStderr(), batch)
	}
	if err != nil {
		return err
	}

	switch {
	case len(batch.Failures) == 0:
		return nil
	case len(args) == 1:
		return batch.Failures[0].Err
	}
	return errors.Newf(errors.ErrAborted, MsgErrSomeFailed, len(batch.Failures), len(args))
}

// report prints one line per input
func report(out, errOut io.Writer, batch *highlight.BatchResult) {
	for _, r := range batch.Results {
		if r.Skipped {
			fmt.Fprintln(out, styles.Render(fmt.Sprintf(MsgSkipped, r.Output)))
			continue
		}
		fmt.Fprintln(out, styles.Render(fmt.Sprintf(MsgWrote, r.Output, r.Stats.Tokens)))
	}
	if len(batch.Failures) > 0 && len(batch.Results)+len(batch.Failures) > 1 {
		for _, f := range batch.Failures {
			fmt.Fprintln(errOut, styles.Render(fmt.Sprintf(MsgFailed, f.Input, f.Err)))
		}
	}
	if batch.Index != "" {
		fmt.Fprintln(out, styles.Render(fmt.Sprintf(MsgIndexWritten, batch.Index)))
	}
}

func utf8Len(s string) int {
	return len([]rune(s))
}
