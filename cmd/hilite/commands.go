package hilite

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/hilite/internal/version"
	"github.com/arthur-debert/hilite/pkg/cobrax/topics"
	"github.com/arthur-debert/hilite/pkg/config"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/keywords"
	"github.com/arthur-debert/hilite/pkg/paths"
	"github.com/arthur-debert/hilite/pkg/preview"
	"github.com/arthur-debert/hilite/pkg/style"
	"github.com/arthur-debert/hilite/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newPreviewCmd(global *globalFlags) *cobra.Command {
	var (
		formatter string
		annotate  string
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: MsgPreviewShort,
		Long:  MsgPreviewLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*global)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("annotate") {
				cfg.Options.AnnotateChar = annotate
			}

			fs := afero.NewOsFs()
			input, err := paths.ResolveInput(fs, args[0], cfg.Options.Extension)
			if err != nil {
				return err
			}
			f, err := fs.Open(input)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, MsgErrOpenPreview, input)
			}
			defer func() { _ = f.Close() }()

			return preview.Render(cmd.OutOrStdout(), f, preview.Options{
				Palette:      cfg.Palette(),
				AnnotateChar: cfg.Options.AnnotateRune(),
				Formatter:    formatter,
			})
		},
	}

	cmd.Flags().StringVar(&formatter, "formatter", "", MsgFlagFormatter)
	cmd.Flags().StringVar(&annotate, "annotate", "", MsgFlagAnnotate)
	return cmd
}

func newStylesCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: MsgStylesShort,
		Long:  MsgStylesLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*global)
			if err != nil {
				return err
			}

			table := stylesTable(cfg.Palette())
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				_, err := io.WriteString(out, table)
				return err
			}
			rendered, err := topics.RenderMarkdown(table, "auto", 0)
			if err != nil {
				log.Debug().Err(err).Msg("Markdown rendering failed, printing raw table")
				rendered = table
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}
}

// stylesTable renders the style keys as a markdown table
func stylesTable(p *style.Palette) string {
	values := p.Values()

	var b strings.Builder
	b.WriteString("| Key | Default | Value | Description |\n")
	b.WriteString("|-----|---------|-------|-------------|\n")
	for _, k := range style.Keys() {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
			k.Key, cell(k.Default), cell(values[k.Key]), k.Description)
	}
	return b.String()
}

func cell(s string) string {
	if s == "" {
		return " "
	}
	return "`" + strings.ReplaceAll(s, "|", "\\|") + "`"
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: MsgKeywordsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeKeywords(cmd.OutOrStdout(), keywords.Java())
		},
	}
}

func writeKeywords(w io.Writer, table *keywords.Table) error {
	for _, cat := range keywords.Categories {
		line := fmt.Sprintf("[heading]%-9s[/heading] %s", cat.String(), strings.Join(table.Words(cat), " "))
		if _, err := fmt.Fprintln(w, styles.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

func newGenConfigCmd() *cobra.Command {
	var (
		write bool
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Example: `  hilite gen-config             # Output to stdout
  hilite gen-config -w          # Write to ./hilite.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), content)
				return err
			}

			path, err := writeConfigFile(afero.NewOsFs(), dir, content, force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Render(fmt.Sprintf(MsgConfigWritten, path)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVarP(&dir, "dir", "d", "", MsgFlagDir)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

// writeConfigFile writes hilite.toml into dir, refusing to replace an
// existing file unless force is set
func writeConfigFile(fs afero.Fs, dir, content string, force bool) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, paths.ProjectConfigFiles[0])

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to check configuration file")
	}
	if exists && !force {
		return "", errors.New(errors.ErrFileExists, "configuration file already exists").
			WithDetail("path", path)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "failed to write configuration file")
	}
	return path, nil
}

func newConfigCmd(global *globalFlags) *cobra.Command {
	var resolved bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*global)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if resolved {
				data, err := config.DumpResolved(cfg)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			if len(cfg.Sources) == 0 {
				fmt.Fprintln(out, MsgNoSources)
			}
			for _, src := range cfg.Sources {
				fmt.Fprintln(out, styles.Render("[path]"+src+"[/path]"))
			}
			for _, key := range cfg.UnknownKeys() {
				fmt.Fprintln(out, styles.Render(fmt.Sprintf(MsgUnknownKey, key)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&resolved, "resolved", false, MsgFlagResolved)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			}
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "HILITE",
				Section: "1",
				Source:  "hilite " + version.Version,
				Manual:  "hilite manual",
			}
			if dir == "" {
				return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrap(err, errors.ErrFileCreate, "failed to create man page directory")
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write man pages")
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Render(fmt.Sprintf(MsgManWritten, dir)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", MsgFlagManDir)
	return cmd
}
