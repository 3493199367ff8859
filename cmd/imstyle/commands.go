package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"bennypowers.dev/imstyle/internal/catalog"
	"bennypowers.dev/imstyle/internal/extensions"
	"bennypowers.dev/imstyle/internal/fonts"
	"bennypowers.dev/imstyle/internal/log"
	"bennypowers.dev/imstyle/internal/preview"
	"bennypowers.dev/imstyle/internal/style"
	"bennypowers.dev/imstyle/internal/stylefile"
	"bennypowers.dev/imstyle/internal/tokens"
	"bennypowers.dev/imstyle/internal/version"
	"github.com/spf13/cobra"
)

// theme is a loaded theme file
type theme struct {
	style      style.Style
	fonts      *fonts.Registry
	extensions extensions.Map
}

func (a *app) load(path string, withFonts bool) (*theme, error) {
	t := &theme{extensions: extensions.Map{}}
	opts := stylefile.Options{
		FontScale:  a.cfg.FontScale,
		Style:      &t.style,
		Extensions: t.extensions,
	}
	if withFonts {
		atlas := fonts.NewAtlas()
		t.fonts = fonts.NewRegistry()
		opts.Fonts = t.fonts
		opts.Loader = atlas
		opts.Defaults = atlas
	}
	if err := stylefile.LoadFile(path, opts); err != nil {
		return nil, err
	}
	return t, nil
}

// save writes s to path, or to w when path is empty
func save(w io.Writer, path string, s *style.Style) error {
	if path == "" {
		return stylefile.Save(w, s)
	}
	return stylefile.SaveFile(path, s)
}

func (a *app) defaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default [file]",
		Short: "Write the default theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := style.Default()
			return save(cmd.OutOrStdout(), optionalArg(args, 0), &s)
		},
	}
}

func (a *app) normalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <in> [out]",
		Short: "Rewrite a theme in canonical form",
		Long: `normalize loads a theme and saves it again: every color slot and saved
variable is written in catalog order with unknown or malformed entries
dropped. Font records and extension sections are replaced by the template
comments.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0], false)
			if err != nil {
				return err
			}
			return save(cmd.OutOrStdout(), optionalArg(args, 1), &t.style)
		},
	}
}

func (a *app) fontsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fonts <file>",
		Short: "Load a theme's fonts and list the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0], true)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, key := range t.fonts.Keys() {
				f, _ := t.fonts.Get(key)
				label := key
				if key == fonts.DefaultKey {
					label = "(default)"
				}
				fmt.Fprintf(w, "%s: %s\n", label, f)
				for _, src := range f.Sources {
					fmt.Fprintf(w, "  %s %gpx", src.Path, src.SizePixels)
					if len(src.Ranges) >= 2 {
						fmt.Fprintf(w, " range %d-%d", src.Ranges[0], src.Ranges[1])
					}
					fmt.Fprintln(w)
				}
			}
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a theme as DTCG design tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var encode func(io.Writer, tokens.Document) error
			switch format {
			case "json":
				encode = tokens.EncodeJSON
			case "yaml", "yml":
				encode = tokens.EncodeYAML
			default:
				return fmt.Errorf("unknown format %q, want json or yaml", format)
			}
			t, err := a.load(args[0], false)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), tokens.FromStyle(&t.style))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json or yaml")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <tokens.json> [out]",
		Short: "Build a theme from DTCG color tokens",
		Long: `import applies every color-<Slot> token of a DTCG JSON file onto the
default theme and writes the result.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read tokens: %w", err)
			}
			s := style.Default()
			n, err := tokens.Import(data, &s)
			if err != nil {
				return err
			}
			log.Info("Applied %d color tokens from %s", n, args[0])
			return save(cmd.OutOrStdout(), optionalArg(args, 1), &s)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir...]",
		Short: "List theme files",
		Long:  `list searches the given directories, or the configured themeDirs, for theme files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := args
			if len(dirs) == 0 {
				dirs = a.cfg.ThemeDirs
			}
			entries, err := catalog.DiscoverAll(dirs, a.cfg.Patterns)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Path)
			}
			return errors.Join(tw.Flush(), err)
		},
	}
}

func (a *app) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Show a theme's palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(args[0], false)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprint(w, preview.Palette(&t.style))

			// extension sections may carry colors of their own
			for _, section := range t.extensions.Sections() {
				entries := t.extensions.Section(section)
				keys := make([]string, 0, len(entries))
				for k := range entries {
					keys = append(keys, k)
				}
				sort.Strings(keys)

				fmt.Fprintf(w, "\n[%s]\n", section)
				for _, k := range keys {
					c, err := extensions.ParseColor(entries[k])
					if err != nil {
						fmt.Fprintf(w, "%-24s%s\n", k, entries[k])
						continue
					}
					fmt.Fprintf(w, "%-24s%s %s\n", k, preview.Swatch(c), tokens.Hex(c))
				}
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
			return err
		},
	}
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
