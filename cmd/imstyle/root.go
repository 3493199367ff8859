package main

import (
	"fmt"

	"bennypowers.dev/imstyle/internal/config"
	"bennypowers.dev/imstyle/internal/log"
	"github.com/spf13/cobra"
)

// app carries state shared by the subcommands of one invocation
type app struct {
	configPath string
	logLevel   string
	fontScale  float32
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "imstyle",
		Short: "Read, write and convert GUI style theme files",
		Long: `imstyle manages INI-like theme files holding a GUI style: the color
palette, spacing variables, and the fonts to load.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.FileName, "path to the configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides the config file)")
	flags.Float32Var(&a.fontScale, "font-scale", 0, "multiply font sizes (overrides the config file)")

	root.AddCommand(
		a.defaultCmd(),
		a.normalizeCmd(),
		a.fontsCmd(),
		a.exportCmd(),
		a.importCmd(),
		a.listCmd(),
		a.previewCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("font-scale") {
		if a.fontScale < 0 {
			return fmt.Errorf("--font-scale must not be negative, got %g", a.fontScale)
		}
		cfg.FontScale = a.fontScale
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	a.cfg = cfg
	return nil
}
