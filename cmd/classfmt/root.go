package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/classfmt/go-sdk/pkg/registry"
)

type rootOptions struct {
	configPath string
	logLevel   string
	colorMode  string
}

// env is what every subcommand works with once flags and config are merged.
type env struct {
	cfg      *Config
	log      *logrus.Logger
	registry *registry.Registry
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "classfmt",
		Short:         "Format lists of Go type names",
		Long:          `classfmt renders Go types as comma-separated qualified or mapped names`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&opts.colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newFormatCmd(opts))
	root.AddCommand(newListCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// load reads the config file, applies persistent flag overrides and builds the
// logger and registry for a subcommand.
func (o *rootOptions) load(cmd *cobra.Command) (*env, error) {
	if err := applyColorMode(o.colorMode); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"config":  o.configPath,
		"aliases": len(cfg.Aliases),
	}).Debug("configuration loaded")

	reg := registry.NewBuiltinRegistry()
	if err := reg.RegisterAliases(cfg.Aliases); err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log, registry: reg}, nil
}

func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "", "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (want auto|on|off)", mode)
	}
	return nil
}
