package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mash-protocol/durunit/internal/config"
)

// app holds state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	logger     *slog.Logger
	configFile string

	// dotEnvFiles overrides config.DefaultDotEnvFiles.
	dotEnvFiles []string

	// newLineReader opens the REPL input; tests replace it.
	newLineReader func(cmd *cobra.Command, cfg *config.Config) (lineReader, error)
}

func newApp() *app {
	return &app{
		v:             config.NewViper(),
		logger:        slog.New(slog.DiscardHandler),
		newLineReader: newReadline,
	}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "durfmt",
		Short: "Format and parse unit-minimal duration strings",
		Long: `durfmt converts between nanosecond tick counts and compact duration
strings such as "90s", "2m" or "1500us". Formatting always picks the
largest unit that represents the value exactly.

Negative values must follow "--" so they are not read as flags:

  durfmt format -- -60000000000`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "config file (default durfmt.yaml in . or the user config dir)")
	flags.StringP("output", "o", config.OutputText, "output format: text, json, yaml, cbor, diag")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.AddCommand(
		a.formatCmd(),
		a.parseCmd(),
		a.normalizeCmd(),
		a.convertCmd(),
		a.unitsCmd(),
		a.replCmd(),
		a.journalCmd(),
		a.decodeCmd(),
	)
	return cmd
}

// setup loads configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.configFile, a.dotEnvFiles...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	a.logger.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"output", cfg.Output,
		"log_level", cfg.LogLevel,
	)
	return nil
}
