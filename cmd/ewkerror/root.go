package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmgilman/go/ewk"
	"github.com/jmgilman/go/ewk/errors"
	"github.com/jmgilman/go/ewk/internal/config"
	"github.com/jmgilman/go/ewk/internal/logging"
)

// app carries state shared by subcommands once the root pre-run has resolved it.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	cmd := &cobra.Command{
		Use:           "ewkerror",
		Short:         "Inspect engine errors through the embedder error adapter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			ewk.SetLogger(nil)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (yaml, json or toml)")
	flags.String("log-level", "warn", "diagnostic level: debug, info, warn or error")
	flags.String("log-format", config.LogConsole, "diagnostic format: console or json")
	flags.StringP("output", "o", config.OutputTable, "output format: table, json or yaml")

	// Flag names are fixed above; binding cannot fail.
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("output", flags.Lookup("output"))

	cmd.AddCommand(newInspectCommand(a), newDomainsCommand(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "failed to initialize logging")
	}

	a.cfg = cfg
	a.logger = logger
	ewk.SetLogger(logger)
	logger.Debug("configuration loaded",
		zap.String("output", cfg.Output),
		zap.String("log_level", cfg.Log.Level),
	)
	return nil
}
