package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/pokerhand/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// app carries what every subcommand needs once the configuration is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	rootCmd := &cobra.Command{
		Use:           "pokerhand",
		Short:         "Classify five-card poker hands",
		Long:          "pokerhand classifies hands such as \"10H JH QH KH AH\" into one of the nine poker hand categories.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(a.v, path)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.Log.Level)
			pterm.SetDefaultOutput(cmd.OutOrStdout())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("log-level", "info", "Log level: debug, info, warn or error (overrides POKERHAND_LOG_LEVEL)")
	flags.String("format", "text", "Output format: text or json (overrides POKERHAND_OUTPUT_FORMAT)")
	bindFlag(a.v, "log.level", flags.Lookup("log-level"))
	bindFlag(a.v, "output.format", flags.Lookup("format"))

	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newDealCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newCategoriesCmd(a))

	return rootCmd
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}

func newLogger(level string) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(logLevel(level)).WithWriter(os.Stderr)
	l := slog.New(pterm.NewSlogHandler(logger))
	slog.SetDefault(l)
	return l
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
