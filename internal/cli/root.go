// Package cli provides the sanakirja command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sanakirja/internal/config"
	"sanakirja/internal/infrastructure/i18n"
	"sanakirja/internal/ports/output"
)

// Version is set at build time.
var Version = "0.1.0"

// app is the per-invocation state built by the root command.
type app struct {
	cfg        *config.Config
	logger     *slog.Logger
	translator output.T
}

type appKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sanakirja",
		Short: "Finnish-English dictionary",
		Long: `sanakirja keeps a Finnish-English word list and serves it over HTTP.

Configuration is read from sanakirja.yaml, SANAKIRJA_* environment
variables (a .env file is honoured) and the flags below, in increasing
order of precedence.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			rt := &app{
				cfg:        cfg,
				logger:     logger,
				translator: i18n.NewTranslator(cfg.Locale, logger),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, rt))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./sanakirja.yaml)")
	flags.Int("port", 0, "HTTP port (default 3000)")
	flags.String("store", "", "dictionary store: file, postgres or memory (default file)")
	flags.String("file", "", "dictionary file for the file store (default ./sanakirja.txt)")
	flags.String("database-url", "", "PostgreSQL connection string")
	flags.String("migrations-path", "", "directory holding SQL migrations (default migrations)")
	flags.String("locale", "", "default message language, en or fi (default en)")
	flags.String("log-level", "", "debug, info, warn or error (default info)")
	flags.String("discord-token", "", "Discord bot token; the bot is started by serve when set")
	flags.String("discord-guild-id", "", "register Discord commands in this guild only")

	_ = rootCmd.RegisterFlagCompletionFunc("store", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.StoreFile, config.StorePostgres, config.StoreMemory}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newFindCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newMigrateCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func appFrom(cmd *cobra.Command) (*app, error) {
	rt, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return rt, nil
}
