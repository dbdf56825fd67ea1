package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sanakirja/internal/adapters/discord"
	"sanakirja/internal/adapters/httpapi"
	"sanakirja/internal/application"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the dictionary HTTP API until interrupted.

When a Discord token is configured the Discord bot runs alongside the API
and both stop together.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := appFrom(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, rt.cfg, rt.logger)
	if err != nil {
		return err
	}
	defer closeStore()

	dictionary := application.NewDictionaryService(repo)

	var bot *discord.Bot
	if rt.cfg.Discord.Token != "" {
		bot, err = discord.NewBot(rt.cfg.Discord.Token, rt.cfg.Discord.GuildID, dictionary, rt.translator, rt.logger.With("component", "discord"))
		if err != nil {
			return err
		}
	}

	srv := httpapi.NewServer(httpapi.Config{
		Dictionary: dictionary,
		Translator: rt.translator,
		Locale:     rt.cfg.Locale,
		Port:       rt.cfg.Port,
		Logger:     rt.logger,
	})

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return srv.Serve(egctx) })
	if bot != nil {
		eg.Go(func() error { return bot.Start(egctx) })
	}

	return eg.Wait()
}
