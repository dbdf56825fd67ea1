package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sanakirja/internal/application"
	"sanakirja/internal/domain"
	"sanakirja/internal/domain/entities"
	"sanakirja/internal/infrastructure/filestore"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every word pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDictionary(cmd, func(rt *app, dictionary *application.DictionaryService) error {
				pairs, err := dictionary.List(cmd.Context())
				if err != nil {
					return rt.describe(err)
				}
				printPairs(cmd, pairs)
				return nil
			})
		},
	}
}

func newFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "find <word>",
		Short:   "Translate a Finnish word",
		Example: "  sanakirja find koira",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDictionary(cmd, func(rt *app, dictionary *application.DictionaryService) error {
				if !domain.IsValidWord(args[0]) {
					return rt.describe(&domain.ValidationError{Code: domain.CodeInvalidInput})
				}
				result, err := dictionary.Find(cmd.Context(), args[0])
				if err != nil {
					return rt.describe(err)
				}
				if result == domain.NoResults {
					result = rt.translator.T(rt.cfg.Locale, "result.no_results", nil)
				}
				fmt.Fprintln(cmd.OutOrStdout(), result)
				return nil
			})
		},
	}
}

func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <fin> <eng>",
		Short:   "Add a word pair and print the dictionary",
		Example: "  sanakirja add koira dog",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDictionary(cmd, func(rt *app, dictionary *application.DictionaryService) error {
				if err := domain.ValidatePair(args[0], args[1]); err != nil {
					return rt.describe(err)
				}
				pairs, err := dictionary.Add(cmd.Context(), args[0], args[1])
				if err != nil {
					return rt.describe(err)
				}
				rt.logger.Info("word pair added", "fin", args[0], "eng", args[1])
				printPairs(cmd, pairs)
				return nil
			})
		},
	}
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append the pairs of a dictionary file to the configured store",
		Long: `Read a dictionary text file ("fin eng" per line) and append every valid
pair to the configured store. Pairs already stored and lines that fail
validation are skipped and counted.`,
		Example: "  sanakirja import --store postgres ./sanakirja.txt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDictionary(cmd, func(rt *app, dictionary *application.DictionaryService) error {
				pairs, err := filestore.New(args[0]).List(cmd.Context())
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
				report, err := dictionary.Import(cmd.Context(), pairs)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d pairs (%d duplicates, %d invalid skipped)\n",
					report.Added, report.Duplicates, report.Invalid)
				return nil
			})
		},
	}
}

func withDictionary(cmd *cobra.Command, fn func(*app, *application.DictionaryService) error) error {
	rt, err := appFrom(cmd)
	if err != nil {
		return err
	}
	repo, closeStore, err := openStore(cmd.Context(), rt.cfg, rt.logger)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(rt, application.NewDictionaryService(repo))
}

func printPairs(cmd *cobra.Command, pairs []entities.WordPair) {
	out := cmd.OutOrStdout()
	for _, p := range pairs {
		fmt.Fprintln(out, p.String())
	}
}

// describe localizes errors the domain knows about.
func (rt *app) describe(err error) error {
	if code := domain.Code(err); code != "" {
		return errors.New(rt.translator.T(rt.cfg.Locale, "error."+code, nil))
	}
	return err
}
