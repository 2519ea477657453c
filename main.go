package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/words"
)

var (
	cfg     config.Config
	catalog *words.Catalog
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Play Hangman in the terminal",
	Long: `hangman is a terminal word-guessing game. Pick a category, then guess
letters or the whole word before the gallows drawing is complete.

Every finished session is written to <log-dir>/game<N>/log.txt.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().String("log-dir", "", "session log directory (default $HANGMAN_LOG_DIR or game_log)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (default $LOG_LEVEL or warn)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable terminal styling")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(logsCmd)
}

// setup loads configuration, applies flag overrides, configures logging
// and loads the word catalog. A broken catalog is fatal.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if v, _ := flags.GetString("log-dir"); v != "" {
		cfg.LogDir = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetBool("no-color"); v {
		cfg.NoColor = "1"
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !cfg.Color()})
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	catalog, err = words.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word catalog")
	}
	return nil
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List word categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, name := range catalog.Names() {
			list, err := catalog.Words(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d. %s (%d words)\n", i+1, name, len(list))
		}
		return nil
	},
}
