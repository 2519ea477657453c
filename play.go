package main

import (
	"errors"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/play"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/ui"
	"github.com/robalobadob/hangman/internal/words"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one session (the default command)",
	Long: `Play one Hangman session.

Examples:
  # Choose a category interactively
  hangman play

  # Skip the menu
  hangman play --category Science

  # Same word for everyone today
  hangman play --daily`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().String("category", "", "category name (skips the menu)")
	cmd.Flags().Bool("random", false, "draw a random category")
	cmd.Flags().Bool("daily", false, "use the word of the day")
	cmd.Flags().Int64("seed", 0, "seed the word draw (0 = random)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	category, _ := flags.GetString("category")
	random, _ := flags.GetBool("random")
	useDaily, _ := flags.GetBool("daily")
	seed, _ := flags.GetInt64("seed")

	if category != "" && (random || useDaily) {
		return errors.New("--category cannot be combined with --random or --daily")
	}
	if useDaily && seed != 0 {
		return errors.New("--daily cannot be combined with --seed")
	}

	var picker words.Picker
	switch {
	case useDaily:
		picker = daily.NewPicker(time.Now(), cfg.DailySalt)
		category = play.Random
	case seed != 0:
		picker = rand.New(rand.NewSource(seed))
	}
	if random {
		category = play.Random
	}

	r := &play.Runner{
		Catalog: catalog,
		Picker:  picker,
		UI:      ui.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Color()),
		Store:   store.NewDirStore(cfg.LogDir),
	}
	_, err := r.Run(cmd.Context(), category)
	return err
}
