package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect recorded sessions",
}

func init() {
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsShowCmd)
	logsCmd.AddCommand(logsServeCmd)
	logsServeCmd.Flags().String("addr", "", "listen address (default $HANGMAN_ADDR or :5175)")
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := store.NewDirStore(cfg.LogDir).List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintf(out, "no sessions recorded in %s\n", cfg.LogDir)
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "game%-4d %-12s %-16s %-4s score %s\n",
				e.Number, e.Fields["Category"], e.Fields["Word"], e.Result(), e.Fields["Score"])
		}
		return nil
	},
}

var logsShowCmd = &cobra.Command{
	Use:   "show N",
	Short: "Print the log of session game<N>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("session number %q: %w", args[0], err)
		}
		e, err := store.NewDirStore(cfg.LogDir).Get(cmd.Context(), n)
		if err != nil {
			return fmt.Errorf("session %d: %w", n, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), e.Text)
		return nil
	},
}

var logsServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recorded sessions over HTTP (read-only)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			addr = v
		}
		srv := httpserver.New(store.NewDirStore(cfg.LogDir), cfg.ClientOrigin)
		log.Info().Str("addr", addr).Str("logDir", cfg.LogDir).Msg("serving session logs")
		return srv.Start(addr)
	},
}
