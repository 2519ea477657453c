// Package play runs one interactive Hangman session end to end:
// category choice, guess loop, end screen, and session log.
package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/record"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

// UI is the presentation side of a session. Render methods must not
// modify the state they are given.
type UI interface {
	PromptCategory(names []string) (string, error)
	PromptGuess() (string, error)
	RenderWelcome(s *game.State)
	RenderTurn(s *game.State)
	RenderEnd(s *game.State)
	Reject(raw string)
	Quit()
	Saved(path string, score int)
}

// Runner wires the catalog, UI and store for a session.
type Runner struct {
	Catalog *words.Catalog
	Picker  words.Picker // nil uses crypto/rand
	UI      UI
	Store   store.Store
	Now     func() time.Time // nil uses time.Now
}

// Result is what a finished session produced.
type Result struct {
	State   *game.State
	Summary record.Summary
	Entry   store.Entry
}

// Run plays one session. category may be "" to prompt the player, or
// Random to draw one. Input EOF or ctx cancellation ends the session as
// a quit; the summary is still recorded.
func (r *Runner) Run(ctx context.Context, category string) (Result, error) {
	if category == "" {
		name, err := r.UI.PromptCategory(r.Catalog.Names())
		if err != nil {
			return Result{}, fmt.Errorf("choose category: %w", err)
		}
		category = name
	} else if category == Random {
		category = ""
	}

	s, err := game.Start(r.Catalog, category, r.Picker)
	if err != nil {
		return Result{}, err
	}
	logger := log.With().Str("session", s.ID).Logger()
	logger.Info().Str("category", s.Category).Int("maxAttempts", s.MaxAttempts).Msg("session started")

	r.UI.RenderWelcome(s)
	for !s.Over {
		if ctx.Err() != nil {
			logger.Info().Err(ctx.Err()).Msg("session cancelled")
			s.Over = true
			break
		}
		r.UI.RenderTurn(s)
		raw, err := r.UI.PromptGuess()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Result{}, fmt.Errorf("read guess: %w", err)
			}
			logger.Info().Msg("input closed")
			r.UI.Quit()
			s.Over = true
			break
		}
		if !game.ValidateGuess(raw) {
			logger.Debug().Str("guess", raw).Msg("rejected guess")
			r.UI.Reject(raw)
			continue
		}
		out, err := s.ApplyGuess(raw)
		if err != nil {
			return Result{}, err
		}
		if out == game.Quit {
			logger.Info().Int("attempts", s.Attempts).Msg("player quit")
			r.UI.Quit()
			break
		}
		if st := s.CheckStatus(); st.Terminal() {
			logger.Info().Str("status", string(st)).Int("attempts", s.Attempts).Msg("session finished")
		}
	}
	r.UI.RenderEnd(s)

	sm := record.Summarize(s, r.now())
	res := Result{State: s, Summary: sm}
	if r.Store != nil {
		e, err := r.Store.Save(context.WithoutCancel(ctx), sm)
		if err != nil {
			logger.Error().Err(err).Msg("save session log")
			return res, fmt.Errorf("save session log: %w", err)
		}
		res.Entry = e
		logger.Info().Int("number", e.Number).Str("path", e.Path).Msg("session recorded")
	}
	r.UI.Saved(res.Entry.Path, sm.Score)
	return res, nil
}

// Random asks Run to draw the category instead of prompting.
const Random = "*"

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
