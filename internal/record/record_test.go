package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

var at = time.Date(2026, 10, 18, 14, 5, 9, 0, time.UTC)

func play(t *testing.T, s *game.State, guesses ...string) {
	t.Helper()
	for _, g := range guesses {
		out, err := s.ApplyGuess(g)
		require.NoError(t, err)
		if out == game.Quit {
			return
		}
		s.CheckStatus()
	}
}

func TestSummarizeWin(t *testing.T) {
	s := game.New("Animals", "cat")
	play(t, s, "z", "x", "cat")

	sm := Summarize(s, at)
	assert.Equal(t, s.ID, sm.SessionID)
	assert.Equal(t, ResultWin, sm.Result)
	assert.Equal(t, 20, sm.Score)
	assert.Equal(t, 2, sm.Attempts)
	assert.Equal(t, []string{"a", "c", "t", "x", "z"}, sm.Guessed)
	assert.Equal(t, []string{"z", "x"}, sm.WrongGuesses)
	assert.Equal(t, "x", sm.LastWrong)
	assert.Equal(t, 2, sm.LastStage)
	assert.Equal(t, "___ -> ___ -> cat", sm.TraceChain())
}

func TestSummarizeQuitIsLoss(t *testing.T) {
	s := game.New("Animals", "dog")
	play(t, s, "quit")

	sm := Summarize(s, at)
	assert.Equal(t, ResultLoss, sm.Result)
	assert.Zero(t, sm.Attempts)
	assert.Equal(t, 30, sm.Score)
	assert.Empty(t, sm.Guessed)
	assert.Equal(t, "", sm.TraceChain())
}

func TestSummarizeQuitAfterFullReveal(t *testing.T) {
	s := game.New("Animals", "ox")
	_, err := s.ApplyGuess("o")
	require.NoError(t, err)
	_, err = s.ApplyGuess("x")
	require.NoError(t, err)
	_, err = s.ApplyGuess("quit")
	require.NoError(t, err)

	assert.Equal(t, ResultWin, Summarize(s, at).Result)
}

func TestSummarizeCopiesSlices(t *testing.T) {
	s := game.New("Animals", "cat")
	play(t, s, "z")
	sm := Summarize(s, at)
	sm.WrongGuesses[0] = "mutated"
	sm.Trace[0] = "mutated"
	assert.Equal(t, []string{"z"}, s.WrongGuess)
	assert.Equal(t, []string{"___"}, s.Trace)
}

func TestTextWin(t *testing.T) {
	s := game.New("Animals", "cat")
	play(t, s, "z", "x", "cat")

	want := "Category: Animals\n" +
		"Word: cat\n" +
		"Guessed letters: a, c, t, x, z\n" +
		"Wrong guesses: z, x\n" +
		"Attempts used: 2\n" +
		"Final result: Win\n" +
		"Score: 20\n" +
		"Timestamp: 2026-10-18 14:05:09\n" +
		"\nSession Notes:\n" +
		"- ASCII hangman reached state 2 after wrong guess 'x'.\n" +
		"- Progress trace: ___ -> ___ -> cat\n" +
		"----------------------------------------\n"
	assert.Equal(t, want, Summarize(s, at).Text())
}

func TestTextNoWrongGuesses(t *testing.T) {
	s := game.New("Animals", "dog")
	play(t, s, "quit")

	text := Summarize(s, at).Text()
	assert.Contains(t, text, "Wrong guesses: None\n")
	assert.Contains(t, text, "after wrong guess 'None'.")
	assert.Contains(t, text, "Final result: Loss\n")
	assert.Contains(t, text, "Guessed letters: \n")
}
