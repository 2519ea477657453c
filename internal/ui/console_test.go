package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/game"
)

func console(input string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return NewConsole(strings.NewReader(input), &out, false), &out
}

func TestPromptCategoryRetriesUntilValid(t *testing.T) {
	c, out := console("0\nabc\n3\n2\n")
	name, err := c.PromptCategory([]string{"Animals", "Countries"})
	require.NoError(t, err)
	assert.Equal(t, "Countries", name)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid choice. Please try again."))
	assert.Contains(t, out.String(), "1. Animals\n2. Countries\n")
}

func TestPromptCategoryEOF(t *testing.T) {
	c, _ := console("9\n")
	_, err := c.PromptCategory([]string{"Animals"})
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptGuessTrims(t *testing.T) {
	c, _ := console("  E \nlast")
	g, err := c.PromptGuess()
	require.NoError(t, err)
	assert.Equal(t, "E", g)

	g, err = c.PromptGuess()
	require.NoError(t, err)
	assert.Equal(t, "last", g)

	_, err = c.PromptGuess()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRenderTurn(t *testing.T) {
	s := game.New("Animals", "cat")
	for _, g := range []string{"a", "z"} {
		_, err := s.ApplyGuess(g)
		require.NoError(t, err)
	}
	c, out := console("")
	c.RenderTurn(s)

	text := out.String()
	assert.Contains(t, text, "Word: _ a _\n")
	assert.Contains(t, text, "Guessed letters: a z\n")
	assert.Contains(t, text, "Wrong guesses: z\n")
	assert.Contains(t, text, "Remaining attempts: 5 (5 → 0)\n")
	assert.Contains(t, text, "  O   |")
}

func TestRenderTurnFreshState(t *testing.T) {
	c, out := console("")
	c.RenderTurn(game.New("Animals", "cat"))
	assert.Contains(t, out.String(), "Guessed letters: None\n")
	assert.NotContains(t, out.String(), "Wrong guesses")
}

func TestRenderEnd(t *testing.T) {
	s := game.New("Animals", "cat")
	_, err := s.ApplyGuess("cat")
	require.NoError(t, err)

	c, out := console("")
	c.RenderEnd(s)
	assert.Contains(t, out.String(), "You guessed the word: CAT")

	c, out = console("")
	c.RenderEnd(game.New("Animals", "dog"))
	assert.Contains(t, out.String(), "The word was: DOG")
}

func TestMessages(t *testing.T) {
	c, out := console("")
	c.RenderWelcome(game.New("Science", "optics"))
	c.Reject("4")
	c.Quit()
	c.Saved("game_log/game1/log.txt", 40)

	text := out.String()
	assert.Contains(t, text, "Category: Science\n")
	assert.Contains(t, text, "Invalid input.")
	assert.Contains(t, text, "You quit the game early.")
	assert.Contains(t, text, "Score: 40 (log saved to game_log/game1/log.txt)\n")
}
