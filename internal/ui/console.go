// internal/ui/console.go
//
// Line-oriented terminal front end for a Hangman session.
// Responsibilities:
//   - Prompt for a category (by number) and for guesses.
//   - Render the welcome banner, each turn, and the end screen.
//
// Notes:
//   - Rendering only reads *game.State; the session loop owns mutation.
//   - Styling goes through a lipgloss renderer bound to the output writer,
//     so non-terminal writers (tests, pipes) get plain text.

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/hangman/internal/game"
)

// Console is a Presentation adapter over a reader/writer pair.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	title lipgloss.Style
	art   lipgloss.Style
	word  lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	dim   lipgloss.Style
}

// NewConsole returns a Console reading lines from in and writing to out.
// color=false forces plain output even on a terminal.
func NewConsole(in io.Reader, out io.Writer, color bool) *Console {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		art:   r.NewStyle().Foreground(lipgloss.Color("245")),
		word:  r.NewStyle().Bold(true),
		good:  r.NewStyle().Foreground(lipgloss.Color("42")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("196")),
		dim:   r.NewStyle().Faint(true),
	}
}

// PromptCategory lists names and reads a 1-based choice until it is valid.
// Returns io.EOF if input ends first.
func (c *Console) PromptCategory(names []string) (string, error) {
	fmt.Fprintln(c.out, c.title.Render("\n=== Welcome to Hangman ==="))
	fmt.Fprintln(c.out, "please choose a category:")
	for i, name := range names {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, name)
	}
	for {
		line, err := c.readLine("Enter the number of the category: ")
		if err != nil {
			return "", err
		}
		if n, convErr := strconv.Atoi(line); convErr == nil && n >= 1 && n <= len(names) && isDigits(line) {
			return names[n-1], nil
		}
		fmt.Fprintln(c.out, c.bad.Render("Invalid choice. Please try again."))
	}
}

// PromptGuess reads one raw guess line.
func (c *Console) PromptGuess() (string, error) {
	return c.readLine("\nEnter your guess (single letter, multiple letters, or full word): ")
}

// RenderWelcome prints the session banner.
func (c *Console) RenderWelcome(s *game.State) {
	fmt.Fprintln(c.out, "You can guess single letters, multiple letters, or the full word!")
	fmt.Fprintf(c.out, "Category: %s\n", s.Category)
	fmt.Fprintf(c.out, "Type %q to give up.\n", game.QuitWord)
	fmt.Fprintln(c.out, "Good luck!")
}

// RenderTurn prints the gallows, the masked word, guesses so far and the
// remaining attempts.
func (c *Console) RenderTurn(s *game.State) {
	fmt.Fprintln(c.out, c.art.Render(game.StageArt(s.Attempts)))
	fmt.Fprintf(c.out, "Category: %s\n", s.Category)
	fmt.Fprintf(c.out, "Word: %s\n", c.word.Render(s.Display()))

	guessed := s.GuessedLetters()
	list := "None"
	if len(guessed) > 0 {
		list = strings.Join(guessed, " ")
	}
	fmt.Fprintf(c.out, "Guessed letters: %s\n", list)
	if len(s.WrongGuess) > 0 {
		fmt.Fprintf(c.out, "Wrong guesses: %s\n", c.bad.Render(strings.Join(s.WrongGuess, ", ")))
	}
	remaining := s.Remaining()
	fmt.Fprintf(c.out, "Remaining attempts: %d %s\n", remaining, c.dim.Render(fmt.Sprintf("(%d → 0)", remaining)))
}

// RenderEnd prints the final drawing and the verdict.
func (c *Console) RenderEnd(s *game.State) {
	fmt.Fprintln(c.out, c.art.Render(game.StageArt(s.Attempts)))
	word := strings.ToUpper(s.Word)
	if s.Won() {
		fmt.Fprintln(c.out, c.good.Render("\nCongratulations! You guessed the word: "+word))
		return
	}
	fmt.Fprintln(c.out, c.bad.Render("\nGame Over! The word was: "+word))
}

// Reject tells the player a guess was not accepted.
func (c *Console) Reject(raw string) {
	fmt.Fprintln(c.out, c.bad.Render("Invalid input. Please enter a single alphabetic letter or the full word."))
}

// Quit acknowledges an early exit.
func (c *Console) Quit() {
	fmt.Fprintln(c.out, c.dim.Render("\nYou quit the game early. Goodbye!"))
}

// Saved reports where the session log went.
func (c *Console) Saved(path string, score int) {
	if path == "" {
		fmt.Fprintf(c.out, "Score: %d\n", score)
		return
	}
	fmt.Fprintf(c.out, "Score: %d (log saved to %s)\n", score, path)
}

// readLine prints prompt and returns the next trimmed line. A final line
// without a newline is still returned; EOF with no data is io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
