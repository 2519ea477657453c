// internal/game/engine.go
//
// Core game engine for a single Hangman session.
// Responsibilities:
//   - Create new sessions from the word catalog.
//   - Validate and apply guesses (single letter, whole word, or "quit").
//   - Check status after each guess: continue → won/lost.
//
// Notes:
//   - Repeat wrong letters are free; repeat wrong words cost an attempt each.
//   - "quit" is itself a valid alphabetic guess, so ApplyGuess checks for it
//     before any letter/word handling.
//   - CheckStatus knows nothing about quitting; callers stop on Quit.
package game

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/words"
)

// QuitWord ends the session when entered as a guess.
const QuitWord = "quit"

// Placeholder stands in for unrevealed letters.
const Placeholder = '_'

var (
	ErrGameOver     = errors.New("game over")
	ErrInvalidGuess = errors.New("invalid guess")
)

// Start draws a (category, word) pair from the catalog and returns a fresh
// session. An empty category picks one at random.
func Start(c *words.Catalog, category string, p words.Picker) (*State, error) {
	cat, word, err := c.Draw(category, p)
	if err != nil {
		return nil, err
	}
	return New(cat, word), nil
}

// New constructs a session for a known category and word.
func New(category, word string) *State {
	return &State{
		ID:          uuid.NewString(),
		Category:    category,
		Word:        strings.ToLower(word),
		MaxAttempts: len(Stages) - 1,
		WrongGuess:  []string{},
		Trace:       []string{},
		correct:     make(map[rune]bool),
		guessed:     make(map[rune]bool),
	}
}

// ValidateGuess reports whether raw, trimmed and lowercased, is a non-empty
// run of letters.
func ValidateGuess(raw string) bool {
	g := normalize(raw)
	if g == "" {
		return false
	}
	for _, r := range g {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ApplyGuess applies one guess to the session.
// Returns Quit for the literal "quit" (the session is then over), otherwise
// Processed; win/lose is only decided by CheckStatus.
//
// Errors:
//   - ErrGameOver once the session has ended; nothing is applied.
//   - ErrInvalidGuess if ValidateGuess rejects raw; nothing is applied.
func (s *State) ApplyGuess(raw string) (Outcome, error) {
	if s.Over {
		return "", ErrGameOver
	}
	if !ValidateGuess(raw) {
		return "", ErrInvalidGuess
	}
	guess := normalize(raw)

	if guess == QuitWord {
		s.Over = true
		return Quit, nil
	}

	// Whole-word guess.
	if utf8.RuneCountInString(guess) > 1 {
		if guess == s.Word {
			for _, r := range s.Word {
				s.correct[r] = true
			}
		} else {
			s.Attempts++
			s.WrongGuess = append(s.WrongGuess, guess)
		}
		return Processed, nil
	}

	// Single letter.
	r, _ := utf8.DecodeRuneInString(guess)
	if strings.ContainsRune(s.Word, r) {
		s.correct[r] = true
	} else if !s.guessed[r] {
		s.Attempts++
		s.WrongGuess = append(s.WrongGuess, guess)
	}
	s.guessed[r] = true
	return Processed, nil
}

// CheckStatus records the current stage and masked word, then decides
// whether the session is won, lost, or continues.
func (s *State) CheckStatus() Status {
	s.LastStage = s.Attempts
	s.Trace = append(s.Trace, s.Masked())

	switch {
	case s.Won():
		s.Over = true
		return Win
	case s.Attempts >= s.MaxAttempts:
		s.Over = true
		return Lose
	}
	return Continue
}

// Won reports whether every letter of the word has been revealed.
func (s *State) Won() bool {
	for _, r := range s.Word {
		if !s.correct[r] {
			return false
		}
	}
	return true
}

// Masked returns the word with unrevealed letters replaced by Placeholder.
func (s *State) Masked() string {
	var b strings.Builder
	for _, r := range s.Word {
		if s.correct[r] {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// Display returns Masked with characters separated by spaces.
func (s *State) Display() string {
	m := []rune(s.Masked())
	parts := make([]string, len(m))
	for i, r := range m {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Remaining is the number of wrong guesses left.
func (s *State) Remaining() int {
	return max(0, s.MaxAttempts-s.Attempts)
}

// IsCorrect reports whether r has been revealed.
func (s *State) IsCorrect(r rune) bool { return s.correct[r] }

// HasGuessed reports whether r was tried as a single-letter guess.
func (s *State) HasGuessed(r rune) bool { return s.guessed[r] }

// CorrectLetters returns the revealed letters, sorted.
func (s *State) CorrectLetters() []string {
	return sortedKeys(s.correct)
}

// GuessedLetters returns the union of revealed and tried letters, sorted.
func (s *State) GuessedLetters() []string {
	u := make(map[rune]bool, len(s.correct)+len(s.guessed))
	for r := range s.correct {
		u[r] = true
	}
	for r := range s.guessed {
		u[r] = true
	}
	return sortedKeys(u)
}

// LastWrongGuess returns the most recent wrong guess, or "" if none.
func (s *State) LastWrongGuess() string {
	if len(s.WrongGuess) == 0 {
		return ""
	}
	return s.WrongGuess[len(s.WrongGuess)-1]
}

func sortedKeys(m map[rune]bool) []string {
	out := make([]string, 0, len(m))
	for r := range m {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// normalize trims surrounding whitespace and lowercases.
func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
