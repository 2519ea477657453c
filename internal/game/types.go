// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Outcome: what ApplyGuess did with a guess (processed/quit).
//   - Status: result of a status check (continue/win/lose).
//   - State: all mutable state of a single session.

package game

// Outcome is the result of applying a guess.
type Outcome string

const (
	Processed Outcome = "processed"
	Quit      Outcome = "quit"
)

// Status is the verdict of CheckStatus.
type Status string

const (
	Continue Status = "continue"
	Win      Status = "win"
	Lose     Status = "lose"
)

// Terminal reports whether s ends the session.
func (s Status) Terminal() bool { return s == Win || s == Lose }

// State holds a single Hangman session. It is owned by one session loop;
// other components only read it.
type State struct {
	ID          string   // Session identifier (uuid), used for log correlation.
	Category    string   // Chosen once at initialization.
	Word        string   // Target word, lowercase.
	MaxAttempts int      // len(Stages) - 1.
	Attempts    int      // Wrong guesses consumed.
	WrongGuess  []string // Incorrect guesses (letters or words), chronological.
	Trace       []string // Masked word at each status check.
	LastStage   int      // Attempts at the last status check.
	Over        bool     // True once won, lost or quit.

	correct map[rune]bool // Letters known to be in Word.
	guessed map[rune]bool // Single letters tried, right or wrong.
}
