// Package record turns a finished session into its human-readable summary.
//
// The result is re-derived from the revealed letters rather than taken from
// the last status check, so a quit session records as a loss unless the
// word was already complete.
package record

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robalobadob/hangman/internal/game"
)

// TimestampLayout is the layout of the Timestamp line.
const TimestampLayout = "2006-01-02 15:04:05"

// None marks an empty list or missing value in the text.
const None = "None"

// Result is the recorded outcome of a session.
type Result string

const (
	ResultWin  Result = "Win"
	ResultLoss Result = "Loss"
)

// Summary is the recorded view of a finished session.
type Summary struct {
	SessionID    string
	Category     string
	Word         string
	Guessed      []string // sorted union of correct letters and wrong guesses
	WrongGuesses []string // chronological
	Attempts     int
	Result       Result
	Score        int
	Timestamp    time.Time
	LastStage    int
	LastWrong    string // "" when there were no wrong guesses
	Trace        []string
}

// Summarize builds the summary of s as of now. It does not modify s.
func Summarize(s *game.State, now time.Time) Summary {
	result := ResultLoss
	if s.Won() {
		result = ResultWin
	}
	return Summary{
		SessionID:    s.ID,
		Category:     s.Category,
		Word:         s.Word,
		Guessed:      union(s.CorrectLetters(), s.WrongGuess),
		WrongGuesses: append([]string(nil), s.WrongGuess...),
		Attempts:     s.Attempts,
		Result:       result,
		Score:        game.Score(len([]rune(s.Word)), s.Attempts),
		Timestamp:    now,
		LastStage:    s.LastStage,
		LastWrong:    s.LastWrongGuess(),
		Trace:        append([]string(nil), s.Trace...),
	}
}

// TraceChain joins the progress trace into "a -> b -> c".
func (sm Summary) TraceChain() string {
	return strings.Join(sm.Trace, " -> ")
}

// Text renders the summary in the session log format.
func (sm Summary) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Category: %s\n", sm.Category)
	fmt.Fprintf(&b, "Word: %s\n", sm.Word)
	fmt.Fprintf(&b, "Guessed letters: %s\n", strings.Join(sm.Guessed, ", "))
	fmt.Fprintf(&b, "Wrong guesses: %s\n", orNone(strings.Join(sm.WrongGuesses, ", ")))
	fmt.Fprintf(&b, "Attempts used: %d\n", sm.Attempts)
	fmt.Fprintf(&b, "Final result: %s\n", sm.Result)
	fmt.Fprintf(&b, "Score: %d\n", sm.Score)
	fmt.Fprintf(&b, "Timestamp: %s\n", sm.Timestamp.Format(TimestampLayout))
	b.WriteString("\nSession Notes:\n")
	fmt.Fprintf(&b, "- ASCII hangman reached state %d after wrong guess '%s'.\n", sm.LastStage, orNone(sm.LastWrong))
	fmt.Fprintf(&b, "- Progress trace: %s\n", sm.TraceChain())
	b.WriteString(strings.Repeat("-", 40) + "\n")
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return None
	}
	return s
}

func union(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, x := range b {
		set[x] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}
