package game

// Score rates a round: ten points per letter, minus five per wrong attempt,
// never below zero.
func Score(wordLength, wrongAttempts int) int {
	return max(0, wordLength*10-wrongAttempts*5)
}
