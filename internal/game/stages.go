package game

// Stages are the hangman drawings, from empty gallows to full figure.
// The number of wrong guesses allowed is len(Stages)-1.
var Stages = []string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// StageArt returns the drawing for stage i, clamped into range.
func StageArt(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= len(Stages) {
		i = len(Stages) - 1
	}
	return Stages[i]
}
