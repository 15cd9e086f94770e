// Package game implements the number guessing game logic, kept separate
// from the terminal front end so it can be exercised directly by tests.
package game

import "math/rand"

// Outcome classifies one guess.
type Outcome int

const (
	TooLow Outcome = iota
	TooHigh
	Correct
)

// Difficulty levels map to the upper bound of the secret number.
const (
	Easy   = 20
	Medium = 50
	Hard   = 100
)

// Game is one round: a secret number in [1, limit] and an attempt counter.
type Game struct {
	limit    int
	target   int
	attempts int
}

// New starts a round with a secret drawn from rng in [1, limit]. A limit
// below 1 is raised to 1 so the game is always winnable.
func New(limit int, rng *rand.Rand) *Game {
	if limit < 1 {
		limit = 1
	}
	return &Game{limit: limit, target: 1 + rng.Intn(limit)}
}

// Limit returns the upper bound of the secret number.
func (g *Game) Limit() int { return g.limit }

// Target exposes the secret number so callers can verify rounds.
func (g *Game) Target() int { return g.target }

// Attempts returns how many guesses have been made.
func (g *Game) Attempts() int { return g.attempts }

// Guess records one guess and reports how it compares to the secret.
func (g *Game) Guess(n int) Outcome {
	g.attempts++
	switch {
	case n < g.target:
		return TooLow
	case n > g.target:
		return TooHigh
	default:
		return Correct
	}
}

// Scoreboard tracks the best (lowest) attempt count across rounds.
type Scoreboard struct {
	best int
	set  bool
}

// Record submits a finished round's attempt count and reports whether it is
// a new best score.
func (s *Scoreboard) Record(attempts int) bool {
	if !s.set || attempts < s.best {
		s.best = attempts
		s.set = true
		return true
	}
	return false
}

// Best returns the best score so far; ok is false before the first round.
func (s *Scoreboard) Best() (score int, ok bool) { return s.best, s.set }
