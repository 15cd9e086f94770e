// Command guess is a number guessing console game with three difficulty
// levels, attempt counting, and a per-session best score.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"dataprep/internal/game"
)

var (
	titleStyle  = color.New(color.FgCyan)
	menuStyle   = color.New(color.FgYellow)
	promptStyle = color.New(color.FgGreen)
	hintStyle   = color.New(color.FgYellow)
	winStyle    = color.New(color.FgGreen, color.Bold)
	infoStyle   = color.New(color.FgBlue)
	errStyle    = color.New(color.FgRed)
)

func main() {
	in := bufio.NewReader(os.Stdin)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var board game.Scoreboard

	for {
		titleStyle.Println("\n===== NUMBER GUESSING GAME =====")
		fmt.Println("1. Start New Game")
		fmt.Println("2. Show Best Score")
		fmt.Println("3. Exit")

		switch prompt(in, "\nEnter your choice: ") {
		case "1":
			attempts := playRound(in, rng)
			if board.Record(attempts) {
				winStyle.Println("New Best Score!")
			}
		case "2":
			if best, ok := board.Best(); ok {
				infoStyle.Printf("Best Score: %d attempts\n", best)
			} else {
				infoStyle.Println("No best score yet - play the game!")
			}
		case "3":
			titleStyle.Println("\nThanks for playing!")
			return
		default:
			errStyle.Println("Invalid choice! Try again.")
		}
	}
}

// chooseLimit asks for a difficulty until a valid choice is made.
func chooseLimit(in *bufio.Reader) int {
	titleStyle.Println("\nSelect Difficulty Level:")
	menuStyle.Println("1. Easy (1-20)")
	fmt.Println("2. Medium (1-50)")
	fmt.Println("3. Hard (1-100)")

	for {
		switch prompt(in, "Enter choice (1/2/3): ") {
		case "1":
			return game.Easy
		case "2":
			return game.Medium
		case "3":
			return game.Hard
		default:
			errStyle.Println("Invalid choice! Try again.")
		}
	}
}

// playRound runs one game to completion and returns the attempt count.
func playRound(in *bufio.Reader, rng *rand.Rand) int {
	g := game.New(chooseLimit(in), rng)

	titleStyle.Printf("\nGuess the number between 1 and %d!\n", g.Limit())
	titleStyle.Println("--------------------------------------")

	for {
		n, err := strconv.Atoi(prompt(in, "\nEnter your guess: "))
		if err != nil {
			errStyle.Println("Invalid input! Enter a number.")
			continue
		}
		switch g.Guess(n) {
		case game.TooLow:
			hintStyle.Println("Too low!")
		case game.TooHigh:
			hintStyle.Println("Too high!")
		case game.Correct:
			winStyle.Printf("\nCorrect! You guessed it in %d attempts!\n", g.Attempts())
			return g.Attempts()
		}
	}
}

func prompt(in *bufio.Reader, msg string) string {
	promptStyle.Print(msg)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		titleStyle.Println("\nExiting.")
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}
