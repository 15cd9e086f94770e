// Command calc is a small styled interactive calculator: a menu loop over
// the four basic operations with colored prompts and a screen-clear option.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	menuStyle   = color.New(color.FgMagenta, color.Bold)
	itemStyle   = color.New(color.FgYellow)
	promptStyle = color.New(color.FgGreen, color.Bold)
	errStyle    = color.New(color.FgRed)
	okStyle     = color.New(color.FgGreen, color.Bold)
)

func main() {
	in := bufio.NewReader(os.Stdin)
	for {
		clearScreen()
		header()
		printMenu()
		choice := prompt(in, "Choose an option (1-3): ")

		switch choice {
		case "1":
			performCalculation(in)
			prompt(in, "\nPress Enter to continue...")
		case "2":
			clearScreen()
		case "3":
			headerStyle.Println("Goodbye!")
			return
		default:
			errStyle.Println("Invalid choice. Please select 1, 2 or 3.")
			prompt(in, "\nPress Enter to continue...")
		}
	}
}

func header() {
	headerStyle.Println(strings.Repeat("=", 40))
	headerStyle.Println("  STYLED SIMPLE CALCULATOR")
	headerStyle.Println(strings.Repeat("=", 40))
}

func printMenu() {
	fmt.Println()
	menuStyle.Println("Menu:")
	itemStyle.Println("  1) Calculate")
	itemStyle.Println("  2) Clear Screen")
	itemStyle.Println("  3) Exit")
	fmt.Println()
}

// performCalculation prompts for two numbers and an operator, validates
// each, and prints the styled result. Invalid input returns to the menu
// instead of aborting the program.
func performCalculation(in *bufio.Reader) {
	a, err := parseNumber(prompt(in, "Enter first number: "))
	if err != nil {
		errStyle.Println("Invalid number for first input. Try again.")
		return
	}

	op := prompt(in, "Enter operator (+, -, *, /) or 'clear': ")
	if strings.EqualFold(op, "clear") {
		headerStyle.Println("Cleared - returning to menu.")
		return
	}

	b, err := parseNumber(prompt(in, "Enter second number: "))
	if err != nil {
		errStyle.Println("Invalid number for second input. Try again.")
		return
	}

	result, err := calculate(a, op, b)
	if err != nil {
		errStyle.Println(err.Error())
		return
	}
	okStyle.Printf("Result: %v %s %v = %v\n", a, op, b, result)
}

// prompt prints a styled prompt and returns one trimmed input line. EOF is
// treated as an exit request.
func prompt(in *bufio.Reader, msg string) string {
	promptStyle.Print(msg)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		headerStyle.Println("\nExiting.")
		os.Exit(0)
	}
	return strings.TrimSpace(line)
}

// clearScreen clears the terminal with ANSI escapes; harmless when the
// terminal does not interpret them.
func clearScreen() {
	fmt.Print("\x1b[2J\x1b[H")
}
