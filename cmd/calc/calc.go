package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Arithmetic is kept as plain functions so the interactive front end stays
// thin and the math is directly testable.

func add(a, b float64) float64      { return a + b }
func subtract(a, b float64) float64 { return a - b }
func multiply(a, b float64) float64 { return a * b }

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("cannot divide by zero")
	}
	return a / b, nil
}

// parseNumber parses a float from user input, tolerating surrounding
// whitespace and an explicit leading plus sign.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", strings.TrimSpace(s))
	}
	return f, nil
}

// calculate applies op to a and b. Unknown operators are an error so the
// caller can re-prompt.
func calculate(a float64, op string, b float64) (float64, error) {
	switch op {
	case "+":
		return add(a, b), nil
	case "-":
		return subtract(a, b), nil
	case "*":
		return multiply(a, b), nil
	case "/":
		return divide(a, b)
	default:
		return 0, fmt.Errorf("invalid operator %q, allowed: + - * /", op)
	}
}
