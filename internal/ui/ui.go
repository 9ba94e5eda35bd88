package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter abstracts console input so the interactive flows can be exercised
// in tests with scripted answers.
type Prompter interface {
	// Input prompts for a free-text value.
	Input(label string) (string, error)
	// Select prompts for a 1-based index into a list of n entries,
	// re-prompting until the input is a number in range.
	Select(label string, n int) (int, error)
	// Confirm asks a yes/no question. Only a literal "yes" (any case)
	// proceeds; everything else, including a cancelled prompt, is a no.
	Confirm(label string) bool
}

// Console is the promptui-backed Prompter used in a real session.
type Console struct{}

func (Console) Input(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

func (Console) Select(label string, n int) (int, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := ParseIndex(input, n)
			return err
		},
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	return ParseIndex(result, n)
}

func (Console) Confirm(label string) bool {
	prompt := promptui.Prompt{Label: label + " (yes/no)"}
	result, err := prompt.Run()
	if err != nil {
		return false
	}
	return IsAffirmative(result)
}

// ParseIndex parses a 1-based menu selection against a list of n entries.
func ParseIndex(input string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, errors.New("please enter a valid number")
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("selection must be between 1 and %d", n)
	}
	return choice, nil
}

// IsAffirmative reports whether the input is the literal affirmative token.
func IsAffirmative(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "yes")
}
