package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled")

func promptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}

// AskText prompts for text input. validate may be nil.
func AskText(prompt, defaultValue string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:    prompt,
		Default:  defaultValue,
		Validate: validate,
	}

	value, err := p.Run()
	if err != nil {
		return "", promptErr(err)
	}
	return strings.TrimSpace(value), nil
}

// AskConfirm prompts for yes/no confirmation
func AskConfirm(prompt string, defaultYes bool) (bool, error) {
	def := "n"
	if defaultYes {
		def = "y"
	}
	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
		Default:   def,
	}

	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, promptErr(err)
	}
}

// AskSelect prompts for single selection
func AskSelect(prompt string, choices []string) (int, string, error) {
	if len(choices) == 0 {
		return -1, "", fmt.Errorf("no choices for %q", prompt)
	}
	s := promptui.Select{
		Label: prompt,
		Items: choices,
	}

	i, value, err := s.Run()
	if err != nil {
		return -1, "", promptErr(err)
	}
	return i, value, nil
}
