// Package prompt asks for moods, notes and names on the terminal.
package prompt

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/mindmate/pkg/mood"
	"tableflip.dev/mindmate/pkg/profile"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// IO carries the streams prompts read from and write to. Nil streams fall
// back to promptui's defaults (the process stdin and stdout).
type IO struct {
	In  io.Reader
	Out io.Writer
}

func (p IO) stdin() io.ReadCloser {
	if p.In == nil {
		return nil
	}
	return io.NopCloser(p.In)
}

func (p IO) stdout() io.WriteCloser {
	if p.Out == nil {
		return nil
	}
	return nopWriteCloser{p.Out}
}

// Mood shows a searchable picker of the moods in display order.
func (p IO) Mood() (mood.Mood, error) {
	glyphs := mood.DefaultGlyphs()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Mood | bold }} {{ .Key | faint }}",
		Inactive: "   {{ .Symbol }} {{ .Mood }}",
		Selected: "{{ .Symbol }} {{ .Mood | bold }}",
	}

	searcher := func(input string, index int) bool {
		g := glyphs[index]
		input = strings.ToLower(strings.TrimSpace(input))
		if input == g.Key {
			return true
		}
		for _, a := range g.Aliases {
			if strings.Contains(a, input) {
				return true
			}
		}
		return false
	}

	sel := promptui.Select{
		HideHelp:  true,
		Label:     "How are you feeling",
		Items:     glyphs,
		Templates: templates,
		Size:      len(glyphs),
		Searcher:  searcher,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}

	i, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	return glyphs[i].Mood, nil
}

// Journal asks for an optional note.
func (p IO) Journal() (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Success: "{{ . | bold }}: ",
	}
	q := promptui.Prompt{
		Label:     "Journal (optional)",
		Templates: templates,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	note, err := q.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(note), nil
}

// validateName reports the form's wording rather than the sentinel text.
func validateName(name string) error {
	if err := profile.ValidateName(name); err != nil {
		return errors.New(profile.Message(err))
	}
	return nil
}

// Name asks for the display name until it passes validation.
func (p IO) Name() (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:          "{{ . }}: ",
		Valid:           "{{ . | green }}: ",
		Invalid:         "{{ . | red }}: ",
		Success:         "{{ . | bold }}: ",
		ValidationError: "{{ . | red }}",
	}
	q := promptui.Prompt{
		Label:     "What should we call you",
		Templates: templates,
		Validate:  validateName,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	name, err := q.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
