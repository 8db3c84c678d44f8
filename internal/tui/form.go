// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks questions with huh forms.
type FormPrompter struct {
	cfg Config
}

// NewFormPrompter creates a FormPrompter.
func NewFormPrompter(cfg Config) *FormPrompter {
	return &FormPrompter{cfg: cfg}
}

// Select shows a single-choice list. Aborting the form (Esc, Ctrl+C) returns ok=false.
func (p *FormPrompter) Select(ctx context.Context, title string, options []string) (int, bool, error) {
	idx := -1
	huhOpts := make([]huh.Option[int], len(options))
	for i, opt := range options {
		huhOpts[i] = huh.NewOption(opt, i)
	}

	sel := huh.NewSelect[int]().
		Title(title).
		Options(huhOpts...).
		Value(&idx)

	ok, err := p.run(ctx, huh.NewForm(huh.NewGroup(sel)))
	if err != nil || !ok || idx < 0 || idx >= len(options) {
		return -1, false, err
	}
	return idx, true, nil
}

// Confirm shows a yes/no prompt defaulting to no.
func (p *FormPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	var answer bool
	confirm := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&answer)

	ok, err := p.run(ctx, huh.NewForm(huh.NewGroup(confirm)))
	if err != nil || !ok {
		return false, err
	}
	return answer, nil
}

// run executes form. ok is false when the user aborted or ctx was cancelled.
func (p *FormPrompter) run(ctx context.Context, form *huh.Form) (bool, error) {
	form = form.
		WithTheme(getHuhTheme(p.cfg.Theme)).
		WithAccessible(p.cfg.Accessible).
		WithShowHelp(true)
	if p.cfg.Input != nil {
		form = form.WithInput(p.cfg.Input)
	}
	if p.cfg.Output != nil {
		form = form.WithOutput(p.cfg.Output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, huh.ErrTimeout) || ctx.Err() != nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
