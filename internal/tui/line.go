// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter asks questions one line at a time.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// lineResult carries one read line across the goroutine boundary.
type lineResult struct {
	line string
	err  error
}

// NewLinePrompter creates a LinePrompter over cfg.Input and cfg.Output.
func NewLinePrompter(cfg Config) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(cfg.Input), out: cfg.Output}
}

// Select prints a numbered menu and reads a 1-based choice.
// Empty, non-numeric or out-of-range answers return ok=false.
func (p *LinePrompter) Select(ctx context.Context, title string, options []string) (int, bool, error) {
	fmt.Fprintln(p.out, title)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprint(p.out, "\nEnter a number (or Ctrl+C to cancel): ")

	line, ok := p.readLine(ctx)
	if !ok {
		return -1, false, nil
	}
	if line == "" {
		fmt.Fprintln(p.out, "No selection made.")
		return -1, false, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(p.out, "Invalid input. Please enter a number.")
		return -1, false, nil
	}
	if n < 1 || n > len(options) {
		fmt.Fprintf(p.out, "Invalid selection. Please choose a number between 1 and %d.\n", len(options))
		return -1, false, nil
	}
	fmt.Fprintf(p.out, "Selected: %s\n", options[n-1])
	return n - 1, true, nil
}

// Confirm asks a [y/N] question. Only "y" or "yes" (any case) is affirmative.
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N] ", question)
	line, ok := p.readLine(ctx)
	if !ok {
		return false, nil
	}
	return IsAffirmative(line), nil
}

// IsAffirmative reports whether answer means yes.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// readLine returns the next trimmed line. ok is false on EOF, read errors or
// context cancellation, which all count as no answer.
func (p *LinePrompter) readLine(ctx context.Context) (string, bool) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out, "\nOperation cancelled.")
		return "", false
	case r := <-ch:
		if r.err != nil && (r.err != io.EOF || r.line == "") {
			fmt.Fprintln(p.out)
			return "", false
		}
		return strings.TrimSpace(r.line), true
	}
}
