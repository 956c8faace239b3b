// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// Confirmer asks whether the existing entry called label may be replaced.
type Confirmer interface {
	Confirm(label string) (bool, error)
}

// NewConfirmer returns a terminal prompt if in is a terminal and a plain line
// reader otherwise.
func NewConfirmer(in, out *os.File) Confirmer {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return &PromptConfirmer{Stdin: in, Stdout: out}
	}

	return NewLineConfirmer(in, out)
}

func accepted(answer string) bool {
	return strings.HasPrefix(answer, "y") || strings.HasPrefix(answer, "Y")
}

type LineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm reads answers line by line, skipping blank ones. Running out of input
// before an answer is a decline.
func (c *LineConfirmer) Confirm(label string) (bool, error) {
	fmt.Fprintf(c.out, "mv: %s exists. Overwrite ('y' or 'n')? ", label)

	for {
		line, err := c.in.ReadString('\n')
		if answer := strings.TrimRight(line, "\r\n"); answer != "" {
			return accepted(answer), nil
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading response: %w", err)
		}
	}
}

type PromptConfirmer struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

func (c *PromptConfirmer) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:  fmt.Sprintf("%s exists. Overwrite ('y' or 'n')", label),
		Stdin:  c.Stdin,
		Stdout: c.Stdout,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("answer 'y' or 'n'") //nolint:goerr113
			}

			return nil
		},
	}

	answer, err := prompt.Run()
	if errors.Is(err, promptui.ErrEOF) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("prompting: %w", err)
	}

	return accepted(answer), nil
}
