// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"fmt"
	"io"
	"os"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
)

const (
	// MaxNameLength is the longest user or group name accepted, in bytes.
	MaxNameLength = 100

	DefaultMaxOpenDirs = 64
)

var DefaultWalkOptions = WalkOptions{
	Types:       OnlyFiles,
	MaxOpenDirs: DefaultMaxOpenDirs,
}

type WalkOptions struct {
	Types       TypeSet `validate:"ne=0"`
	MaxOpenDirs int     `validate:"min=1"`

	// FollowRoot resolves root if it is a symlink, nested symlinks are still
	// reported as is.
	FollowRoot bool
}

type ChownConfig struct {
	Ownership     OwnershipSpec
	Recursive     bool
	NoDereference bool
	Verbose       bool
	Walk          WalkOptions
	Out           io.Writer
}

type MoveConfig struct {
	Interactive bool
	Force       bool
	Verbose     bool
	Confirmer   Confirmer
	Out         io.Writer
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("namelen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxNameLength
	}); err != nil {
		panic(err)
	}
}

// WithDefaults fills zero fields from DefaultWalkOptions and validates the result.
func (o WalkOptions) WithDefaults() (WalkOptions, error) {
	if err := mergo.Merge(&o, DefaultWalkOptions); err != nil {
		return o, fmt.Errorf("merging walk defaults: %w", err)
	}

	if err := validate.Struct(o); err != nil {
		return o, fmt.Errorf("validating walk options: %w", err)
	}

	return o, nil
}

func (c *ChownConfig) Default() error {
	walk, err := c.Walk.WithDefaults()
	if err != nil {
		return err
	}
	c.Walk = walk

	if c.Out == nil {
		c.Out = os.Stdout
	}

	return nil
}

func (c *MoveConfig) Default() {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Confirmer == nil {
		c.Confirmer = NewConfirmer(os.Stdin, os.Stderr)
	}
}
