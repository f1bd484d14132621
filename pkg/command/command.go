package command

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCommandFormat  = errors.New("invalid command format")
	ErrUnknownPokemon = errors.New("unknown pokemon")
)

type Options struct {
	Version string
	Pokemon string
}

func (opt Options) normalize() Options {
	return Options{
		Version: strings.ToLower(strings.TrimSpace(opt.Version)),
		Pokemon: strings.ToLower(strings.TrimSpace(opt.Pokemon)),
	}
}

func (opt Options) validate() error {
	switch {
	case opt.Version == "":
		return fmt.Errorf("missing version: %w", ErrCommandFormat)
	case opt.Pokemon == "":
		return fmt.Errorf("missing pokemon: %w", ErrCommandFormat)
	}

	return nil
}
