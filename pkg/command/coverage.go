package command

import (
	"context"
	"fmt"

	"github.com/notjagan/moveset/pkg/coverage"
	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/report"
	"github.com/rs/zerolog"
)

type Coverage struct {
	model   *model.Model
	printer *report.Printer
	logger  zerolog.Logger
}

// Run reports the damaging moves of opt.Pokemon in opt.Version and the four-type
// combinations that hit the most types super effectively. Nothing is printed when an
// error is returned.
func (c *Coverage) Run(ctx context.Context, opt Options) error {
	opt = opt.normalize()
	err := opt.validate()
	if err != nil {
		return err
	}

	gen, err := selectVersion(ctx, c.model, opt.Version)
	if err != nil {
		return err
	}
	logger := c.logger.With().
		Str("version", opt.Version).
		Int("generation", gen).
		Str("pokemon", opt.Pokemon).
		Logger()

	logger.Info().Msg("Getting list of available types in given version...")
	available, err := c.model.Version.AvailableTypes(ctx)
	if err != nil {
		return fmt.Errorf("could not get available types: %w", err)
	}

	logger.Info().Msg("Getting Pokemon information...")
	pokemon, err := lookupPokemon(ctx, c.model, opt.Pokemon)
	if err != nil {
		return err
	}

	logger.Info().Msg("Getting moves information...")
	types, ls, err := moveTypes(ctx, c.model, pokemon, available)
	if err != nil {
		return err
	}
	if len(types) == 0 {
		c.printer.Identity(pokemon.Name, opt.Version)
		c.printer.NoDamagingMoves(pokemon.Name)
		return c.printer.Err()
	}

	logger.Info().Msg("Checking move types...")
	result, err := c.optimize(ctx, gen, types, available)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("evaluated", result.Evaluated).
		Int("size", result.Size).
		Int("options", len(result.Options)).
		Msg("found best coverage")

	c.printer.Identity(pokemon.Name, opt.Version)
	if pokemon.SketchesEverything() {
		c.printer.Sketch()
	} else {
		c.printer.MoveTypes(pokemon.Name, types)
		c.printer.Learnset(pokemon.Name, ls)
	}
	c.printer.Options(result)

	err = c.printer.Err()
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}

	return nil
}

func (c *Coverage) optimize(ctx context.Context, gen int, types, available []string) (coverage.Result, error) {
	attacking, err := c.model.TypesByName(ctx, types)
	if err != nil {
		return coverage.Result{}, fmt.Errorf("could not get damage relations: %w", err)
	}

	chart := coverage.NewChart(gen, attacking)

	return coverage.Optimize(types, chart, coverage.NewSet(available...)), nil
}
