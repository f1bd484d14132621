package command

import (
	"context"
	"fmt"

	"github.com/notjagan/moveset/pkg/model"
)

// Versions lists every version group name the source knows, for usage text.
func (builder *Builder) Versions(ctx context.Context) ([]string, error) {
	names, err := builder.model.VersionGroupNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list versions: %w", err)
	}

	return names, nil
}

func selectVersion(ctx context.Context, mdl *model.Model, name string) (int, error) {
	err := mdl.SetVersionByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("error while changing version: %w", err)
	}

	gen, err := mdl.Generation(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get generation for version %q: %w", name, err)
	}

	return gen, nil
}
