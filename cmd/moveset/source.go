package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/notjagan/moveset/pkg/command"
	"github.com/notjagan/moveset/pkg/config"
	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/pokeapi"
	"github.com/notjagan/moveset/pkg/pokedb"
	"github.com/notjagan/moveset/pkg/report"
	"github.com/notjagan/moveset/pkg/telemetry"
	"github.com/rs/zerolog"
)

// openSource reads from the local database when one is configured and from the API
// otherwise.
func openSource(ctx context.Context, cfg config.Config, runID string) (model.Source, error) {
	if cfg.DB.Path != "" {
		db, err := pokedb.Open(ctx, cfg.DB.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open database %q: %w", cfg.DB.Path, err)
		}
		return db, nil
	}

	tracer := telemetry.NoopTracer()
	if cfg.Telemetry.Enabled {
		tracer = telemetry.Tracer("pokeapi")
	}

	return pokeapi.New(cfg.API.BaseURL,
		pokeapi.WithTimeout(cfg.API.Timeout),
		pokeapi.WithUserAgent(cfg.API.UserAgent),
		pokeapi.WithRequestID(runID),
		pokeapi.WithTracer(tracer),
	), nil
}

func printVersions(ctx context.Context, w io.Writer, cfgPath string) {
	ctx, cancel := context.WithTimeout(ctx, usageTimeout)
	defer cancel()

	cfg, err := config.Read(cfgPath)
	if err != nil {
		return
	}

	src, err := openSource(ctx, cfg, "")
	if err != nil {
		return
	}
	builder := command.NewBuilder(model.New(src), report.New(io.Discard, 0), zerolog.Nop())
	defer builder.Close()

	names, err := builder.Versions(ctx)
	if err != nil {
		fmt.Fprintf(w, "\ncould not list valid versions: %v\n", err)
		return
	}

	fmt.Fprintf(w, "\nValid versions: %s\n", strings.Join(names, ", "))
}
