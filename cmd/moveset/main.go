package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-logr/zerologr"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/notjagan/moveset/pkg/command"
	"github.com/notjagan/moveset/pkg/config"
	"github.com/notjagan/moveset/pkg/coverage"
	"github.com/notjagan/moveset/pkg/learnset"
	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/report"
	"github.com/notjagan/moveset/pkg/telemetry"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	usageTimeout = 5 * time.Second
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// a missing .env is fine
	_ = godotenv.Load()

	fs := flag.NewFlagSet("moveset", flag.ContinueOnError)
	fs.SetOutput(stderr)
	version := fs.String("v", "", "game version group, e.g. red-blue")
	pokemon := fs.String("p", "", "name of the pokemon")
	cfgPath := fs.String("config", config.Path(), "path to the TOML config file")
	debug := fs.Bool("debug", false, "log at debug level")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: moveset -v <version> -p <pokemon>\n\n")
		fs.PrintDefaults()
		printVersions(ctx, fs.Output(), *cfgPath)
	}

	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	} else if err != nil {
		return exitUsage
	}

	cfg, err := config.Read(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	runID := uuid.NewString()
	logger, err := newLogger(stderr, cfg.Log.Level, *debug, runID)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	sink := zerologr.New(&logger)
	coverage.SetLogger(sink)
	learnset.SetLogger(sink)

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, runID)
		if err != nil {
			logger.Warn().Err(err).Msg("tracing disabled")
		} else {
			defer func() {
				err := shutdown(context.WithoutCancel(ctx))
				if err != nil {
					logger.Warn().Err(err).Msg("could not flush traces")
				}
			}()
		}
	}

	src, err := openSource(ctx, cfg, runID)
	if err != nil {
		logger.Error().Err(err).Msg("could not open data source")
		return exitError
	}

	builder := command.NewBuilder(model.New(src), report.New(stdout, terminalWidth()), logger)
	defer func() {
		err := builder.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("error while closing data source")
		}
	}()

	err = builder.Coverage().Run(ctx, command.Options{Version: *version, Pokemon: *pokemon})
	if errors.Is(err, command.ErrCommandFormat) {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	} else if err != nil {
		logger.Debug().Err(err).Msg("run failed")
		fmt.Fprintln(stderr, errorMessage(err, *version, *pokemon))
		return exitError
	}

	return exitOK
}

func newLogger(w io.Writer, level string, debug bool, runID string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if debug {
		lvl = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().
		Timestamp().
		Str("run", runID).
		Logger().
		Level(lvl), nil
}

func errorMessage(err error, version, pokemon string) string {
	version = strings.ToLower(strings.TrimSpace(version))
	pokemon = strings.ToLower(strings.TrimSpace(pokemon))

	switch {
	case errors.Is(err, model.ErrInvalidVersion):
		return fmt.Sprintf("'%s' is not a valid game version. Please use '-h' to view valid options", version)
	case errors.Is(err, command.ErrUnknownPokemon):
		return fmt.Sprintf("Pokemon named '%s' not found.", pokemon)
	default:
		return err.Error()
	}
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return width
}
