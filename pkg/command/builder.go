package command

import (
	"fmt"

	"github.com/notjagan/moveset/pkg/model"
	"github.com/notjagan/moveset/pkg/report"
	"github.com/rs/zerolog"
)

type Builder struct {
	model   *model.Model
	printer *report.Printer
	logger  zerolog.Logger
}

func NewBuilder(mdl *model.Model, printer *report.Printer, logger zerolog.Logger) *Builder {
	return &Builder{
		model:   mdl,
		printer: printer,
		logger:  logger,
	}
}

func (builder *Builder) Close() error {
	err := builder.model.Close()
	if err != nil {
		return fmt.Errorf("error while closing model for command builder: %w", err)
	}

	return nil
}

func (builder *Builder) Coverage() *Coverage {
	return &Coverage{
		model:   builder.model,
		printer: builder.printer,
		logger:  builder.logger.With().Str("command", "coverage").Logger(),
	}
}
