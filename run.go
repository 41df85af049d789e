// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts

import (
	"context"
	"fmt"

	"github.com/petenewcomb/perfcharts/internal/chart"
	"github.com/petenewcomb/perfcharts/internal/table"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/petenewcomb/perfcharts"

// Run loads the report named by cfg and writes the execution time, speedup,
// and relative performance charts, in that order. It stops at the first
// failing stage and returns its error wrapped with the stage name.
func Run(ctx context.Context, cfg Config) (err error) {
	logger := cfg.logger()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "perfcharts.Run")
	defer func() { endSpan(span, err) }()

	var t *table.Table
	err = stage(ctx, "load", func(ctx context.Context) error {
		var err error
		t, err = table.Load(cfg.InputPath)
		if err != nil {
			return err
		}
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String("path", cfg.InputPath),
			attribute.Int("rows", t.Len()),
		)
		logger.Info("loaded report",
			zap.String("path", cfg.InputPath),
			zap.Int("rows", t.Len()),
			zap.Strings("columns", t.Names()))
		return nil
	})
	if err != nil {
		return err
	}

	if err := render(ctx, &cfg, logger, t, ExecutionTimeFile, ExecutionTimeChart); err != nil {
		return err
	}
	if err := render(ctx, &cfg, logger, t, SpeedupFile, SpeedupChart); err != nil {
		return err
	}

	err = stage(ctx, "derive", func(ctx context.Context) error {
		if err := AddRelativeColumns(t); err != nil {
			return err
		}
		summaries, err := SummarizeRelative(t)
		if err != nil {
			return err
		}
		for _, s := range summaries {
			logger.Info("relative performance",
				zap.String("column", s.Column),
				zap.Float64("median", s.Center),
				zap.Float64("lo", s.Lo),
				zap.Float64("hi", s.Hi),
				zap.Stringer("summary", s))
		}
		return nil
	})
	if err != nil {
		return err
	}

	return render(ctx, &cfg, logger, t, RelativePerformanceFile, RelativePerformanceChart)
}

func render(
	ctx context.Context,
	cfg *Config,
	logger *zap.Logger,
	t *table.Table,
	file string,
	build func(*table.Table) (*chart.Chart, error),
) error {
	return stage(ctx, "render "+file, func(ctx context.Context) error {
		c, err := build(t)
		if err != nil {
			return err
		}
		path, err := chart.Save(c, cfg.OutputDir, cfg.Output)
		if err != nil {
			return err
		}
		trace.SpanFromContext(ctx).SetAttributes(attribute.String("path", path))
		logger.Info("wrote chart",
			zap.String("path", path),
			zap.String("title", c.Title))
		return nil
	})
}

// stage runs f in its own span, unless ctx is already done.
func stage(ctx context.Context, name string, f func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	err := f(ctx)
	endSpan(span, err)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
