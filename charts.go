// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts

import (
	"fmt"

	"github.com/petenewcomb/perfcharts/internal/chart"
	"github.com/petenewcomb/perfcharts/internal/table"
)

// Output file names.
const (
	ExecutionTimeFile       = "execution_time_comparison.png"
	SpeedupFile             = "speedup_comparison.png"
	RelativePerformanceFile = "relative_performance_comparison.png"
)

type seriesSpec struct {
	label  string
	column string
	marker chart.Marker
}

// lineSeries pairs each named column with the input sizes.
func lineSeries(t *table.Table, specs ...seriesSpec) ([]chart.Series, error) {
	sizes, err := t.Float64s(ColInputSize)
	if err != nil {
		return nil, err
	}
	series := make([]chart.Series, len(specs))
	for i, spec := range specs {
		y, err := t.Float64s(spec.column)
		if err != nil {
			return nil, err
		}
		series[i] = chart.Series{
			Label:  spec.label,
			Marker: spec.marker,
			X:      sizes,
			Y:      y,
		}
	}
	return series, nil
}

// ExecutionTimeChart plots the three execution time columns against input
// size on log-log axes.
func ExecutionTimeChart(t *table.Table) (*chart.Chart, error) {
	series, err := lineSeries(t,
		seriesSpec{"Sequential", ColSequentialTime, chart.Circle},
		seriesSpec{"Parallel", ColParallelTime, chart.Square},
		seriesSpec{"Optimized Parallel", ColOptimizedTime, chart.Triangle},
	)
	if err != nil {
		return nil, err
	}
	return &chart.Chart{
		Kind:       chart.Line,
		Title:      "Execution Time Comparison",
		XAxisLabel: "Input Size",
		YAxisLabel: "Execution Time (seconds)",
		XLog:       true,
		YLog:       true,
		Series:     series,
		FileName:   ExecutionTimeFile,
	}, nil
}

// SpeedupChart plots the speedup columns of the report against input size,
// with a reference line at the sequential baseline.
func SpeedupChart(t *table.Table) (*chart.Chart, error) {
	series, err := lineSeries(t,
		seriesSpec{"Parallel Speedup", ColParallelSpeedup, chart.Circle},
		seriesSpec{"Optimized Speedup", ColOptimizedSpeedup, chart.Square},
	)
	if err != nil {
		return nil, err
	}
	return &chart.Chart{
		Kind:       chart.Line,
		Title:      "Speedup Comparison",
		XAxisLabel: "Input Size",
		YAxisLabel: "Speedup",
		XLog:       true,
		Series:     series,
		References: []chart.Reference{{Y: 1, Label: "Baseline (Sequential)"}},
		FileName:   SpeedupFile,
	}, nil
}

// RelativePerformanceChart groups the relative performance columns by input
// size. AddRelativeColumns must have been applied to t.
func RelativePerformanceChart(t *table.Table) (*chart.Chart, error) {
	sizes, err := t.Column(ColInputSize)
	if err != nil {
		return nil, err
	}
	categories := make([]string, t.Len())
	for i := range categories {
		categories[i] = sizes.Label(i)
	}

	specs := []seriesSpec{
		{label: "Sequential", column: ColSequentialRelative},
		{label: "Parallel", column: ColParallelRelative},
		{label: "Optimized Parallel", column: ColOptimizedRelative},
	}
	series := make([]chart.Series, len(specs))
	for i, spec := range specs {
		y, err := t.Float64s(spec.column)
		if err != nil {
			return nil, fmt.Errorf("relative performance: %w", err)
		}
		series[i] = chart.Series{Label: spec.label, Y: y}
	}

	return &chart.Chart{
		Kind:       chart.GroupedBar,
		Title:      "Relative Performance Comparison",
		XAxisLabel: "Input Size",
		YAxisLabel: "Relative Performance",
		Series:     series,
		Categories: categories,
		BarWidth:   chart.DefaultBarWidth,
		FileName:   RelativePerformanceFile,
	}, nil
}
