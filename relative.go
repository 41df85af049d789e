// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts

import (
	"github.com/petenewcomb/perfcharts/internal/table"
)

// AddRelativeColumns appends the relative performance of each variant to t,
// using the sequential time of the same row as the baseline:
//
//	Sequential Relative = 1
//	Parallel Relative   = Sequential Time / Parallel Time
//	Optimized Relative  = Sequential Time / Optimized Parallel Time
//
// Zero times are not rejected. They produce +Inf, or NaN for 0/0, following
// IEEE-754 division, and the chart renderer refuses to plot those values.
// Running it again on the same table recomputes and replaces the columns.
func AddRelativeColumns(t *table.Table) error {
	seq, err := t.Float64s(ColSequentialTime)
	if err != nil {
		return err
	}
	par, err := t.Float64s(ColParallelTime)
	if err != nil {
		return err
	}
	opt, err := t.Float64s(ColOptimizedTime)
	if err != nil {
		return err
	}

	baseline := make([]float64, t.Len())
	parRel := make([]float64, t.Len())
	optRel := make([]float64, t.Len())
	for i := range baseline {
		baseline[i] = 1
		parRel[i] = seq[i] / par[i]
		optRel[i] = seq[i] / opt[i]
	}

	if err := t.Set(ColSequentialRelative, table.Int, baseline); err != nil {
		return err
	}
	if err := t.Set(ColParallelRelative, table.Float, parRel); err != nil {
		return err
	}
	return t.Set(ColOptimizedRelative, table.Float, optRel)
}
