// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts_test

import (
	"math"
	"strings"
	"testing"

	"github.com/petenewcomb/perfcharts"
	"github.com/petenewcomb/perfcharts/internal/table"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const header = "Input Size,Sequential Time,Parallel Time,Optimized Parallel Time,Parallel Speedup,Optimized Speedup\n"

const report = header +
	"100,1e-05,2.1e-05,1.5e-05,0.47619,0.666667\n" +
	"1000,0.000112,0.000143,9.8e-05,0.783217,1.14286\n" +
	"10000,0.001401,0.000812,0.000511,1.72537,2.74168\n" +
	"100000,0.017345,0.006134,0.003411,2.82768,5.08502\n"

func readTable(t require.TestingT, csv string) *table.Table {
	tbl, err := table.Read(strings.NewReader(csv))
	require.NoError(t, err)
	return tbl
}

func values(t require.TestingT, tbl *table.Table, name string) []float64 {
	v, err := tbl.Float64s(name)
	require.NoError(t, err)
	return v
}

func TestAddRelativeColumns(t *testing.T) {
	tbl := readTable(t, header+"100,10,2,1,5,10\n")
	require.NoError(t, perfcharts.AddRelativeColumns(tbl))

	require.Equal(t, []float64{1}, values(t, tbl, perfcharts.ColSequentialRelative))
	require.Equal(t, []float64{5}, values(t, tbl, perfcharts.ColParallelRelative))
	require.Equal(t, []float64{10}, values(t, tbl, perfcharts.ColOptimizedRelative))

	baseline, err := tbl.Column(perfcharts.ColSequentialRelative)
	require.NoError(t, err)
	require.Equal(t, table.Int, baseline.Kind)
	require.Equal(t, "1", baseline.Label(0))

	// Appended after the loaded columns.
	names := tbl.Names()
	require.Equal(t, []string{
		perfcharts.ColSequentialRelative,
		perfcharts.ColParallelRelative,
		perfcharts.ColOptimizedRelative,
	}, names[len(names)-3:])
}

func TestAddRelativeColumnsZeroDenominator(t *testing.T) {
	tbl := readTable(t, header+"100,10,0,1,0,0\n200,0,0,0,0,0\n")
	require.NoError(t, perfcharts.AddRelativeColumns(tbl))

	par := values(t, tbl, perfcharts.ColParallelRelative)
	require.True(t, math.IsInf(par[0], 1))
	require.True(t, math.IsNaN(par[1]))

	opt := values(t, tbl, perfcharts.ColOptimizedRelative)
	require.Equal(t, 10.0, opt[0])
	require.True(t, math.IsNaN(opt[1]))
}

func TestAddRelativeColumnsMissingColumn(t *testing.T) {
	tbl := readTable(t, "Input Size,Sequential Time,Parallel Time\n100,10,2\n")
	err := perfcharts.AddRelativeColumns(tbl)
	require.ErrorIs(t, err, table.ErrMissingColumn)
	require.ErrorContains(t, err, perfcharts.ColOptimizedTime)

	// Nothing was appended.
	require.Equal(t, []string{"Input Size", "Sequential Time", "Parallel Time"}, tbl.Names())
}

func TestAddRelativeColumnsIsRepeatable(t *testing.T) {
	first := readTable(t, report)
	second := readTable(t, report)
	require.NoError(t, perfcharts.AddRelativeColumns(first))
	require.NoError(t, perfcharts.AddRelativeColumns(second))
	require.NoError(t, perfcharts.AddRelativeColumns(second))

	for _, name := range []string{
		perfcharts.ColSequentialRelative,
		perfcharts.ColParallelRelative,
		perfcharts.ColOptimizedRelative,
	} {
		a, b := values(t, first, name), values(t, second, name)
		require.Len(t, b, len(a))
		for i := range a {
			require.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]), "%s[%d]", name, i)
		}
	}
	require.Len(t, second.Names(), len(first.Names()))
}

func TestAddRelativeColumnsProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rows := rapid.IntRange(0, 40).Draw(t, "rows")
		timeGen := rapid.Float64Range(1e-9, 1e4)

		tbl := table.New(rows)
		seq := make([]float64, rows)
		par := make([]float64, rows)
		opt := make([]float64, rows)
		sizes := make([]float64, rows)
		for i := 0; i < rows; i++ {
			sizes[i] = float64(i + 1)
			seq[i] = timeGen.Draw(t, "seq")
			par[i] = timeGen.Draw(t, "par")
			opt[i] = timeGen.Draw(t, "opt")
		}
		require.NoError(t, tbl.Set(perfcharts.ColInputSize, table.Int, sizes))
		require.NoError(t, tbl.Set(perfcharts.ColSequentialTime, table.Float, seq))
		require.NoError(t, tbl.Set(perfcharts.ColParallelTime, table.Float, par))
		require.NoError(t, tbl.Set(perfcharts.ColOptimizedTime, table.Float, opt))

		require.NoError(t, perfcharts.AddRelativeColumns(tbl))
		require.Equal(t, rows, tbl.Len())

		baseline := values(t, tbl, perfcharts.ColSequentialRelative)
		parRel := values(t, tbl, perfcharts.ColParallelRelative)
		optRel := values(t, tbl, perfcharts.ColOptimizedRelative)
		for i := 0; i < rows; i++ {
			require.Equal(t, 1.0, baseline[i])
			require.InEpsilon(t, seq[i]/par[i], parRel[i], 1e-12)
			require.InEpsilon(t, seq[i]/opt[i], optRel[i], 1e-12)
		}

		// Source columns pass through untouched.
		require.Equal(t, seq, values(t, tbl, perfcharts.ColSequentialTime))
		require.Equal(t, sizes, values(t, tbl, perfcharts.ColInputSize))
	})
}
