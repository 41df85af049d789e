// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts_test

import (
	"strings"
	"testing"

	"github.com/petenewcomb/perfcharts"
	"github.com/petenewcomb/perfcharts/internal/table"
	"github.com/stretchr/testify/require"
	"golang.org/x/perf/benchmath"
)

func TestSummarizeRelative(t *testing.T) {
	tbl := readTable(t, header+
		"100,2,1,1,2,2\n"+
		"200,8,2,1,4,8\n"+
		"300,6,1,2,6,3\n")
	require.NoError(t, perfcharts.AddRelativeColumns(tbl))

	summaries, err := perfcharts.SummarizeRelative(tbl)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	require.Equal(t, perfcharts.ColParallelRelative, summaries[0].Column)
	require.Equal(t, 4.0, summaries[0].Center)
	require.Equal(t, perfcharts.ColOptimizedRelative, summaries[1].Column)
	require.Equal(t, 3.0, summaries[1].Center)
}

func TestSummarizeRelativeSkipsNonFinite(t *testing.T) {
	tbl := readTable(t, header+"100,2,0,1,0,2\n200,4,1,2,4,2\n")
	require.NoError(t, perfcharts.AddRelativeColumns(tbl))

	summaries, err := perfcharts.SummarizeRelative(tbl)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, perfcharts.ColOptimizedRelative, summaries[0].Column)
}

func TestSummarizeRelativeEmpty(t *testing.T) {
	tbl := readTable(t, header)
	require.NoError(t, perfcharts.AddRelativeColumns(tbl))

	summaries, err := perfcharts.SummarizeRelative(tbl)
	require.NoError(t, err)
	require.Empty(t, summaries)
}

func TestSummarizeRelativeMissingColumns(t *testing.T) {
	_, err := perfcharts.SummarizeRelative(readTable(t, report))
	require.ErrorIs(t, err, table.ErrMissingColumn)
}

func TestSummaryString(t *testing.T) {
	s := perfcharts.Summary{
		Column:  perfcharts.ColParallelRelative,
		Summary: benchmath.Summary{Center: 4, Lo: 4, Hi: 4},
	}
	require.True(t, strings.HasSuffix(s.String(), " +/-0%"), s.String())

	s.Summary = benchmath.Summary{Center: 4, Lo: 3, Hi: 6}
	require.True(t, strings.HasSuffix(s.String(), " +50% -25%"), s.String())
}
