// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBarChartDataRange(t *testing.T) {
	bc, err := newBarChart([]float64{3, -1, 5}, 0.2)
	require.NoError(t, err)
	bc.Offset = 0.2

	xmin, xmax, ymin, ymax := bc.DataRange()
	require.InDelta(t, 0.1, xmin, 1e-12)
	require.InDelta(t, 2.3, xmax, 1e-12)
	require.Equal(t, -1.0, ymin)
	require.Equal(t, 5.0, ymax)
}

func TestBarChartCopiesValues(t *testing.T) {
	values := []float64{1, 2}
	bc, err := newBarChart(values, 0.2)
	require.NoError(t, err)
	values[0] = 9
	require.Equal(t, []float64{1, 2}, bc.Values)
}

func TestNewBarChartErrors(t *testing.T) {
	_, err := newBarChart([]float64{1}, 0)
	require.Error(t, err)

	_, err = newBarChart([]float64{1, math.NaN()}, 0.2)
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestFormatRelative(t *testing.T) {
	require.Equal(t, "1.00x", formatRelative(1))
	require.Equal(t, "5.00x", formatRelative(5))
	require.Equal(t, "0.48x", formatRelative(0.47619))
	require.Equal(t, "0.005x", formatRelative(0.005))
	require.Equal(t, "250x", formatRelative(250))
	require.Equal(t, "0", formatRelative(0))
}
