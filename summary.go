// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts

import (
	"fmt"
	"math"

	"github.com/petenewcomb/perfcharts/internal/table"
	"golang.org/x/perf/benchmath"
	"golang.org/x/perf/benchunit"
)

// SummaryConfidence is the confidence level of the intervals reported by
// SummarizeRelative.
const SummaryConfidence = 0.95

// Summary is the distribution of one relative performance column across all
// input sizes.
type Summary struct {
	Column string
	benchmath.Summary
}

// String formats the median with its interval as percentages of the median.
func (s Summary) String() string {
	return formatSummary(&s.Summary)
}

// SummarizeRelative returns the median and confidence interval of the
// parallel and optimized relative columns. Columns holding non-finite values
// are left out, as is everything when the table has no rows.
func SummarizeRelative(t *table.Table) ([]Summary, error) {
	var summaries []Summary
	if t.Len() == 0 {
		return summaries, nil
	}
	thresholds := benchmath.DefaultThresholds
	for _, name := range []string{ColParallelRelative, ColOptimizedRelative} {
		values, err := t.Float64s(name)
		if err != nil {
			return nil, err
		}
		if !allFinite(values) {
			continue
		}
		sample := benchmath.NewSample(values, &thresholds)
		summaries = append(summaries, Summary{
			Column:  name,
			Summary: benchmath.AssumeNothing.Summary(sample, SummaryConfidence),
		})
	}
	return summaries, nil
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func formatRatio(n, d float64) string {
	switch {
	case d == 0:
		if n == 0 {
			return "0%"
		}
		return fmt.Sprintf("%.2g", n)
	case math.Abs(n/d) < 1:
		return fmt.Sprintf("%.2g%%", math.Round(100*n/d))
	default:
		return fmt.Sprintf("%.2gx", n/d)
	}
}

func formatSummary(s *benchmath.Summary) string {
	center := benchunit.Scale(s.Center, benchunit.Decimal)
	plus := formatRatio(s.Hi-s.Center, s.Center)
	minus := formatRatio(s.Center-s.Lo, s.Center)
	if plus == minus {
		return fmt.Sprintf("%s +/-%s", center, plus)
	}
	return fmt.Sprintf("%s +%s -%s", center, plus, minus)
}
