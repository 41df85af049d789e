// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package chart

import (
	"fmt"
	"math"
)

// formatRelative labels a bar whose height is a multiple of a baseline.
func formatRelative(v float64) string {
	switch {
	case v == 0:
		return "0"
	case math.Abs(v) < 0.01:
		return fmt.Sprintf("%.2gx", v)
	case math.Abs(v) >= 100:
		return fmt.Sprintf("%.0fx", v)
	default:
		return fmt.Sprintf("%.2fx", v)
	}
}
