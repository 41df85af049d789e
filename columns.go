// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts

// Columns read from the report.
const (
	ColInputSize        = "Input Size"
	ColSequentialTime   = "Sequential Time"
	ColParallelTime     = "Parallel Time"
	ColOptimizedTime    = "Optimized Parallel Time"
	ColParallelSpeedup  = "Parallel Speedup"
	ColOptimizedSpeedup = "Optimized Speedup"
)

// Columns appended by AddRelativeColumns.
const (
	ColSequentialRelative = "Sequential Relative"
	ColParallelRelative   = "Parallel Relative"
	ColOptimizedRelative  = "Optimized Relative"
)
