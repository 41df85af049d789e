// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package perfcharts turns a sorting benchmark report into three comparison
// charts: absolute execution time, speedup over the sequential baseline, and
// relative performance per input size.
//
// The report is a comma-delimited table with one row per input size and the
// columns named by the Col constants. Run loads it, renders the execution time
// and speedup charts straight from the loaded columns, appends the relative
// performance columns (see AddRelativeColumns), and renders the relative
// performance bars. Every stage runs to completion before the next starts and
// the first error ends the run; images written by earlier stages are left in
// place.
package perfcharts
