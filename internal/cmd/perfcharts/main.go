// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Command perfcharts reads complete_performance_report.csv from the working
// directory and writes execution_time_comparison.png, speedup_comparison.png,
// and relative_performance_comparison.png next to it.
package main

import (
	"context"
	"log"

	"github.com/petenewcomb/perfcharts"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	if err := perfcharts.Run(context.Background(), perfcharts.DefaultConfig); err != nil {
		logger.Fatal("Generating charts failed", zap.Error(err))
	}
}
