// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package perfcharts

import (
	"github.com/petenewcomb/perfcharts/internal/chart"
	"go.uber.org/zap"
)

// DefaultConfig reads the report from the working directory and writes the
// charts next to it as 12x6 inch, 300 DPI images.
var DefaultConfig = Config{
	InputPath: "complete_performance_report.csv",
	OutputDir: ".",
	Output:    chart.DefaultOutput,
}

// Config names the report to read and where and how the charts are written.
type Config struct {
	// InputPath names the report to load.
	InputPath string

	// OutputDir is where the chart images are written.
	OutputDir string

	// Output sets the image size and resolution.
	Output chart.Output

	// Logger receives progress records. Nil means zap.L().
	Logger *zap.Logger
}

func (c *Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.L()
}
