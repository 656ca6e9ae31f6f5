package dataset

import (
	"log/slog"

	perfstat "github.com/jamesainslie/go-perfstat"
)

// Option configures a loader.
type Option func(*config)

type config struct {
	columns perfstat.Columns
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		columns: perfstat.DefaultColumns(),
		logger:  slog.Default(),
	}
}

// WithColumns sets the label and score columns (default: label 1, score 2).
func WithColumns(label, score int) Option {
	return func(c *config) {
		if label >= 0 && score >= 0 && label != score {
			c.columns.Label = label
			c.columns.Score = score
		}
	}
}

// WithExactColumns requires every line to have exactly n fields (default: no check).
func WithExactColumns(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.columns.Exact = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
