package conv2d

import (
	"fmt"
	"strings"
)

// Layout selects how strided output is sized.
type Layout int

const (
	// LayoutSparse sizes every output row like its input row and leaves
	// cells skipped by the stride at zero. Unvisited rows are all zero.
	LayoutSparse Layout = iota

	// LayoutCompact keeps only visited cells: ceil(rows/rs) rows, each
	// ceil(len(row)/cs) long.
	LayoutCompact
)

// String returns the lower-case layout name.
func (l Layout) String() string {
	switch l {
	case LayoutSparse:
		return "sparse"
	case LayoutCompact:
		return "compact"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout converts a layout name to a Layout. The empty string selects
// LayoutSparse.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sparse":
		return LayoutSparse, nil
	case "compact":
		return LayoutCompact, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Config defines driver settings.
type Config struct {
	// Workers is the number of goroutines evaluating output rows.
	// Values <= 1 run sequentially on the caller's goroutine.
	Workers int
	Layout  Layout
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sequential evaluation with sparse output.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Layout:  LayoutSparse,
	}
}

// WithWorkers sets the number of row workers.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithLayout sets the output layout.
func WithLayout(layout Layout) Option {
	return func(cfg *Config) {
		if layout == LayoutSparse || layout == LayoutCompact {
			cfg.Layout = layout
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
