package dict

import "github.com/aglyzov/go-dictionary/index"

// Tracer receives human readable reports of the tree operations.
// A *zap.SugaredLogger satisfies it.
type Tracer interface {
	Debugf(template string, args ...interface{})
}

type config struct {
	capacity int
	tracer   Tracer
	items    []Item
}

// Option configures a Dict at construction time.
type Option func(*config)

// WithCapacity sets the initial capacity of the node storage and of the
// positional index. Non-positive values select index.DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = index.DefaultCapacity
		}
		c.capacity = n
	}
}

// WithTracer installs a trace sink. Tracing is off by default.
func WithTracer(tr Tracer) Option {
	return func(c *config) {
		c.tracer = tr
	}
}

// WithItems populates a new Dict.
func WithItems(items ...Item) Option {
	return func(c *config) {
		c.items = append(c.items, items...)
	}
}
