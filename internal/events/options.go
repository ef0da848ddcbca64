package events

import "go.uber.org/zap"

// DefaultMaxDepth bounds nested emission.
const DefaultMaxDepth = 64

type busConfig struct {
	logger       *zap.Logger
	errorHandler func(Name, error)
	maxDepth     int
}

func defaultBusConfig() busConfig {
	return busConfig{
		logger:   zap.NewNop(),
		maxDepth: DefaultMaxDepth,
	}
}

// BusOption configures a Bus.
type BusOption func(*busConfig)

// WithLogger sets the logger used for handler failures.
func WithLogger(logger *zap.Logger) BusOption {
	return func(c *busConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorHandler sets a hook called for every handler failure and dropped event.
func WithErrorHandler(fn func(Name, error)) BusOption {
	return func(c *busConfig) {
		c.errorHandler = fn
	}
}

// WithMaxDepth sets how deep emits may nest before events are dropped.
func WithMaxDepth(depth int) BusOption {
	return func(c *busConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}
