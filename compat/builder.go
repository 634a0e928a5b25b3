package compat

import (
	"github.com/lixenwraith/histlog"
)

// Builder provides a flexible way to create configured logger adapters
// for gnet and fasthttp. It can use an existing histlog.Logger value or
// create a new one from a *histlog.Config.
type Builder struct {
	logger histlog.Logger
	seeded bool
	logCfg *histlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger value to seed the adapters.
// Its accumulated history carries over into the adapter's holder.
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l histlog.Logger) *Builder {
	b.logger = l
	b.seeded = true
	return b
}

// WithConfig provides a configuration for a new logger value.
// This is used only if an existing logger is NOT provided via WithLogger.
// If neither WithLogger nor WithConfig is used, a default logger will be created.
func (b *Builder) WithConfig(cfg *histlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (histlog.Logger, error) {
	if b.err != nil {
		return histlog.Logger{}, b.err
	}

	if b.seeded {
		return b.logger, nil
	}

	// Create a new logger value; a nil config means defaults
	l, err := histlog.New(b.logCfg)
	if err != nil {
		b.err = err
		return histlog.Logger{}, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	b.seeded = true
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the seed logger value, initializing it if needed
func (b *Builder) GetLogger() (histlog.Logger, error) {
	return b.getLogger()
}
