package histlog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger with the built configuration.
func (b *Builder) Build() (Logger, error) {
	if b.err != nil {
		return Logger{}, b.err
	}
	return New(b.cfg)
}

// File sets the active log file path.
func (b *Builder) File(path string) *Builder {
	b.cfg.File = path
	return b
}

// MaxFileSize sets the rotation threshold in bytes.
func (b *Builder) MaxFileSize(size int64) *Builder {
	b.cfg.MaxFileSize = size
	return b
}

// MaxFileSizeKB sets the rotation threshold in KiB. Convenience.
func (b *Builder) MaxFileSizeKB(size int64) *Builder {
	b.cfg.MaxFileSize = size << 10
	return b
}

// MaxFileSizeMB sets the rotation threshold in MiB. Convenience.
func (b *Builder) MaxFileSizeMB(size int64) *Builder {
	b.cfg.MaxFileSize = size << 20
	return b
}

// TimestampFormat sets the layout used for on-disk timestamps.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// CreateDirs controls parent directory creation on first open.
func (b *Builder) CreateDirs(create bool) *Builder {
	b.cfg.CreateDirs = create
	return b
}

// FromFile replaces the builder's configuration with one loaded from a
// TOML file. Later chained setters still apply on top of it.
func (b *Builder) FromFile(path string) *Builder {
	if b.err != nil {
		return b
	}
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg = cfg
	return b
}

// Example usage:
// logger, err := histlog.NewBuilder().
//
//	File("/var/log/app/app.log").
//	MaxFileSizeMB(5).
//	Build()
//
// if err == nil {
//
//	 logger, _ = logger.Info("Logger initialized successfully")
//
// }
