package overmark

// DefaultMaxSourceSize caps the annotated source size unless overridden.
const DefaultMaxSourceSize = 8 << 20

// Option configures transform behavior.
type Option func(*transformConfig)

type transformConfig struct {
	maxSource int
	noRefs    bool
	locator   BoundaryLocator
}

func (cfg *transformConfig) maxSourceSize() int {
	if cfg.maxSource > 0 {
		return cfg.maxSource
	}
	return DefaultMaxSourceSize
}

// WithMaxSourceSize overrides the source size cap in bytes. Values <= 0
// keep the default.
func WithMaxSourceSize(n int) Option {
	return func(cfg *transformConfig) {
		cfg.maxSource = n
	}
}

// WithoutRefs suppresses annotation reference output.
func WithoutRefs(suppress bool) Option {
	return func(cfg *transformConfig) {
		cfg.noRefs = suppress
	}
}

// WithBoundaryLocator replaces the format's default boundary locator.
func WithBoundaryLocator(loc BoundaryLocator) Option {
	return func(cfg *transformConfig) {
		cfg.locator = loc
	}
}
