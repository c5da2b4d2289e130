package builder

// BuilderOption customizes a builderConfig before a Constructor runs.
// Later options override earlier ones, applied in the order passed to
// newBuilderConfig.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the element-naming scheme and bipartite partition
// prefixes shared by every topology Constructor in this package.
type builderConfig struct {
	idFn        IDFn
	leftPrefix  string
	rightPrefix string
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  "L",
		rightPrefix: "R",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme overrides the index -> element naming function. A nil
// idFn is a no-op, leaving the default in place.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithPartitionPrefix sets the left/right element prefixes used by
// CompleteBipartite. Empty values leave the corresponding default ("L"
// or "R") in place.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		if left != "" {
			cfg.leftPrefix = left
		}
		if right != "" {
			cfg.rightPrefix = right
		}
	}
}
