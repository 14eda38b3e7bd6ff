package dfprop

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// PropertyFormat is the dfprop document format version understood by the resolvers.
	PropertyFormat = "1.1"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)
