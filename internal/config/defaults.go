package config

const (
	defaultCatalogPath     = "~/.local/share/movievault/movies.txt"
	defaultInitialCapacity = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Path:            defaultCatalogPath,
			InitialCapacity: defaultInitialCapacity,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
