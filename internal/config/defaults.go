package config

const (
	defaultCatalogPath = "~/.local/share/substation/catalog.db"
	defaultLogDir      = "~/.local/share/substation/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultBOMPolicy   = "preserve"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogPath: defaultCatalogPath,
			LogDir:      defaultLogDir,
		},
		Output: Output{
			AutoFill: true,
			BOM:      defaultBOMPolicy,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
