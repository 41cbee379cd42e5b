package config

const (
	defaultDataDir        = "~/.local/share/sortd"
	defaultLogDir         = "~/.local/share/sortd/logs"
	defaultMapFile        = "~/.config/sortd/extension_map.json"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultRenameAttempts = 1000
	defaultHashChunkBytes = 64 * 1024
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			MapFile: defaultMapFile,
		},
		Organize: Organize{
			RenameAttempts: defaultRenameAttempts,
			HashChunkBytes: defaultHashChunkBytes,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
