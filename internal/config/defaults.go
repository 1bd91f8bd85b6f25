package config

// DefaultSlot is the storage key holding the serialized mood history.
const DefaultSlot = "mindcare-mood-history"

// DefaultAllowedOrigins are the CORS origins accepted when allow_all is off.
var DefaultAllowedOrigins = []string{
	"http://localhost:*",
	"http://127.0.0.1:*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:    "MindCare",
		Environment: EnvDevelopment,
		LogLevel:    "info",
		DataDir:     ".mindcare",
		ContentDir:  "",
		ExportDir:   "site",
		Server: ServerConfig{
			Port:           8080,
			AllowAll:       false,
			AllowedOrigins: DefaultAllowedOrigins,
		},
		Storage: StorageConfig{
			Backend: StorageSQLite,
			Slot:    DefaultSlot,
		},
		Chat: ChatConfig{
			ReplyDelayMS: 1500,
		},
	}
}
