package config

import "time"

// StorageBackend selects where the mood history slot is kept.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageFile   StorageBackend = "file"
	StorageMemory StorageBackend = "memory"
)

// Environment controls logging defaults.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config is the top-level mindcare configuration, corresponding to .mindcare.yml.
type Config struct {
	SiteName    string        `yaml:"site_name" koanf:"site_name"`
	Environment Environment   `yaml:"environment" koanf:"environment"`
	LogLevel    string        `yaml:"log_level" koanf:"log_level"`
	DataDir     string        `yaml:"data_dir" koanf:"data_dir"`
	ContentDir  string        `yaml:"content_dir" koanf:"content_dir"`
	ExportDir   string        `yaml:"export_dir" koanf:"export_dir"`
	Server      ServerConfig  `yaml:"server" koanf:"server"`
	Storage     StorageConfig `yaml:"storage" koanf:"storage"`
	Chat        ChatConfig    `yaml:"chat" koanf:"chat"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// StorageConfig holds the local key-value storage settings.
type StorageConfig struct {
	Backend StorageBackend `yaml:"backend" koanf:"backend"`
	Slot    string         `yaml:"slot" koanf:"slot"`
}

// ChatConfig holds chatbot presentation settings.
type ChatConfig struct {
	ReplyDelayMS int `yaml:"reply_delay_ms" koanf:"reply_delay_ms"`
}

// ReplyDelay is the cosmetic pause before a bot reply is shown.
func (c ChatConfig) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}
