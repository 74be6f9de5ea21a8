package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StoreConfig struct {
	Backend  string `yaml:"backend" validate:"required|in:file,s3,dynamodb"`
	Dir      string `yaml:"dir"`
	Compress bool   `yaml:"compress"`
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Table    string `yaml:"table"`
}

type MirrorConfig struct {
	Enabled bool   `yaml:"enabled"`
	Bucket  string `yaml:"bucket"`
	Prefix  string `yaml:"prefix"`
	Region  string `yaml:"region"`
}

// CollectorOverride adjusts a single statistic type away from the
// collector defaults. A zero Interval or HistoryLimit means "inherit".
type CollectorOverride struct {
	Interval     time.Duration `yaml:"interval"`
	HistoryLimit int           `yaml:"historyLimit"`
}

type CollectorConfig struct {
	Interval     time.Duration                `yaml:"interval" validate:"required|min:1"`
	Timezone     string                       `yaml:"timezone"`
	HistoryLimit int                          `yaml:"historyLimit"`
	Types        []string                     `yaml:"types"`
	Overrides    map[string]CollectorOverride `yaml:"overrides"`
}

type BoardConfig struct {
	Enabled       bool   `yaml:"enabled"`
	FilePath      string `yaml:"filePath"`
	AllowedOrigin string `yaml:"allowedOrigin"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server          `yaml:"webServer"`
	Store     StoreConfig     `yaml:"store"`
	Mirror    MirrorConfig    `yaml:"mirror"`
	Collector CollectorConfig `yaml:"collector"`
	Board     BoardConfig     `yaml:"board"`
	Logger    LoggerConfig    `yaml:"logger"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}
