package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:homedeck.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=Local model service configuration"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News fetching and summarization configuration"`

	Feeds []FeedSource `yaml:"feeds" json:"feeds" jsonschema:"description=Named RSS sources shown in the reader"`

	Devices []DeviceConfig `yaml:"devices" json:"devices" jsonschema:"description=Controllable home PCs"`

	Power PowerConfig `yaml:"power" json:"power" jsonschema:"description=Device power control configuration"`

	Prefs struct {
		Path string `yaml:"path" json:"path" jsonschema:"default=prefs.json,description=Path of the JSON preferences document"`
	} `yaml:"prefs" json:"prefs" jsonschema:"description=User preferences storage"`
}

// LLMConfig holds settings for the locally hosted model service
type LLMConfig struct {
	Host            string        `yaml:"host" json:"host" jsonschema:"default=http://localhost:11434,description=Base URL of the model service"`
	Language        string        `yaml:"language" json:"language" jsonschema:"default=Korean,description=Language summaries are written in"`
	CheckTimeout    time.Duration `yaml:"check_timeout" json:"check_timeout" jsonschema:"default=5s,description=Timeout for availability and model list calls"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" json:"generate_timeout" jsonschema:"default=120s,description=Timeout for text generation calls"`
	GPU             GPUConfig     `yaml:"gpu" json:"gpu" jsonschema:"description=SSH access to the GPU host for hardware inventory"`
}

// GPUConfig holds SSH access settings for the machine running the model
type GPUConfig struct {
	Host    string `yaml:"host" json:"host" jsonschema:"description=GPU host address (empty disables the inventory check)"`
	User    string `yaml:"user" json:"user" jsonschema:"description=SSH user on the GPU host"`
	KeyFile string `yaml:"key_file" json:"key_file" jsonschema:"description=Path to the SSH private key"`
}

// NewsConfig holds feed reading and summarization settings
type NewsConfig struct {
	MaxItems     int           `yaml:"max_items" json:"max_items" jsonschema:"default=10,description=Entries kept per feed fetch"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=HTTP timeout for feed and article fetches"`
	MinParagraph int           `yaml:"min_paragraph" json:"min_paragraph" jsonschema:"default=40,description=Minimum paragraph length for the extraction fallback"`
	SummaryDelay time.Duration `yaml:"summary_delay" json:"summary_delay" jsonschema:"default=1s,description=Pause between model calls in the background worker"`
}

// FeedSource represents a named RSS source
type FeedSource struct {
	Name string `yaml:"name" json:"name" jsonschema:"required,description=Display name of the source"`
	URL  string `yaml:"url" json:"url" jsonschema:"required,description=RSS feed URL"`
}

// DeviceConfig represents a controllable home PC
type DeviceConfig struct {
	Name    string `yaml:"name" json:"name" jsonschema:"required,description=Device name"`
	Host    string `yaml:"host" json:"host" jsonschema:"required,description=IP address or hostname"`
	MAC     string `yaml:"mac" json:"mac" jsonschema:"description=MAC address for wake-on-lan"`
	SSHUser string `yaml:"ssh_user" json:"ssh_user" jsonschema:"description=SSH user for remote shutdown"`
}

// PowerConfig holds device power control settings
type PowerConfig struct {
	StateFile       string        `yaml:"state_file" json:"state_file" jsonschema:"default=pc_state.json,description=Path of the persisted action state file"`
	BootTimeout     time.Duration `yaml:"boot_timeout" json:"boot_timeout" jsonschema:"default=120s,description=How long a wake request is considered in progress"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" jsonschema:"default=10s,description=How long a shutdown request is considered in progress"`
	SSHKeyFile      string        `yaml:"ssh_key_file" json:"ssh_key_file" jsonschema:"description=Path to the SSH private key used for shutdown"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:homedeck.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for the model service
	if cfg.LLM.Host == "" {
		cfg.LLM.Host = "http://localhost:11434"
	}
	if cfg.LLM.Language == "" {
		cfg.LLM.Language = "Korean"
	}
	if cfg.LLM.CheckTimeout == 0 {
		cfg.LLM.CheckTimeout = 5 * time.Second
	}
	if cfg.LLM.GenerateTimeout == 0 {
		cfg.LLM.GenerateTimeout = 120 * time.Second
	}

	// set defaults for news
	if cfg.News.MaxItems == 0 {
		cfg.News.MaxItems = 10
	}
	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = 10 * time.Second
	}
	if cfg.News.MinParagraph == 0 {
		cfg.News.MinParagraph = 40
	}
	if cfg.News.SummaryDelay == 0 {
		cfg.News.SummaryDelay = time.Second
	}

	// default sources when none configured
	if len(cfg.Feeds) == 0 {
		cfg.Feeds = []FeedSource{
			{Name: "Maeil Business", URL: "https://www.mk.co.kr/rss/30000001/"},
			{Name: "GeekNews", URL: "https://news.hada.io/rss/news"},
		}
	}

	// set defaults for power control
	if cfg.Power.StateFile == "" {
		cfg.Power.StateFile = "pc_state.json"
	}
	if cfg.Power.BootTimeout == 0 {
		cfg.Power.BootTimeout = 120 * time.Second
	}
	if cfg.Power.ShutdownTimeout == 0 {
		cfg.Power.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Prefs.Path == "" {
		cfg.Prefs.Path = "prefs.json"
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate model service config
	if cfg.LLM.CheckTimeout < time.Second {
		return fmt.Errorf("llm.check_timeout must be at least 1 second")
	}
	if cfg.LLM.GenerateTimeout < time.Second {
		return fmt.Errorf("llm.generate_timeout must be at least 1 second")
	}

	// validate news config
	if cfg.News.MaxItems < 1 {
		return fmt.Errorf("news.max_items must be at least 1")
	}
	if cfg.News.MinParagraph < 0 {
		return fmt.Errorf("news.min_paragraph must be non-negative")
	}

	// validate sources
	for i, f := range cfg.Feeds {
		if f.Name == "" {
			return fmt.Errorf("feeds[%d].name is required", i)
		}
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}

	// validate devices
	for i, d := range cfg.Devices {
		if d.Name == "" {
			return fmt.Errorf("devices[%d].name is required", i)
		}
		if d.Host == "" {
			return fmt.Errorf("devices[%d].host is required", i)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns model service configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}
