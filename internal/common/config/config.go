package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Config is the application configuration, loaded once from a JSON file.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Consul    ConsulConfig    `json:"consul"`
	Jaeger    JaegerConfig    `json:"jaeger"`
	Log       LogConfig       `json:"log"`
	Agent     AgentConfig     `json:"agent"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

type ServerConfig struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DatabaseConfig selects the backing store. Driver is "mysql" or "sqlite";
// Path is only used by sqlite.
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	Path     string `json:"path"`
	MaxIdle  int    `json:"max_idle"`
	MaxOpen  int    `json:"max_open"`
}

type ConsulConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
}

type JaegerConfig struct {
	Enabled  bool    `json:"enabled"`
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // sampling rate 0.0-1.0
}

type LogConfig struct {
	Backend string `json:"backend"` // logrus, zap
	Level   string `json:"level"`   // debug, info, warn, error
	Format  string `json:"format"`  // json, text
	Output  string `json:"output"`  // stdout, file
	Path    string `json:"path"`
}

// AgentConfig drives the conversational agent CLI. The Gemini API key is
// read from the GOOGLE_API_KEY environment variable, never from the file.
type AgentConfig struct {
	APIBaseURL string `json:"api_base_url"`
	Model      string `json:"model"`
	MaxResults int    `json:"max_results"`
}

type RateLimitConfig struct {
	Enabled    bool  `json:"enabled"`
	Capacity   int64 `json:"capacity"`
	RefillRate int64 `json:"refill_rate"` // tokens per second
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// Load reads the config file once; a missing file falls back to defaults.
func Load(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = Default()

		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}
		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
		}
	})
	if err != nil {
		return nil, err
	}
	return globalConfig, nil
}

// Get returns the global config, defaults if Load was never called.
func Get() *Config {
	if globalConfig == nil {
		return Default()
	}
	return globalConfig
}

// Default is the development configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "inventory-service",
			Host: "0.0.0.0",
			Port: 8000,
		},
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "root",
			Database: "inventory",
			Path:     "inventory.db",
			MaxIdle:  10,
			MaxOpen:  100,
		},
		Consul: ConsulConfig{
			Enabled: false,
			Host:    "localhost",
			Port:    8500,
		},
		Jaeger: JaegerConfig{
			Enabled:  false,
			Endpoint: "localhost:6831",
			Sampler:  1.0,
		},
		Log: LogConfig{
			Backend: "logrus",
			Level:   "debug",
			Format:  "text",
			Output:  "stdout",
			Path:    "logs/app.log",
		},
		Agent: AgentConfig{
			APIBaseURL: "http://127.0.0.1:8000",
			Model:      "gemini-1.5-pro",
			MaxResults: 5,
		},
		RateLimit: RateLimitConfig{
			Enabled:    true,
			Capacity:   100,
			RefillRate: 50,
		},
	}
}
