package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

// PlatformFeed describes where a platform's public activity feed lives and
// how to pick posts out of its HTML.
type PlatformFeed struct {
	FeedURL      string `yaml:"feed_url"`      // template, {handle} is replaced
	PostSelector string `yaml:"post_selector"` // one match per post
	TextSelector string `yaml:"text_selector"` // relative to the post node, empty = node text
	LinkSelector string `yaml:"link_selector"` // relative to the post node, href is read
	UserAgent    string `yaml:"user_agent"`
}

type Config struct {
	Server struct {
		Host       string `yaml:"host"`
		Port       int    `yaml:"port"`
		Addr       string `yaml:"-"` // computed after load
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Driver          string `yaml:"driver"` // mysql | postgres | sqlite
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		SSLMode         string `yaml:"sslmode"`
		Path            string `yaml:"path"`              // sqlite file, ":memory:" allowed
		DSN             string `yaml:"-"`                 // computed after load
		MaxOpenConns    int    `yaml:"max_open_conns"`    // max open connections
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // max idle connections
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // minutes
	} `yaml:"database"`
	Monitor struct {
		Concurrency      int `yaml:"concurrency"`        // profiles processed in parallel
		SampleTimeoutSec int `yaml:"sample_timeout_sec"` // per-profile sampler deadline
		RunTimeoutSec    int `yaml:"run_timeout_sec"`    // whole run deadline
		MaxPostsPerRun   int `yaml:"max_posts_per_run"`  // per profile
	} `yaml:"monitor"`
	Sampler struct {
		Platforms map[string]PlatformFeed `yaml:"platforms"`
	} `yaml:"sampler"`
	OpenAI struct {
		APIKey    string `yaml:"api_key"`
		BaseURL   string `yaml:"base_url"`
		Model     string `yaml:"model"`
		MaxTokens int    `yaml:"max_tokens"`
	} `yaml:"openai"`
	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		APIEndpoint string `yaml:"api_endpoint"`
	} `yaml:"telegram"`
	Auth struct {
		Mode         string            `yaml:"mode"` // static | remote
		StaticTokens map[string]string `yaml:"static_tokens"`
		UserURL      string            `yaml:"user_url"`
		APIKey       string            `yaml:"api_key"`
		TimeoutSec   int               `yaml:"timeout_sec"`
	} `yaml:"auth"`
	Limits struct {
		MaxProfiles       int `yaml:"max_profiles"`
		DefaultDailyLimit int `yaml:"default_daily_limit"`
	} `yaml:"limits"`
}

// SampleTimeout is the per-profile sampling deadline.
func (c *Config) SampleTimeout() time.Duration {
	return time.Duration(c.Monitor.SampleTimeoutSec) * time.Second
}

// RunTimeout is the deadline of a whole monitoring run.
func (c *Config) RunTimeout() time.Duration {
	return time.Duration(c.Monitor.RunTimeoutSec) * time.Second
}

// Load reads .env, then CONFIG_PATH (or config.yaml), then applies env overrides.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := LoadFile(path)
	if err != nil {
		log.Printf("config: %v, falling back to environment variables", err)
		cfg = &Config{}
		cfg.finalize()
	}
	return cfg
}

// LoadFile parses a YAML file and finalizes it with env overrides and defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.finalize()
	return &cfg, nil
}

func (c *Config) finalize() {
	c.applyEnv()
	c.applyDefaults()
	c.Server.Addr = fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
	if c.DB.DSN == "" {
		c.DB.DSN = c.buildDSN()
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		c.DB.Driver = v
	}
	if v := os.Getenv("DATABASE_USERNAME"); v != "" {
		c.DB.Username = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		c.DB.Password = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.DB.DSN = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.BotToken = v
	}
	if v := os.Getenv("AUTH_API_KEY"); v != "" {
		c.Auth.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = "*"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	if c.DB.Driver == "" {
		c.DB.Driver = "mysql"
	}
	if c.DB.Charset == "" {
		c.DB.Charset = "utf8mb4"
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.DB.MaxOpenConns <= 0 {
		c.DB.MaxOpenConns = 50
	}
	if c.DB.MaxIdleConns <= 0 {
		c.DB.MaxIdleConns = 10
	}
	if c.DB.ConnMaxLifetime <= 0 {
		c.DB.ConnMaxLifetime = 60
	}
	if c.Monitor.Concurrency <= 0 {
		c.Monitor.Concurrency = 4
	}
	if c.Monitor.SampleTimeoutSec <= 0 {
		c.Monitor.SampleTimeoutSec = 10
	}
	if c.Monitor.RunTimeoutSec <= 0 {
		c.Monitor.RunTimeoutSec = 120
	}
	if c.Monitor.MaxPostsPerRun <= 0 {
		c.Monitor.MaxPostsPerRun = 20
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.MaxTokens <= 0 {
		c.OpenAI.MaxTokens = 200
	}
	if c.Auth.Mode == "" {
		c.Auth.Mode = "static"
	}
	if c.Auth.TimeoutSec <= 0 {
		c.Auth.TimeoutSec = 5
	}
	if c.Limits.MaxProfiles <= 0 {
		c.Limits.MaxProfiles = 50
	}
	if c.Limits.DefaultDailyLimit <= 0 {
		c.Limits.DefaultDailyLimit = 100
	}
}

func (c *Config) buildDSN() string {
	switch c.DB.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.DB.Host, c.DB.Port, c.DB.Username, c.DB.Password, c.DB.Database, c.DB.SSLMode)
	case "sqlite":
		path := c.DB.Path
		if path == "" || path == ":memory:" {
			return "file::memory:?_pragma=foreign_keys(1)"
		}
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	default:
		if c.DB.Host == "" {
			return ""
		}
		// parseTime is required to scan DATETIME columns into time.Time
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=true",
			c.DB.Username,
			c.DB.Password,
			c.DB.Host,
			c.DB.Port,
			c.DB.Database,
			c.DB.Charset)
	}
}
