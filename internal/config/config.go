package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Lemmy    LemmyConfig    `yaml:"lemmy"`
	Feed     FeedConfig     `yaml:"feed"`
	Database DatabaseConfig `yaml:"database"`
	Sync     SyncConfig     `yaml:"sync"`
	Teams    []string       `yaml:"teams"`
	Routing  RoutingConfig  `yaml:"routing"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	LogLevel string         `yaml:"log_level"`
}

type LemmyConfig struct {
	Instance  string        `yaml:"instance"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	Community string        `yaml:"community"`
	Timeout   time.Duration `yaml:"timeout"`
}

type FeedConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type SyncConfig struct {
	Interval     time.Duration `yaml:"interval"`
	LeadMinutes  int           `yaml:"lead_minutes"`
	TrailMinutes int           `yaml:"trail_minutes"`
}

// RoutingConfig assigns game types to artifacts: types in ThreadTypes get a
// dedicated game-day thread, types in CommentTypes get a comment under the
// daily thread.
type RoutingConfig struct {
	ThreadTypes  []string `yaml:"thread_types"`
	CommentTypes []string `yaml:"comment_types"`
}

// RabbitMQConfig is optional; notifications are disabled when URL is empty.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Lemmy.Timeout == 0 {
		c.Lemmy.Timeout = 30 * time.Second
	}
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = "https://statsapi.web.nhl.com/api/v1"
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 10 * time.Second
	}
	if c.Database.Path == "" {
		c.Database.Path = "out/gdtbot.db"
	}
	if c.Sync.Interval == 0 {
		c.Sync.Interval = 30 * time.Second
	}
	if c.Sync.LeadMinutes == 0 {
		c.Sync.LeadMinutes = 60
	}
	if c.Sync.TrailMinutes == 0 {
		c.Sync.TrailMinutes = 60
	}
	if c.Routing.ThreadTypes == nil {
		c.Routing.ThreadTypes = []string{"REGULAR", "POSTSEASON"}
	}
	if c.Routing.CommentTypes == nil {
		c.Routing.CommentTypes = []string{"PRESEASON", "ALLSTAR"}
	}
	if c.RabbitMQ.URL != "" {
		if c.RabbitMQ.Exchange == "" {
			c.RabbitMQ.Exchange = "gdtbot"
		}
		if c.RabbitMQ.RoutingKey == "" {
			c.RabbitMQ.RoutingKey = "artifacts"
		}
		if c.RabbitMQ.QueueName == "" {
			c.RabbitMQ.QueueName = "gdtbot_artifacts"
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Lemmy.Instance == "" {
		return fmt.Errorf("lemmy.instance is required")
	}
	if !strings.HasPrefix(c.Lemmy.Instance, "https://") {
		return fmt.Errorf("lemmy.instance must start with https://")
	}
	if c.Lemmy.Username == "" {
		return fmt.Errorf("lemmy.username is required")
	}
	if c.Lemmy.Password == "" {
		return fmt.Errorf("lemmy.password is required")
	}
	if c.Lemmy.Community == "" {
		return fmt.Errorf("lemmy.community is required")
	}
	return nil
}
