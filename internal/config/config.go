package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	JWT        JWTConfig        `yaml:"jwt"`
	Log        LogConfig        `yaml:"log"`
	Moderation ModerationConfig `yaml:"moderation"`
	Engagement EngagementConfig `yaml:"engagement"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// ModerationConfig holds the prohibited-word list. An empty list falls back
// to the built-in defaults.
type ModerationConfig struct {
	ProhibitedWords []string `yaml:"prohibited_words"`
}

// EngagementConfig holds engagement limits
type EngagementConfig struct {
	DailyLikeLimit   int `yaml:"daily_like_limit"`
	MessageMaxLength int `yaml:"message_max_length"`
	ReplyMaxLength   int `yaml:"reply_max_length"`
	NotificationCap  int `yaml:"notification_cap"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Engagement.DailyLikeLimit == 0 {
		c.Engagement.DailyLikeLimit = 50
	}
	if c.Engagement.MessageMaxLength == 0 {
		c.Engagement.MessageMaxLength = 1000
	}
	if c.Engagement.ReplyMaxLength == 0 {
		c.Engagement.ReplyMaxLength = 300
	}
	if c.Engagement.NotificationCap == 0 {
		c.Engagement.NotificationCap = 100
	}
}
