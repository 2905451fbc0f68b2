// Package config handles application configuration using Viper.
// Viper supports YAML files, environment variables, and defaults — merged in priority order.
// Go convention: configuration is loaded into structs, not accessed as raw key-value pairs.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration struct. Nested structs organize related settings.
// `mapstructure` tags tell Viper how to map YAML/env keys to struct fields.
//
// The whole struct is built once at startup and handed to the server and CLI
// by pointer. Nothing mutates it afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	CORS     CORSConfig     `mapstructure:"cors"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Research ResearchConfig `mapstructure:"research"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"` // 0 = no limit; model calls can take minutes
}

type CORSConfig struct {
	AllowOrigin  string   `mapstructure:"allow_origin"`
	AllowMethods []string `mapstructure:"allow_methods"`
	AllowHeaders []string `mapstructure:"allow_headers"`
	MaxAge       int      `mapstructure:"max_age"`
}

type LLMConfig struct {
	// Provider selects the model backend: "gemini", "anthropic" or "openai".
	Provider  string          `mapstructure:"provider"`
	MaxTokens int             `mapstructure:"max_tokens"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
}

type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // empty = SDK default endpoint
}

type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // empty = SDK default endpoint
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // empty = SDK default endpoint
}

type ResearchConfig struct {
	// DegradePersonErrors applies the company/market failure policy to person
	// research as well: model errors become research text instead of a 500.
	DegradePersonErrors bool `mapstructure:"degrade_person_errors"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// envBindings maps config keys to the well-known environment variables that
// hosting platforms and SDKs use. The RESEARCH_ prefixed form is listed first
// so it wins when both are set.
var envBindings = map[string][]string{
	"llm.gemini.api_key":    {"RESEARCH_LLM_GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"llm.anthropic.api_key": {"RESEARCH_LLM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
	"llm.openai.api_key":    {"RESEARCH_LLM_OPENAI_API_KEY", "OPENAI_API_KEY"},
	"server.port":           {"RESEARCH_SERVER_PORT", "PORT"},
}

// Load reads configuration from a YAML file and environment variables.
// In Go, functions return errors as the last return value — callers must check them.
// This pattern replaces try/catch: if err != nil { handle it }.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults — these apply when neither file nor env provides a value
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.write_timeout", "0s")
	v.SetDefault("cors.allow_origin", "*")
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Content-Type", "Authorization", "X-Requested-With"})
	v.SetDefault("cors.max_age", 3600)
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.max_tokens", 8192)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", "gemini-1.5-pro")
	v.SetDefault("llm.gemini.base_url", "")
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("llm.anthropic.base_url", "")
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", "gpt-4o")
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("research.degrade_person_errors", false)
	v.SetDefault("log.level", "info")

	// Read from YAML config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Read config file (ignore "not found" — defaults + env are enough)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && configPath != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Environment variables override everything.
	// RESEARCH_ prefix + nested keys: RESEARCH_LLM_PROVIDER=openai → llm.provider=openai
	v.SetEnvPrefix("RESEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envBindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	// Unmarshal into our Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Address returns the listen address string like "0.0.0.0:8080".
// This is a method on ServerConfig — Go attaches methods to types via receiver syntax.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
