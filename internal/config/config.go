// Package config loads qapdf settings from defaults, an optional config
// file and QAPDF_-prefixed or bare environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arran4/qapdf"
	"github.com/arran4/qapdf/generate"
	"github.com/arran4/qapdf/theme"
	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the resolved configuration.
type Config struct {
	APIType       string  `mapstructure:"api_type"`
	OpenAIAPIKey  string  `mapstructure:"openai_api_key"`
	OpenAIModel   string  `mapstructure:"openai_model"`
	OpenAIBaseURL string  `mapstructure:"openai_base_url"`
	OllamaBaseURL string  `mapstructure:"ollama_base_url"`
	OllamaModel   string  `mapstructure:"ollama_model"`
	QuestionCount int     `mapstructure:"default_question_count"`
	BatchSize     int     `mapstructure:"default_batch_size"`
	Temperature   float64 `mapstructure:"default_temperature"`
	MaxTokens     int     `mapstructure:"default_max_tokens"`
	APITimeout    int     `mapstructure:"default_api_timeout"`
	ColorScheme   string  `mapstructure:"default_color_scheme"`
	OutputDir     string  `mapstructure:"default_output_dir"`
	JSONDir       string  `mapstructure:"default_json_dir"`
	LogoDir       string  `mapstructure:"logo_dir"`
	Author        string  `mapstructure:"author"`

	Fonts   qapdf.FontConfig        `mapstructure:"fonts"`
	Schemes map[string]theme.Scheme `mapstructure:"schemes"`
}

var defaults = map[string]any{
	"api_type":               "openai",
	"openai_api_key":         "",
	"openai_model":           "gpt-4o-mini",
	"openai_base_url":        generate.DefaultOpenAIBaseURL,
	"ollama_base_url":        generate.DefaultOllamaBaseURL,
	"ollama_model":           "llama3",
	"default_question_count": 20,
	"default_batch_size":     20,
	"default_temperature":    0.7,
	"default_max_tokens":     2000,
	"default_api_timeout":    900,
	"default_color_scheme":   theme.DefaultScheme,
	"default_output_dir":     "pdf",
	"default_json_dir":       "json",
	"logo_dir":               "logos",
	"author":                 "",
	"fonts.regular":          "",
	"fonts.bold":             "",
	"fonts.mono":             "",
}

// New returns a viper instance with defaults and environment binding. Every
// key may be set as KEY or QAPDF_KEY; the prefixed form wins.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("qapdf")
	v.AddConfigPath(".")
	for k, val := range defaults {
		v.SetDefault(k, val)
		env := strings.ToUpper(strings.ReplaceAll(k, ".", "_"))
		_ = v.BindEnv(k, "QAPDF_"+env, env)
	}
	return v
}

// Load reads path, or qapdf.yaml in the working directory when path is
// empty and the file exists, and unmarshals the result.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	c.APIType = strings.ToLower(strings.TrimSpace(c.APIType))
	return &c, nil
}

// Validate checks the settings used for rendering. Provider settings are
// checked only when generation is requested.
func (c *Config) Validate(forGeneration bool) error {
	var errs []error
	if c.QuestionCount <= 0 {
		errs = append(errs, fmt.Errorf("default_question_count must be positive, got %d", c.QuestionCount))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("default_batch_size must be positive, got %d", c.BatchSize))
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		errs = append(errs, fmt.Errorf("default_temperature must be between 0 and 1, got %g", c.Temperature))
	}
	if c.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("default_max_tokens must be positive, got %d", c.MaxTokens))
	}
	if c.APITimeout <= 0 {
		errs = append(errs, fmt.Errorf("default_api_timeout must be positive, got %d", c.APITimeout))
	}
	if forGeneration {
		switch c.APIType {
		case "openai":
			if strings.TrimSpace(c.OpenAIAPIKey) == "" {
				errs = append(errs, errors.New("OPENAI_API_KEY is required when api_type is openai"))
			}
		case "ollama":
			if c.OllamaModel == "" {
				errs = append(errs, errors.New("ollama_model is required when api_type is ollama"))
			}
		default:
			errs = append(errs, fmt.Errorf("api_type must be openai or ollama, got %q", c.APIType))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Provider maps the settings onto a generate.ProviderConfig.
func (c *Config) Provider() generate.ProviderConfig {
	return generate.ProviderConfig{
		Type:          c.APIType,
		OpenAIKey:     c.OpenAIAPIKey,
		OpenAIModel:   c.OpenAIModel,
		OpenAIBaseURL: c.OpenAIBaseURL,
		OllamaBaseURL: c.OllamaBaseURL,
		OllamaModel:   c.OllamaModel,
		Temperature:   c.Temperature,
		MaxTokens:     c.MaxTokens,
		Timeout:       time.Duration(c.APITimeout) * time.Second,
	}
}

// RenderOptions fills the configured parts of qapdf.Options.
func (c *Config) RenderOptions(title string) qapdf.Options {
	return qapdf.Options{
		Title:   title,
		Author:  c.Author,
		Scheme:  c.ColorScheme,
		Schemes: c.mergedSchemes(),
		Fonts:   c.Fonts,
		LogoDir: c.LogoDir,
	}
}

// mergedSchemes overlays configured schemes on the built-in table, or
// returns nil when none are configured.
func (c *Config) mergedSchemes() map[string]theme.Scheme {
	if len(c.Schemes) == 0 {
		return nil
	}
	m := theme.Builtin()
	for k, s := range c.Schemes {
		m[strings.ToLower(k)] = s
	}
	return m
}
