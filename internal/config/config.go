package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, so server.port is
// read from ALIHBAHASA_SERVER_PORT
const EnvPrefix = "ALIHBAHASA"

// Config holds every runtime setting of the gateway
type Config struct {
	Server    ServerConfig   `mapstructure:"server"`
	Upload    UploadConfig   `mapstructure:"upload"`
	Timeouts  TimeoutConfig  `mapstructure:"timeouts"`
	OCR       ProviderConfig `mapstructure:"ocr"`
	STT       ProviderConfig `mapstructure:"stt"`
	Translate ProviderConfig `mapstructure:"translate"`
	Google    GoogleConfig   `mapstructure:"google"`
	Gemini    LLMConfig      `mapstructure:"gemini"`
	OpenAI    LLMConfig      `mapstructure:"openai"`
	Auth      AuthConfig     `mapstructure:"auth"`
	Log       LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type UploadConfig struct {
	Dir           string        `mapstructure:"dir"`
	MaxBytes      int64         `mapstructure:"max_bytes"`
	MaxAge        time.Duration `mapstructure:"max_age"`
	PurgeInterval time.Duration `mapstructure:"purge_interval"`
}

type TimeoutConfig struct {
	Recognition time.Duration `mapstructure:"recognition"`
	Translation time.Duration `mapstructure:"translation"`
}

type ProviderConfig struct {
	Provider string `mapstructure:"provider"`
}

type GoogleConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
}

// LLMConfig configures a chat-completion backed translator
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Provider names accepted per capability
var (
	OCRProviders       = []string{"google", "tesseract", "mock"}
	STTProviders       = []string{"google", "mock"}
	TranslateProviders = []string{"google", "gemini", "openai", "mock"}
)

var logLevels = []string{"debug", "info", "warn", "error"}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_bytes", int64(32<<20))
	v.SetDefault("upload.max_age", time.Hour)
	v.SetDefault("upload.purge_interval", 10*time.Minute)
	v.SetDefault("timeouts.recognition", 30*time.Second)
	v.SetDefault("timeouts.translation", 15*time.Second)
	v.SetDefault("ocr.provider", "google")
	v.SetDefault("stt.provider", "google")
	v.SetDefault("translate.provider", "google")
	v.SetDefault("google.credentials_file", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "")
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 30*24*time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

// Load reads .env (if present), then the optional config file at path, then
// environment overrides, and validates the result
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Vendor variables the SDKs document are accepted as well
	_ = v.BindEnv("gemini.api_key", EnvPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY")
	_ = v.BindEnv("openai.api_key", EnvPrefix+"_OPENAI_API_KEY", "OPENAI_API_KEY")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// PORT is what most hosting platforms inject
	if port := os.Getenv("PORT"); port != "" && os.Getenv(EnvPrefix+"_SERVER_PORT") == "" {
		cfg.Server.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Upload.Dir == "" {
		return fmt.Errorf("upload.dir is required")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive, got %d", c.Upload.MaxBytes)
	}
	if c.Upload.MaxAge <= 0 {
		return fmt.Errorf("upload.max_age must be positive, got %s", c.Upload.MaxAge)
	}
	if c.Upload.PurgeInterval <= 0 {
		return fmt.Errorf("upload.purge_interval must be positive, got %s", c.Upload.PurgeInterval)
	}
	if c.Timeouts.Recognition <= 0 {
		return fmt.Errorf("timeouts.recognition must be positive, got %s", c.Timeouts.Recognition)
	}
	if c.Timeouts.Translation <= 0 {
		return fmt.Errorf("timeouts.translation must be positive, got %s", c.Timeouts.Translation)
	}
	if err := oneOf("ocr.provider", c.OCR.Provider, OCRProviders); err != nil {
		return err
	}
	if err := oneOf("stt.provider", c.STT.Provider, STTProviders); err != nil {
		return err
	}
	if err := oneOf("translate.provider", c.Translate.Provider, TranslateProviders); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, logLevels); err != nil {
		return err
	}
	return nil
}

// AuthEnabled reports whether API routes require a bearer token
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != ""
}

func oneOf(key, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", key, strings.Join(allowed, ", "), value)
}
