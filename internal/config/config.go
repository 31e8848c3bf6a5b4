package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is constructed once at
// process start and passed down unchanged; nothing mutates it afterwards.
type Config struct {
	Addon    AddonConfig    `mapstructure:"addon"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metadata MetadataConfig `mapstructure:"metadata"`
}

// AddonConfig holds the addon's public identity.
type AddonConfig struct {
	// HostName is the public host the addon is reachable at. A bare host is
	// normalized to an https URL, matching how deep links are built.
	HostName string `mapstructure:"host_name"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// MetadataConfig holds configuration for all metadata providers.
type MetadataConfig struct {
	TMDB   TMDBConfig   `mapstructure:"tmdb"`
	TVDB   TVDBConfig   `mapstructure:"tvdb"`
	OMDB   OMDBConfig   `mapstructure:"omdb"`
	Fanart FanartConfig `mapstructure:"fanart"`
}

// TMDBConfig holds TMDB API configuration.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Timeout      int    `mapstructure:"timeout"`
}

// TVDBConfig holds TheTVDB API configuration.
type TVDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Timeout      int    `mapstructure:"timeout"`
}

// OMDBConfig holds OMDb API configuration.
type OMDBConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// FanartConfig holds fanart.tv API configuration.
type FanartConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Addon: AddonConfig{
			HostName: "http://localhost:7000",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Metadata: MetadataConfig{
			TMDB: TMDBConfig{
				BaseURL:      "https://api.themoviedb.org/3",
				ImageBaseURL: "https://image.tmdb.org/t/p",
				Timeout:      10,
			},
			TVDB: TVDBConfig{
				BaseURL:      "https://api4.thetvdb.com/v4",
				ImageBaseURL: "https://artworks.thetvdb.com",
				Timeout:      10,
			},
			OMDB: OMDBConfig{
				BaseURL: "https://www.omdbapi.com/",
				Timeout: 10,
			},
			Fanart: FanartConfig{
				BaseURL: "https://webservice.fanart.tv/v3",
				Timeout: 10,
			},
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.aiometa")
	}

	v.SetEnvPrefix("AIOMETA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults + env vars
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Addon.HostName = NormalizeHost(cfg.Addon.HostName)

	return cfg, nil
}

// NormalizeHost ensures a host name carries a scheme. Bare hosts default to
// https, matching how the public addon URL is advertised.
func NormalizeHost(host string) string {
	if host == "" || strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "https://" + host
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("addon.host_name", def.Addon.HostName)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.path", "")

	v.SetDefault("metadata.tmdb.api_key", "")
	v.SetDefault("metadata.tmdb.base_url", def.Metadata.TMDB.BaseURL)
	v.SetDefault("metadata.tmdb.image_base_url", def.Metadata.TMDB.ImageBaseURL)
	v.SetDefault("metadata.tmdb.timeout", def.Metadata.TMDB.Timeout)

	v.SetDefault("metadata.tvdb.api_key", "")
	v.SetDefault("metadata.tvdb.base_url", def.Metadata.TVDB.BaseURL)
	v.SetDefault("metadata.tvdb.image_base_url", def.Metadata.TVDB.ImageBaseURL)
	v.SetDefault("metadata.tvdb.timeout", def.Metadata.TVDB.Timeout)

	v.SetDefault("metadata.omdb.api_key", "")
	v.SetDefault("metadata.omdb.base_url", def.Metadata.OMDB.BaseURL)
	v.SetDefault("metadata.omdb.timeout", def.Metadata.OMDB.Timeout)

	v.SetDefault("metadata.fanart.api_key", "")
	v.SetDefault("metadata.fanart.base_url", def.Metadata.Fanart.BaseURL)
	v.SetDefault("metadata.fanart.timeout", def.Metadata.Fanart.Timeout)
}
