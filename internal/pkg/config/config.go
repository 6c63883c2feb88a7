package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Paths     PathsConfig     `mapstructure:"paths"`
	Geocoder  GeocoderConfig  `mapstructure:"geocoder"`
	Overpass  OverpassConfig  `mapstructure:"overpass"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	NATS      NATSConfig      `mapstructure:"nats"`
}

type PathsConfig struct {
	ThemesDir  string `mapstructure:"themes_dir"`
	PostersDir string `mapstructure:"posters_dir"`
}

type GeocoderConfig struct {
	URL       string `mapstructure:"url"`
	UserAgent string `mapstructure:"user_agent"`
	Timeout   int    `mapstructure:"timeout"`
}

// TimeoutDuration returns the request timeout.
func (g GeocoderConfig) TimeoutDuration() time.Duration {
	return time.Duration(g.Timeout) * time.Second
}

type OverpassConfig struct {
	URL     string `mapstructure:"url"`
	Timeout int    `mapstructure:"timeout"`
}

// TimeoutDuration returns the request timeout.
func (o OverpassConfig) TimeoutDuration() time.Duration {
	return time.Duration(o.Timeout) * time.Second
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TempoAddr   string `mapstructure:"tempo_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

type MetricsConfig struct {
	PushgatewayURL string `mapstructure:"pushgateway_url"`
}

// NATSConfig configures the optional poster event publisher. An empty URL
// disables it.
type NATSConfig struct {
	URL     string `mapstructure:"url"`
	Subject string `mapstructure:"subject"`
}

// Load reads configuration from file and environment variables. file may
// be empty, in which case mapposter.yaml is looked up in . and ./configs.
func Load(service, file string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("paths.themes_dir", "themes")
	v.SetDefault("paths.posters_dir", "posters")
	v.SetDefault("geocoder.url", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocoder.user_agent", "map_poster_generator")
	v.SetDefault("geocoder.timeout", 30)
	v.SetDefault("overpass.url", "https://overpass-api.de/api/interpreter")
	v.SetDefault("overpass.timeout", 180)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.tempo_addr", "localhost:4317")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("metrics.pushgateway_url", "")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject", "mapposter.poster.generated")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		// Config file (optional)
		v.SetConfigName("mapposter")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		_ = v.ReadInConfig() // OK if missing
	}

	// Environment variables: MAPPOSTER_PATHS_THEMES_DIR → paths.themes_dir
	v.SetEnvPrefix("MAPPOSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Paths.ThemesDir == "" {
		errs = append(errs, "paths.themes_dir is required")
	}
	if c.Paths.PostersDir == "" {
		errs = append(errs, "paths.posters_dir is required")
	}
	if c.Geocoder.URL == "" {
		errs = append(errs, "geocoder.url is required")
	}
	if c.Geocoder.UserAgent == "" {
		errs = append(errs, "geocoder.user_agent is required")
	}
	if c.Geocoder.Timeout <= 0 {
		errs = append(errs, "geocoder.timeout must be positive")
	}
	if c.Overpass.URL == "" {
		errs = append(errs, "overpass.url is required")
	}
	if c.Overpass.Timeout <= 0 {
		errs = append(errs, "overpass.timeout must be positive")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Telemetry.Enabled && c.Telemetry.TempoAddr == "" {
		errs = append(errs, "telemetry.tempo_addr is required when telemetry is enabled")
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		errs = append(errs, "nats.subject is required when nats.url is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
