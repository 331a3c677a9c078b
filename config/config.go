package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPredictionURL = "https://matiasrodriguezc-mi-api-absentismo.hf.space/predict"
	DefaultDashboardURL  = "https://public.tableau.com/views/Absenteeism_17618499926350/Dashboard1?:embed=y&:display_count=yes&:showVizHome=no"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port string

	DBDriver string // sqlite, mysql or postgres
	DBDSN    string

	PredictionURL   string
	AbsenceEndpoint string
	RequestTimeout  time.Duration

	DashboardURL      string
	DashboardEmbedded bool

	LogLevel  string
	LogFormat string
}

// Keys double as environment variable names (upper-cased) and, with
// underscores turned into dashes, as command-line flag names.
var keys = []string{
	"port",
	"db_driver",
	"db_dsn",
	"prediction_url",
	"absence_endpoint",
	"request_timeout",
	"dashboard_url",
	"dashboard_embedded",
	"log_level",
	"log_format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3000")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("db_dsn", "data/absenteeism.db")
	v.SetDefault("prediction_url", DefaultPredictionURL)
	v.SetDefault("absence_endpoint", "")
	v.SetDefault("request_timeout", "15s")
	v.SetDefault("dashboard_url", DefaultDashboardURL)
	v.SetDefault("dashboard_embedded", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// Load reads .env (if present), the process environment and any flags in
// flags that were set explicitly, in increasing order of precedence.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range keys {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	cfg := Config{
		Port:              v.GetString("port"),
		DBDriver:          strings.ToLower(v.GetString("db_driver")),
		DBDSN:             v.GetString("db_dsn"),
		PredictionURL:     v.GetString("prediction_url"),
		AbsenceEndpoint:   v.GetString("absence_endpoint"),
		RequestTimeout:    v.GetDuration("request_timeout"),
		DashboardURL:      v.GetString("dashboard_url"),
		DashboardEmbedded: v.GetBool("dashboard_embedded"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
	}
	if cfg.AbsenceEndpoint == "" {
		cfg.AbsenceEndpoint = fmt.Sprintf("http://127.0.0.1:%s/api/add_absence", cfg.Port)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("%w: unknown DB_DRIVER %q", ErrInvalidConfig, c.DBDriver)
	}
	if c.PredictionURL == "" {
		return fmt.Errorf("%w: PREDICTION_URL is empty", ErrInvalidConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
