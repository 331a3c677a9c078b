package config

import "github.com/spf13/pflag"

// RegisterFlags adds one flag per configuration key. Flags only take effect
// when set explicitly, so their defaults here are for --help.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("port", "3000", "HTTP listen port")
	fs.String("db-driver", "sqlite", "database driver: sqlite, mysql or postgres")
	fs.String("db-dsn", "data/absenteeism.db", "database DSN or sqlite file path")
	fs.String("prediction-url", DefaultPredictionURL, "prediction service endpoint")
	fs.String("absence-endpoint", "", "absence ingestion endpoint (default http://127.0.0.1:<port>/api/add_absence)")
	fs.Duration("request-timeout", 0, "timeout for outbound requests (default 15s)")
	fs.String("dashboard-url", DefaultDashboardURL, "analytics dashboard URL")
	fs.Bool("dashboard-embedded", true, "embed the dashboard in an iframe")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or json")
}
