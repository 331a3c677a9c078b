package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory, so no .env is picked up,
// with every configuration variable blanked.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range keys {
		t.Setenv(strings.ToUpper(key), "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, DefaultPredictionURL, cfg.PredictionURL)
	assert.Equal(t, "http://127.0.0.1:3000/api/add_absence", cfg.AbsenceEndpoint)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.DashboardEmbedded)
	assert.Equal(t, ":3000", cfg.Addr())
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "8081")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/absenteeism")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("DASHBOARD_EMBEDDED", "false")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "http://127.0.0.1:8081/api/add_absence", cfg.AbsenceEndpoint)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.DashboardEmbedded)
}

func TestLoad_FlagsOverrideEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("PREDICTION_URL", "http://env.example/predict")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("prediction-url", "", "")
	flags.String("port", "", "")
	require.NoError(t, flags.Parse([]string{"--prediction-url", "http://flag.example/predict"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "http://flag.example/predict", cfg.PredictionURL)
	assert.Equal(t, "3000", cfg.Port, "unset flag does not shadow the default")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown driver", env: map[string]string{"DB_DRIVER": "oracle"}},
		{name: "zero timeout", env: map[string]string{"REQUEST_TIMEOUT": "0s"}},
		{name: "bad log level", env: map[string]string{"LOG_LEVEL": "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConnectDB_SQLiteMemory(t *testing.T) {
	db, err := ConnectDB(Config{DBDriver: "sqlite", DBDSN: ":memory:"})
	require.NoError(t, err)

	assert.NoError(t, Ping(db))
	assert.True(t, db.Migrator().HasTable("absence_events"))
	assert.True(t, db.Migrator().HasTable("prediction_logs"))
}

func TestSetupLogger(t *testing.T) {
	assert.NoError(t, SetupLogger(Config{LogLevel: "debug", LogFormat: "json"}))
	assert.ErrorIs(t, SetupLogger(Config{LogLevel: "nope"}), ErrInvalidConfig)
}

func TestRegisterFlags(t *testing.T) {
	isolate(t)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"--request-timeout", "2s", "--dashboard-embedded=false", "--db-driver", "postgres"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.DashboardEmbedded)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DefaultPredictionURL, cfg.PredictionURL)
}
