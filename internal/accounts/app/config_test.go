package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 432000*time.Second, cfg.JWTTTL)
	require.Equal(t, "accounts", cfg.Issuer)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "accounts.db", cfg.DatabaseFile)
	require.Equal(t, NotifierLog, cfg.Notifier)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Empty(t, cfg.BootstrapToken)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("APP_URL", "https://bartab.example.com")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("NOTIFIER", "ses")
	t.Setenv("MAIL_FROM", "noreply@example.com")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, time.Hour, cfg.JWTTTL)
	require.Equal(t, "https://bartab.example.com", cfg.AppURL)
	require.Equal(t, DriverMemory, cfg.DatabaseDriver)
	require.Equal(t, NotifierSES, cfg.Notifier)
	require.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		JWTSecret:      testSecret,
		JWTTTL:         time.Hour,
		AppURL:         "http://localhost:3000",
		DatabaseDriver: DriverSQLite,
		DatabaseFile:   "accounts.db",
		Notifier:       NotifierLog,
		Port:           8080,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT_SECRET"},
		{"zero ttl", func(c *Config) { c.JWTTTL = 0 }, "JWT_TTL"},
		{"relative app url", func(c *Config) { c.AppURL = "/signup" }, "APP_URL"},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "postgres" }, "DATABASE_DRIVER"},
		{"sqlite without file", func(c *Config) { c.DatabaseFile = "" }, "DATABASE_FILE"},
		{"unknown notifier", func(c *Config) { c.Notifier = "smtp" }, "NOTIFIER"},
		{"ses without sender", func(c *Config) { c.Notifier = NotifierSES }, "MAIL_FROM"},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "PORT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
