package app

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// Database drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Notification sinks.
const (
	NotifierLog = "log"
	NotifierSES = "ses"
)

type Config struct {
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"` // Required: HMAC key for bearer tokens
	JWTTTL    time.Duration `env:"JWT_TTL"     envDefault:"432000s"`
	Issuer    string        `env:"AUTH_ISSUER" envDefault:"accounts"`

	AppName        string `env:"APP_NAME"        envDefault:"Accounts"`              // Shown in invite mails
	AppURL         string `env:"APP_URL"         envDefault:"http://localhost:3000"` // Base of registration and reset links
	BootstrapToken string `env:"BOOTSTRAP_TOKEN"`                                    // Optional: enables POST /api/v1/bootstrap

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"` // sqlite or memory
	DatabaseFile   string `env:"DATABASE_FILE"   envDefault:"accounts.db"`

	Notifier     string `env:"NOTIFIER"       envDefault:"log"` // log or ses
	SESRegion    string `env:"SES_REGION"     envDefault:"ap-southeast-2"`
	MailFrom     string `env:"MAIL_FROM"`
	MailFromName string `env:"MAIL_FROM_NAME"`

	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every setting that cannot work.
func (c Config) Validate() error {
	var errs []error

	if len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}

	if u, err := url.Parse(c.AppURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("APP_URL must be an absolute URL, got %q", c.AppURL))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	switch c.Notifier {
	case NotifierLog:
	case NotifierSES:
		if c.MailFrom == "" {
			errs = append(errs, errors.New("MAIL_FROM is required for the ses notifier"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown NOTIFIER %q", c.Notifier))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}

	return errors.Join(errs...)
}
