package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const environmentDevelopment = "development"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string        `env:"DATABASE_URL,required"`
	Environment         string        `env:"ENVIRONMENT" envDefault:"production"`
	SecretKey           string        `env:"SECRET_KEY,required,notEmpty"`
	EmailSecret         string        `env:"EMAIL_SECRET,required,notEmpty"`
	EmailUser           string        `env:"EMAIL_USER"`
	AppName             string        `env:"APP_NAME" envDefault:"Whatsapp Group Manager"`
	ConfirmationBaseURL string        `env:"CONFIRMATION_BASE_URL" envDefault:"http://localhost:3001/confirmation"`
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	SMTPHost            string        `env:"SMTP_HOST"`
	SMTPPort            int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser            string        `env:"SMTP_USER"`
	SMTPPass            string        `env:"SMTP_PASS"`
	SMTPUseTLS          bool          `env:"SMTP_USE_TLS" envDefault:"false"`
	MailTimeout         time.Duration `env:"MAIL_TIMEOUT" envDefault:"30s"`
	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPassword       string        `env:"REDIS_PASSWORD"`
	RedisDB             int           `env:"REDIS_DB" envDefault:"0"`
	SignInMaxAttempts   int           `env:"SIGNIN_MAX_ATTEMPTS" envDefault:"10"`
	SignInWindow        time.Duration `env:"SIGNIN_WINDOW" envDefault:"15m"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsDevelopment indica si el servicio corre en ambiente de desarrollo.
// En desarrollo la cookie de sesion no se marca como Secure.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), environmentDevelopment)
}
