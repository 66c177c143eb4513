package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort           string        `default:"8080" envconfig:"HTTP_PORT"`
	DBHost             string        `default:"localhost" envconfig:"DB_HOST"`
	DBPort             string        `default:"5432" envconfig:"DB_PORT"`
	DBUser             string        `envconfig:"DB_USER"`
	DBPassword         string        `envconfig:"DB_PASSWORD"`
	DBName             string        `envconfig:"DB_NAME"`
	DBSslMode          string        `default:"disable" envconfig:"DB_SSLMODE"`
	DraftOrderTTL      time.Duration `default:"24h" envconfig:"DRAFT_ORDER_TTL"`
	StaleDraftSchedule string        `default:"0 */5 * * * *" envconfig:"STALE_DRAFT_SCHEDULE"`
}

// LoadConfig reads the configuration from the environment after loading the
// given .env files. Missing .env files are ignored; variables already set in
// the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// DSN builds the libpq-style connection string for gorm's postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
