package database

import (
	"fmt"

	"go-weather/pkg/resource"
)

// Config holds the Postgres connection settings shared by the sql and gorm stores.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
	SSLMode  string
}

// ConfigFromProperties reads app.db.* from application.yml.
func ConfigFromProperties() Config {
	return Config{
		Host:     resource.GetStringOr("app.db.host", "localhost"),
		Port:     resource.GetStringOr("app.db.port", "5432"),
		Username: resource.GetStringOr("app.db.username", "postgres"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetStringOr("app.db.database", "weather"),
		Schema:   resource.GetStringOr("app.db.schema", "public"),
		SSLMode:  resource.GetStringOr("app.db.ssl-mode", "disable"),
	}
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema)
}
