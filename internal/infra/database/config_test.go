package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: "5433", Username: "u", Password: "p", Database: "w", Schema: "s", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=w sslmode=require search_path=s", cfg.DSN())
}

func TestConfigFromPropertiesDefaults(t *testing.T) {
	cfg := ConfigFromProperties()
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
}
