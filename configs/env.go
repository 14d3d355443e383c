package configs

import (
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	Environment     string
}

var Env *EnvConfig

func init() {
	v := viper.New()
	v.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault(v, "APPLICATION_NAME", "go-weather"),
		Environment:     getStringOrDefault(v, "ENVIRONMENT", "local"),
	}
}

// IsLocal reports whether the app runs outside a deployed environment.
func (e *EnvConfig) IsLocal() bool {
	return e.Environment == "local"
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
