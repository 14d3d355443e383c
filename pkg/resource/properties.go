package resource

import (
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	props      = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// init loads .env and application properties from YAML
func init() {
	_ = godotenv.Load()

	value, ok := os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}
	if _, err := os.Stat(value); err != nil {
		log.Printf("Properties file %s not found, using defaults", value)
		return
	}
	if err := Init(value); err != nil {
		log.Printf("Fail to read properties: %v", err)
	}
}

// Init reads the YAML file and resolves ${ENV:default} placeholders in string values.
func Init(filepath string) error {
	v := viper.New()
	v.SetConfigFile(filepath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)

	mu.Lock()
	defer mu.Unlock()
	for key, value := range resolved {
		props.Set(key, value)
	}
	return nil
}

// SetDefault registers a fallback used when the key is absent from the file.
func SetDefault(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	props.SetDefault(key, value)
}

// Set overrides a property at runtime.
func Set(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	props.Set(key, value)
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} occurrence with the env value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	mu.RLock()
	defer mu.RUnlock()
	return props.Get(key)
}

func IsSet(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return props.IsSet(key)
}

func GetString(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetString(key)
}

// GetStringOr returns fallback when the key is missing or empty.
func GetStringOr(key, fallback string) string {
	if value := GetString(key); value != "" {
		return value
	}
	return fallback
}

func GetBool(key string) bool {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetDuration(key)
}

// GetDurationOr returns fallback when the key is missing or not positive.
func GetDurationOr(key string, fallback time.Duration) time.Duration {
	if value := GetDuration(key); value > 0 {
		return value
	}
	return fallback
}

func GetInt(key string) int {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetInt(key)
}

// GetIntOr returns fallback when the key is missing or zero.
func GetIntOr(key string, fallback int) int {
	if value := GetInt(key); value != 0 {
		return value
	}
	return fallback
}

func GetInt64(key string) int64 {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetInt64(key)
}

func GetFloat64(key string) float64 {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	mu.RLock()
	defer mu.RUnlock()
	return props.GetStringSlice(key)
}
