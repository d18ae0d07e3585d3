package configs

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
	"weather-view/pkg/msg"
	"weather-view/pkg/resource"
)

func setValidProperties() {
	resource.Set("app.server.port", "8080")
	resource.Set("app.server.context-path", "/weather-view")
	resource.Set("app.weather.base-url", "https://api.openweathermap.org")
	resource.Set("app.weather.city", "Lagos")
	resource.Set("app.weather.api-key", "secret")
	resource.Set("app.weather.timeout", "5s")
	resource.Set("app.weather.surface-failure", "true")
}

func TestNewWeatherConfig(t *testing.T) {
	setValidProperties()

	cfg, err := NewWeatherConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/weather-view", cfg.ContextPath)
	assert.Equal(t, "Lagos", cfg.City)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.SurfaceFailure)
}

func TestNewWeatherConfig_Invalid(t *testing.T) {
	tests := map[string]struct {
		key   string
		value any
	}{
		"missing api key":  {"app.weather.api-key", ""},
		"missing city":     {"app.weather.city", ""},
		"port not numeric": {"app.server.port", "http"},
		"relative context": {"app.server.context-path", "weather"},
		"base url not url": {"app.weather.base-url", "not a url"},
		"zero timeout":     {"app.weather.timeout", "0s"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setValidProperties()
			resource.Set(tt.key, tt.value)

			cfg, err := NewWeatherConfig()
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestLoad_ResolvesPlaceholdersFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	properties := filepath.Join(dir, "application.yml")
	messages := filepath.Join(dir, "messages.yml")
	dotEnv := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(properties, []byte("app:\n  weather:\n    city: ${WV_TEST_CITY:Lagos}\n    api-key: ${WV_TEST_KEY}\n"), 0o600))
	require.NoError(t, os.WriteFile(messages, []byte("test:\n  greeting: \"hello {0}\"\n"), 0o600))
	require.NoError(t, os.WriteFile(dotEnv, []byte("WV_TEST_KEY=from-dotenv\n"), 0o600))

	t.Setenv("PROPERTIES_FILE_PATH", properties)
	t.Setenv("MESSAGES_FILE_PATH", messages)
	t.Setenv("WV_TEST_CITY", "Accra")
	t.Cleanup(func() { _ = os.Unsetenv("WV_TEST_KEY") })

	require.NoError(t, Load(dotEnv))

	assert.Equal(t, "from-dotenv", resource.GetString("app.weather.api-key"))
	assert.Equal(t, "Accra", resource.GetString("app.weather.city"))
	assert.Equal(t, "hello world", msg.GetMessage("test.greeting", "world"))
	assert.Equal(t, properties, Env.PropertiesFilePath)
}

func TestLoad_MissingDotEnvIsIgnored(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}

func TestLoad_ExplicitPropertiesMustExist(t *testing.T) {
	t.Setenv("PROPERTIES_FILE_PATH", filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}
