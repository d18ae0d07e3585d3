package configs

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"io/fs"
	"weather-view/pkg/log"
	"weather-view/pkg/msg"
	"weather-view/pkg/resource"
)

const defaultDotEnvPath = ".env"

type EnvConfig struct {
	ApplicationName    string
	LogLevel           string
	PropertiesFilePath string
	MessagesFilePath   string
}

var Env *EnvConfig

func init() {
	Env = readEnv()
}

// Load merges the given .env files (default ".env") into the process environment without
// overriding variables that are already set, then reloads properties and messages so their
// ${NAME:default} placeholders see the new values. Missing .env files are ignored.
func Load(dotEnvPaths ...string) error {
	if len(dotEnvPaths) == 0 {
		dotEnvPaths = []string{defaultDotEnvPath}
	}

	for _, path := range dotEnvPaths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	Env = readEnv()

	if err := reload(Env.PropertiesFilePath, resource.Init); err != nil {
		return fmt.Errorf("load properties: %w", err)
	}
	if err := reload(Env.MessagesFilePath, msg.Init); err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	if Env.LogLevel != "" {
		log.SetLevel(Env.LogLevel)
	}
	return nil
}

// reload tolerates a missing file only when it is the default path.
func reload(path string, load func(string) error) error {
	if err := load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !isExplicit(path) {
			return nil
		}
		return err
	}
	return nil
}

func isExplicit(path string) bool {
	return path != defaultPropertiesPath && path != defaultMessagesPath
}

const (
	defaultPropertiesPath = "configs/application.yml"
	defaultMessagesPath   = "configs/messages.yml"
)

func readEnv() *EnvConfig {
	env := viper.New()
	env.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(env, "APPLICATION_NAME", "weather-view"),
		LogLevel:           env.GetString("LOG_LEVEL"),
		PropertiesFilePath: getStringOrDefault(env, "PROPERTIES_FILE_PATH", defaultPropertiesPath),
		MessagesFilePath:   getStringOrDefault(env, "MESSAGES_FILE_PATH", defaultMessagesPath),
	}
}

func getStringOrDefault(env *viper.Viper, key, defaultValue string) string {
	value := env.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
