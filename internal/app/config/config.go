package config

import (
	"os"
	"path/filepath"

	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "medibook.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "medibook_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:     utils.GetEnvString("APP_ENV", "development"),
			Version: utils.GetEnvString("APP_VERSION", "v1.0"),
		},
		API: API{
			BaseUrl:          utils.GetEnvString("API_BASE_URL", "http://localhost:8000"),
			TimeoutInSeconds: utils.GetEnvInt("API_TIMEOUT_IN_SECONDS", 20),
		},
		Session: Session{
			Backend:  utils.GetEnvString("SESSION_BACKEND", constvars.SessionBackendFile),
			FilePath: utils.GetEnvString("SESSION_FILE_PATH", defaultSessionPath()),
		},
	}
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".medibook", "session.json")
}
