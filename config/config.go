package config

import (
	"os"
	"strings"
)

// EnvOrDefault returns the trimmed value of key, falling back to def when
// unset or blank.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// App holds the process configuration, read once at startup.
type App struct {
	Port      string
	JWTSecret string

	DBDriver string // sqlite or mysql
	DBPath   string // sqlite file
	MySQLDSN string

	ChatBaseURL      string
	ChatAPIKey       string
	ChatModel        string
	ChatSystemPrompt string
}

func Load() App {
	return App{
		Port:      EnvOrDefault("PORT", "8080"),
		JWTSecret: EnvOrDefault("JWT_SECRET", "frontdesk-dev-secret"),

		DBDriver: EnvOrDefault("DB_DRIVER", "sqlite"),
		DBPath:   EnvOrDefault("DB_PATH", "hotel.db"),
		MySQLDSN: EnvOrDefault("MYSQL_DSN", ""),

		ChatBaseURL: EnvOrDefault("CHAT_BASE_URL", "https://api.deepseek.com/v1"),
		ChatAPIKey:  EnvOrDefault("CHAT_API_KEY", ""),
		ChatModel:   EnvOrDefault("CHAT_MODEL", "deepseek-chat"),
		ChatSystemPrompt: EnvOrDefault("CHAT_SYSTEM_PROMPT",
			"You are the hotel owner dropping by the front desk for a chat with the receptionist on duty."),
	}
}
