package config

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Config struct {
	TelegramToken string
	DBPath        string
	VoskModelPath string // пусто — Vosk не используется
	OpenAIToken   string // пусто — Whisper не используется
	TempDir       string
}

func Load() Config {
	return Config{
		TelegramToken: getBotToken(),
		DBPath:        getenv("DB_PATH", DBPath),
		VoskModelPath: os.Getenv("VOSK_MODEL_PATH"),
		OpenAIToken:   os.Getenv("OPENAI_API_KEY"),
		TempDir:       getenv("TEMP_DIR", os.TempDir()),
	}
}

func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		token := strings.TrimSpace(string(data))
		if token != "" {
			return token
		}
	}
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token != "" {
		return token
	}
	log.Fatal("❌ Токен не найден: отсутствует и Docker Secret, и переменная окружения")
	return ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

const (
	DBPath = "bot.db"
)
