package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port string

	TelegramBotToken string
	AdminChatID      int64

	// Если задан, бот работает через вебхук вместо поллинга.
	WebhookURL string

	// Активный движок генерации: gemini | gpt
	Engine       string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	RendererURL string
	ImagesURL   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Стартовый баланс нового пользователя.
	StartTokens int64
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("env %s: %v", k, err)
	}
	return n
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: mustEnv("TELEGRAM_BOT_TOKEN"),
		AdminChatID:      getEnvInt64("ADMIN_CHAT_ID", 0),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),

		Engine:       getEnv("LLM_ENGINE", "gemini"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		RendererURL: mustEnv("RENDERER_URL"),
		ImagesURL:   getEnv("IMAGES_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       int(getEnvInt64("REDIS_DB", 0)),

		StartTokens: getEnvInt64("START_TOKENS", 500),
	}
}
