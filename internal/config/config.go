package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port                int
	Stage               string
	LogLevel            string
	MaxUnitsSold        float64
	MaxPrice            float64
	MaxCost             float64
	ExportDir           string
	CalculatorSignature string
	TelegramBotToken    string
	TelegramChatID      string
	TelegramAPIURL      string
	OTELEndpoint        string
	OTELServiceName     string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnvInt("PORT", 8000),
		Stage:               getEnvString("STAGE", "dev"),
		LogLevel:            getEnvString("LOG_LEVEL", "INFO"),
		MaxUnitsSold:        getEnvFloat("MAX_UNITS_SOLD", 1e7),
		MaxPrice:            getEnvFloat("MAX_PRICE", 1e9),
		MaxCost:             getEnvFloat("MAX_COST", 1e9),
		ExportDir:           getEnvString("EXPORT_DIR", "exports"),
		CalculatorSignature: getEnvString("CALCULATOR_SIGNATURE", "@MaksimovWB"),
		TelegramBotToken:    getEnvString("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      getEnvString("TELEGRAM_CHAT_ID", ""),
		TelegramAPIURL:      getEnvString("TELEGRAM_API_URL", "https://api.telegram.org"),
		OTELEndpoint:        getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:     getEnvString("OTEL_SERVICE_NAME", "unit-economics-server"),
	}

	return cfg, nil
}

// TelegramEnabled сообщает, задан ли бот для отправки результатов
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
