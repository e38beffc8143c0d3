package config

import (
	"os"
	"strconv"
)

// Config структура конфигурации приложения
type Config struct {
	Server struct {
		Port        int
		Host        string
		Environment string
	}
	Storage struct {
		UploadDir   string
		MaxUploadMB int64 // максимальный размер одной загрузки в мегабайтах
	}
	Map struct {
		DefaultLat      float64 // центр карты при отсутствии данных
		DefaultLon      float64
		DefaultZoom     int // масштаб при отсутствии данных
		TrackZoom       int // масштаб при наличии точек
		VideoMarkerStep int // каждая N-я точка телеметрии получает маркер
	}
	Logging struct {
		Level string
	}
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() *Config {
	cfg := &Config{}

	// Конфигурация сервера
	cfg.Server.Port = getEnvInt("SERVER_PORT", 8087)
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Environment = getEnv("ENVIRONMENT", "development")

	// Конфигурация хранилища загрузок
	cfg.Storage.UploadDir = getEnv("UPLOAD_FOLDER", "uploads")
	cfg.Storage.MaxUploadMB = int64(getEnvInt("MAX_UPLOAD_MB", 500))

	// Конфигурация карты
	cfg.Map.DefaultLat = getEnvFloat("DEFAULT_LAT", 43.65)
	cfg.Map.DefaultLon = getEnvFloat("DEFAULT_LON", -79.38)
	cfg.Map.DefaultZoom = getEnvInt("DEFAULT_ZOOM", 12)
	cfg.Map.TrackZoom = getEnvInt("TRACK_ZOOM", 15)
	cfg.Map.VideoMarkerStep = getEnvInt("VIDEO_MARKER_STEP", 30)

	// Конфигурация логирования
	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")

	return cfg
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает int значение переменной окружения или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает float значение переменной окружения или возвращает значение по умолчанию
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
