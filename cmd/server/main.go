package main

import (
	"fmt"
	"net/http"

	"drone-viewer-go/internal/config"
	"drone-viewer-go/internal/geo"
	"drone-viewer-go/internal/handler"
	"drone-viewer-go/internal/mapview"
	"drone-viewer-go/internal/repository"
	"drone-viewer-go/internal/service"
	"drone-viewer-go/internal/storage"
	"drone-viewer-go/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Инициализируем логгер
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Получаем конфигурацию из переменных окружения
	cfg := config.LoadConfig()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Запуск Drone Viewer Server")

	// Инициализируем хранилище загрузок
	logger.Info("Инициализация хранилища загрузок...")
	if err := storage.Init(cfg.Storage.UploadDir); err != nil {
		logger.Fatalf("Ошибка инициализации хранилища: %v", err)
	}

	// Проверяем доступность хранилища
	if err := storage.HealthCheck(cfg.Storage.UploadDir); err != nil {
		logger.Fatalf("Хранилище недоступно: %v", err)
	}

	logger.Info("Хранилище готово к работе")

	// Инициализируем репозитории
	mediaRepo := repository.NewMediaRepository(cfg.Storage.UploadDir)
	snapshots := repository.NewSnapshotStore()

	// Инициализируем сервисы
	geoCalc := geo.NewCalculator(
		models.Coordinates{Lat: cfg.Map.DefaultLat, Lon: cfg.Map.DefaultLon},
		cfg.Map.DefaultZoom,
		cfg.Map.TrackZoom,
	)
	mapBuilder := mapview.NewBuilder(geoCalc, cfg.Map.VideoMarkerStep)
	viewerService := service.NewViewerService(mediaRepo, snapshots, geoCalc, logger)

	// Инициализируем обработчики
	viewerHandler := handler.NewViewerHandler(viewerService, mapBuilder, logger)

	// Настраиваем Gin router
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Добавляем middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(maxUploadMiddleware(cfg.Storage.MaxUploadMB))

	// Обслуживание загруженных файлов
	router.Static("/uploads", cfg.Storage.UploadDir)

	// Регистрируем маршруты
	viewerHandler.RegisterRoutes(router)

	// Запускаем сервер
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Сервер запущен на %s", serverAddr)

	if err := router.Run(serverAddr); err != nil {
		logger.Fatalf("Ошибка запуска сервера: %v", err)
	}
}

// corsMiddleware добавляет заголовки CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// maxUploadMiddleware ограничивает размер тела запроса
func maxUploadMiddleware(limitMB int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limitMB<<20)
		c.Next()
	}
}
