package handler

import (
	"bytes"
	"net/http"

	"drone-viewer-go/internal/mapview"
	"drone-viewer-go/internal/service"
	"drone-viewer-go/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ViewerHandler обрабатывает HTTP запросы просмотрщика медиа
type ViewerHandler struct {
	viewerService *service.ViewerService
	mapBuilder    *mapview.Builder
	logger        *logrus.Logger
}

// NewViewerHandler создает новый экземпляр ViewerHandler
func NewViewerHandler(viewerService *service.ViewerService, mapBuilder *mapview.Builder, logger *logrus.Logger) *ViewerHandler {
	return &ViewerHandler{
		viewerService: viewerService,
		mapBuilder:    mapBuilder,
		logger:        logger,
	}
}

// RegisterRoutes регистрирует маршруты приложения
func (h *ViewerHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.GET("/map", h.MapDocument)
	router.POST("/upload", h.Upload)
	router.POST("/clear_data", h.ClearData)
	router.GET("/health", h.CheckHealth)
}

// Index отдает главную страницу по свежему скану каталога загрузок
func (h *ViewerHandler) Index(c *gin.Context) {
	h.logger.Info("Получен запрос главной страницы")

	snapshot := h.viewerService.Scan()

	data := indexData{
		SnapshotID: snapshot.ID,
		VideoFile:  snapshot.VideoFile,
		Track:      snapshot.Track,
	}
	// json.Marshal для nil среза дает null, скрипту страницы нужен массив
	if data.Track == nil {
		data.Track = []models.TrackPoint{}
	}

	var buf bytes.Buffer
	if err := renderIndex(&buf, &data); err != nil {
		h.logger.Errorf("Ошибка рендеринга главной страницы: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка построения страницы"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// MapDocument отдает HTML документ карты для снимка из кеша
func (h *ViewerHandler) MapDocument(c *gin.Context) {
	snapshotID := c.Query("snapshot")
	h.logger.Debugf("Получен запрос карты для снимка %q", snapshotID)

	snapshot := h.viewerService.SnapshotByID(snapshotID)
	doc := h.mapBuilder.Build(snapshot.Images, snapshot.Track)

	var buf bytes.Buffer
	if err := mapview.RenderHTML(&buf, doc); err != nil {
		h.logger.Errorf("Ошибка рендеринга карты: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка построения карты"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// CheckHealth проверяет состояние сервиса
func (h *ViewerHandler) CheckHealth(c *gin.Context) {
	h.logger.Debug("Получен запрос проверки здоровья")

	health := h.viewerService.CheckHealth()

	statusCode := http.StatusOK
	if health.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, health)
}
