package handler

import (
	"errors"
	"net/http"

	"drone-viewer-go/internal/service"

	"github.com/gin-gonic/gin"
)

// Upload принимает пакет файлов из multipart формы и сохраняет их в хранилище
func (h *ViewerHandler) Upload(c *gin.Context) {
	h.logger.Info("Получен запрос на загрузку файлов")

	form, err := c.MultipartForm()
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.logger.Errorf("Превышен лимит размера загрузки: %v", err)
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Превышен лимит размера загрузки"})
			return
		}

		h.logger.Errorf("Ошибка парсинга multipart form: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ошибка парсинга формы"})
		return
	}

	files := form.File["files"]
	uploads := make([]service.UploadFile, 0, len(files))
	for _, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			h.logger.Errorf("Ошибка открытия файла %s: %v", fileHeader.Filename, err)
			continue
		}
		defer src.Close()

		uploads = append(uploads, service.UploadFile{
			Filename: fileHeader.Filename,
			Data:     src,
		})
	}

	saved := h.viewerService.SaveUploads(uploads)
	h.logger.Infof("Загрузка завершена: сохранено файлов %d из %d", saved, len(files))

	c.Redirect(http.StatusSeeOther, "/")
}

// ClearData удаляет все загруженные файлы и возвращает результат операции
func (h *ViewerHandler) ClearData(c *gin.Context) {
	h.logger.Info("Получен запрос на удаление всех данных")

	if err := h.viewerService.ClearData(); err != nil {
		h.logger.Errorf("Ошибка очистки данных: %v", err)
		c.JSON(http.StatusInternalServerError, service.ClearResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, service.ClearResponse{
		Success: true,
		Message: "All data cleared successfully",
	})
}
