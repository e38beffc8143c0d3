package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"drone-viewer-go/internal/geo"
	"drone-viewer-go/internal/model"
	"drone-viewer-go/internal/repository"
	"drone-viewer-go/internal/storage"
)

// serviceVersion версия сервиса для ответа проверки здоровья
const serviceVersion = "1.0.0"

// ViewerService сервис просмотра медиа данных дрона
type ViewerService struct {
	mediaRepo repository.MediaRepository
	snapshots repository.SnapshotStore
	geoCalc   *geo.Calculator
	logger    *logrus.Logger
}

// NewViewerService создает новый сервис просмотра
func NewViewerService(mediaRepo repository.MediaRepository, snapshots repository.SnapshotStore, geoCalc *geo.Calculator, logger *logrus.Logger) *ViewerService {
	return &ViewerService{
		mediaRepo: mediaRepo,
		snapshots: snapshots,
		geoCalc:   geoCalc,
		logger:    logger,
	}
}

// SnapshotByID возвращает снимок из кеша; устаревший или неизвестный ID
// не ошибка — каталог сканируется заново
func (s *ViewerService) SnapshotByID(id string) *model.Snapshot {
	if id != "" {
		if snapshot, ok := s.snapshots.Get(id); ok {
			return snapshot
		}
		s.logger.Debugf("Снимок %s не найден в кеше, сканируем заново", id)
	}
	return s.Scan()
}

// SaveUploads сохраняет файлы формы загрузки и возвращает количество
// сохраненных. Ошибка одного файла не прерывает остальные
func (s *ViewerService) SaveUploads(files []UploadFile) int {
	saved := 0
	for _, f := range files {
		if f.Filename == "" {
			continue
		}

		rel, err := s.mediaRepo.SaveUpload(f.Filename, f.Data)
		if err != nil {
			s.logger.Errorf("Файл %s не сохранен: %v", f.Filename, err)
			continue
		}

		s.logger.Infof("Файл сохранен: %s", rel)
		saved++
	}

	// Каталог изменился — все закешированные снимки устарели
	s.snapshots.InvalidateAll()

	return saved
}

// ClearData удаляет все загруженные файлы и сбрасывает кеш снимков
func (s *ViewerService) ClearData() error {
	s.logger.Info("Очищаем каталог загрузок")

	if err := s.mediaRepo.Clear(); err != nil {
		s.logger.Errorf("Ошибка очистки каталога: %v", err)
		return fmt.Errorf("failed to clear upload directory: %w", err)
	}

	s.snapshots.InvalidateAll()
	s.logger.Info("Все данные удалены")
	return nil
}

// CheckHealth проверяет состояние сервиса и каталога загрузок
func (s *ViewerService) CheckHealth() *HealthResponse {
	if err := storage.HealthCheck(s.mediaRepo.Root()); err != nil {
		s.logger.Errorf("Хранилище недоступно: %v", err)
		return &HealthResponse{
			Status:  "unhealthy",
			Storage: err.Error(),
			Version: serviceVersion,
		}
	}

	return &HealthResponse{
		Status:  "healthy",
		Storage: "ok",
		Version: serviceVersion,
	}
}
