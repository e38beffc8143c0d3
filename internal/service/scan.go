package service

import (
	"time"

	"github.com/google/uuid"

	"drone-viewer-go/internal/exif"
	"drone-viewer-go/internal/model"
	"drone-viewer-go/internal/telemetry"
	"drone-viewer-go/pkg/models"
)

// Scan сканирует каталог загрузок и собирает свежий снимок состояния:
// снимки с координатами из EXIF, трек телеметрии и имя видео файла.
// Проблемы отдельных файлов не прерывают сканирование
func (s *ViewerService) Scan() *model.Snapshot {
	images, skipped := s.scanImages()
	videoFile := s.scanVideo()
	track := s.scanTrack()

	snapshot := &model.Snapshot{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Images:    images,
		Track:     track,
		VideoFile: videoFile,
	}
	s.snapshots.Put(snapshot)

	s.logger.Infof("Скан завершен: снимков %d (пропущено %d), точек трека %d, видео %q, длина трека %.1f м",
		len(images), skipped, len(track), videoFile, s.geoCalc.TrackLengthMeters(snapshot.TrackSamples()))

	return snapshot
}

// scanImages извлекает координаты из всех снимков подкаталога images
func (s *ViewerService) scanImages() ([]models.ImageRecord, int) {
	names, err := s.mediaRepo.ListImages()
	if err != nil {
		s.logger.Errorf("Ошибка чтения каталога снимков: %v", err)
		return nil, 0
	}

	var images []models.ImageRecord
	skipped := 0
	for _, name := range names {
		sample, err := exif.Extract(s.mediaRepo.ImagePath(name))
		if err != nil {
			// Снимок без координат просто не попадает на карту
			s.logger.Debugf("Снимок %s пропущен: %v", name, err)
			skipped++
			continue
		}
		images = append(images, models.ImageRecord{Filename: name, GPS: sample})
	}

	return images, skipped
}

// scanVideo находит имя видео файла в каталоге загрузок
func (s *ViewerService) scanVideo() string {
	videoFile, err := s.mediaRepo.FindVideo()
	if err != nil {
		s.logger.Errorf("Ошибка поиска видео файла: %v", err)
		return ""
	}
	return videoFile
}

// scanTrack находит и разбирает файл телеметрии; отсутствие файла или
// ошибка разбора дают пустой трек
func (s *ViewerService) scanTrack() []models.TrackPoint {
	trackFile, err := s.mediaRepo.FindTrack()
	if err != nil {
		s.logger.Errorf("Ошибка поиска файла телеметрии: %v", err)
		return nil
	}
	if trackFile == "" {
		return nil
	}

	samples, err := telemetry.ParseFile(s.mediaRepo.FilePath(trackFile))
	if err != nil {
		s.logger.Warnf("Телеметрия %s не разобрана: %v", trackFile, err)
		return nil
	}
	s.logger.Infof("Телеметрия %s: %d точек GPS", trackFile, len(samples))

	return s.toTrackPoints(samples)
}

// toTrackPoints добавляет точкам телеметрии секунды от начала видео
func (s *ViewerService) toTrackPoints(samples []models.GPSSample) []models.TrackPoint {
	points := make([]models.TrackPoint, 0, len(samples))
	for _, sample := range samples {
		seconds, err := telemetry.Seconds(sample.Timestamp)
		if err != nil {
			s.logger.Debugf("Метка времени %q не разобрана: %v", sample.Timestamp, err)
			seconds = 0
		}
		points = append(points, models.TrackPoint{GPSSample: sample, Seconds: seconds})
	}
	return points
}
