package model

import (
	"time"

	"drone-viewer-go/pkg/models"
)

// Snapshot представляет результат одного сканирования каталога загрузок.
// Живёт только в памяти: страница создаёт снимок, карта читает его по ID
type Snapshot struct {
	ID        string               `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Images    []models.ImageRecord `json:"images"`     // Снимки с координатами из EXIF
	Track     []models.TrackPoint  `json:"track"`      // Точки телеметрии видео по порядку
	VideoFile string               `json:"video_file"` // Имя видео файла, пустое при отсутствии
}

// HasVideo сообщает, найден ли видео файл при сканировании
func (s *Snapshot) HasVideo() bool {
	return s.VideoFile != ""
}

// TrackSamples возвращает координатную часть трека без производных полей
func (s *Snapshot) TrackSamples() []models.GPSSample {
	samples := make([]models.GPSSample, len(s.Track))
	for i, p := range s.Track {
		samples[i] = p.GPSSample
	}
	return samples
}
