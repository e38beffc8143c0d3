package models

// Coordinates представляет географические координаты
type Coordinates struct {
	Lat float64 `json:"lat"` // Широта
	Lon float64 `json:"lon"` // Долгота
}

// GPSSample представляет одну точку GPS из EXIF снимка или телеметрии видео
type GPSSample struct {
	Lat       float64 `json:"lat"`       // Широта в десятичных градусах
	Lon       float64 `json:"lon"`       // Долгота в десятичных градусах
	Alt       float64 `json:"alt"`       // Высота в метрах (0, если неизвестна)
	Timestamp string  `json:"timestamp"` // Метка времени HH:MM:SS,mmm (пустая для снимков)
}

// Coordinate возвращает координатную часть точки
func (s GPSSample) Coordinate() Coordinates {
	return Coordinates{Lat: s.Lat, Lon: s.Lon}
}

// ImageRecord связывает файл снимка с координатами съёмки
type ImageRecord struct {
	Filename string    `json:"filename"` // Имя файла снимка
	GPS      GPSSample `json:"gps"`      // Координаты из EXIF
}

// TrackPoint представляет точку трека видео с привязкой ко времени воспроизведения
type TrackPoint struct {
	GPSSample
	Seconds float64 `json:"seconds"` // Секунды от начала видео
}
