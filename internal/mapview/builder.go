package mapview

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"drone-viewer-go/internal/geo"
	"drone-viewer-go/pkg/models"
)

// uploadsImagesRoute маршрут, по которому страница отдает файлы снимков
const uploadsImagesRoute = "/uploads/images/"

// defaultMarkerStep прореживание маркеров телеметрии по умолчанию
const defaultMarkerStep = 30

// Document описывает карту: рамку и слои в формате GeoJSON. Документ
// самодостаточен — карта восстанавливается по нему без серверного состояния
type Document struct {
	Center       models.Coordinates         `json:"center"`
	Zoom         int                        `json:"zoom"`
	ImageMarkers *geojson.FeatureCollection `json:"image_markers"`
	ImagePath    *geojson.FeatureCollection `json:"image_path"`
	VideoMarkers *geojson.FeatureCollection `json:"video_markers"`
	VideoPath    *geojson.FeatureCollection `json:"video_path"`
}

// Builder собирает документ карты из результата сканирования
type Builder struct {
	calculator *geo.Calculator
	markerStep int
}

// NewBuilder создает построитель карты. markerStep задает шаг прореживания
// маркеров телеметрии
func NewBuilder(calculator *geo.Calculator, markerStep int) *Builder {
	if markerStep <= 0 {
		markerStep = defaultMarkerStep
	}
	return &Builder{
		calculator: calculator,
		markerStep: markerStep,
	}
}

// Build собирает документ карты. Повторный вызов на тех же данных дает
// слои с теми же маркерами и вершинами
func (b *Builder) Build(images []models.ImageRecord, track []models.TrackPoint) *Document {
	samples := make([]models.GPSSample, len(track))
	for i, p := range track {
		samples[i] = p.GPSSample
	}

	center, zoom := b.calculator.Frame(images, samples)

	return &Document{
		Center:       center,
		Zoom:         zoom,
		ImageMarkers: b.imageMarkers(images),
		ImagePath:    b.imagePath(images),
		VideoMarkers: b.videoMarkers(track),
		VideoPath:    b.videoPath(track),
	}
}

// imageMarkers строит слой маркеров снимков
func (b *Builder) imageMarkers(images []models.ImageRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, img := range images {
		// Позиция GeoJSON: сначала долгота
		f := geojson.NewFeature(orb.Point{img.GPS.Lon, img.GPS.Lat})
		f.Properties["name"] = img.Filename
		f.Properties["url"] = uploadsImagesRoute + img.Filename
		f.Properties["alt"] = img.GPS.Alt
		fc.Append(f)
	}
	return fc
}

// imagePath строит ломаную по снимкам в порядке сканирования;
// для одиночного снимка линии нет
func (b *Builder) imagePath(images []models.ImageRecord) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(images) < 2 {
		return fc
	}

	line := make(orb.LineString, len(images))
	for i, img := range images {
		line[i] = orb.Point{img.GPS.Lon, img.GPS.Lat}
	}
	fc.Append(geojson.NewFeature(line))
	return fc
}

// videoMarkers строит маркеры каждой markerStep-й точки телеметрии
func (b *Builder) videoMarkers(track []models.TrackPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, p := range track {
		if i%b.markerStep != 0 {
			continue
		}
		f := geojson.NewFeature(orb.Point{p.Lon, p.Lat})
		f.Properties["timestamp"] = p.Timestamp
		f.Properties["alt"] = p.Alt
		f.Properties["seconds"] = p.Seconds
		fc.Append(f)
	}
	return fc
}

// videoPath строит ломаную трека видео по всем точкам телеметрии
func (b *Builder) videoPath(track []models.TrackPoint) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(track) < 2 {
		return fc
	}

	line := make(orb.LineString, len(track))
	for i, p := range track {
		line[i] = orb.Point{p.Lon, p.Lat}
	}
	fc.Append(geojson.NewFeature(line))
	return fc
}
