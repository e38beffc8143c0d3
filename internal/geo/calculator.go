package geo

import (
	"math"

	"drone-viewer-go/pkg/models"
)

// Calculator для географических вычислений
type Calculator struct {
	defaultCenter models.Coordinates
	defaultZoom   int
	trackZoom     int
}

// NewCalculator создает калькулятор с рамкой карты по умолчанию
func NewCalculator(defaultCenter models.Coordinates, defaultZoom, trackZoom int) *Calculator {
	return &Calculator{
		defaultCenter: defaultCenter,
		defaultZoom:   defaultZoom,
		trackZoom:     trackZoom,
	}
}

// Centroid вычисляет среднее арифметическое координат.
// Для пустого входа второе значение — false
func (c *Calculator) Centroid(points []models.Coordinates) (models.Coordinates, bool) {
	if len(points) == 0 {
		return models.Coordinates{}, false
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Lat
		sumLon += p.Lon
	}

	n := float64(len(points))
	return models.Coordinates{Lat: sumLat / n, Lon: sumLon / n}, true
}

// Frame выбирает центр и масштаб карты: центроид точек обоих источников,
// при полном отсутствии точек — рамка по умолчанию
func (c *Calculator) Frame(images []models.ImageRecord, track []models.GPSSample) (models.Coordinates, int) {
	points := make([]models.Coordinates, 0, len(images)+len(track))
	for _, img := range images {
		points = append(points, img.GPS.Coordinate())
	}
	for _, s := range track {
		points = append(points, s.Coordinate())
	}

	center, ok := c.Centroid(points)
	if !ok {
		return c.defaultCenter, c.defaultZoom
	}
	return center, c.trackZoom
}

// DistanceMeters вычисляет расстояние между двумя точками в метрах
// Использует формулу гаверсинуса
func (c *Calculator) DistanceMeters(point1, point2 models.Coordinates) float64 {
	const earthRadiusKm = 6371.0

	// Преобразуем градусы в радианы
	lat1Rad := point1.Lat * math.Pi / 180
	lon1Rad := point1.Lon * math.Pi / 180
	lat2Rad := point2.Lat * math.Pi / 180
	lon2Rad := point2.Lon * math.Pi / 180

	// Разности координат
	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	// Формула гаверсинуса
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	chord := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	// Расстояние в метрах
	return earthRadiusKm * chord * 1000
}

// TrackLengthMeters вычисляет длину трека суммой расстояний между соседними точками
func (c *Calculator) TrackLengthMeters(track []models.GPSSample) float64 {
	var total float64
	for i := 1; i < len(track); i++ {
		total += c.DistanceMeters(track[i-1].Coordinate(), track[i].Coordinate())
	}
	return total
}
