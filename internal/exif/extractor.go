package exif

import (
	"errors"
	"fmt"
	"io"
	"os"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"

	"drone-viewer-go/pkg/models"
)

// ErrNoGPS возвращается, когда снимок не содержит полного набора GPS тегов
// или EXIF блок не читается
var ErrNoGPS = errors.New("image has no gps data")

func init() {
	// Дроны (DJI и другие) пишут часть метаданных в MakerNote
	goexif.RegisterParsers(mknote.All...)
}

// Rational представляет рациональное число EXIF парой числитель/знаменатель
type Rational struct {
	Num int64
	Den int64
}

// Float возвращает значение рационального числа; при нулевом знаменателе — 0
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Extract читает файл снимка и возвращает координаты съёмки из EXIF
func Extract(path string) (models.GPSSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.GPSSample{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode извлекает GPS координаты из EXIF блока потока (JPEG или сырой TIFF).
// Широта и долгота обязательны вместе со своими полушариями, высота
// опциональна и по умолчанию равна 0
func Decode(r io.Reader) (models.GPSSample, error) {
	x, err := goexif.Decode(r)
	if err != nil {
		return models.GPSSample{}, fmt.Errorf("%w: %v", ErrNoGPS, err)
	}

	lat, err := coordinate(x, goexif.GPSLatitude, goexif.GPSLatitudeRef)
	if err != nil {
		return models.GPSSample{}, err
	}

	lon, err := coordinate(x, goexif.GPSLongitude, goexif.GPSLongitudeRef)
	if err != nil {
		return models.GPSSample{}, err
	}

	return models.GPSSample{Lat: lat, Lon: lon, Alt: altitude(x)}, nil
}

// coordinate собирает одну координату из тега значения и тега полушария
func coordinate(x *goexif.Exif, valueName, refName goexif.FieldName) (float64, error) {
	valueTag, err := x.Get(valueName)
	if err != nil {
		return 0, ErrNoGPS
	}

	refTag, err := x.Get(refName)
	if err != nil {
		return 0, ErrNoGPS
	}

	ref, err := refTag.StringVal()
	if err != nil {
		return 0, ErrNoGPS
	}

	// Значение хранится тремя рациональными числами: градусы, минуты, секунды
	var dms [3]Rational
	for i := range dms {
		dms[i], err = tagRational(valueTag, i)
		if err != nil {
			return 0, ErrNoGPS
		}
	}

	return dmsToDecimal(dms[0], dms[1], dms[2], ref), nil
}

// altitude читает высоту из GPSAltitude; отсутствие или порча тега даёт 0
func altitude(x *goexif.Exif) float64 {
	tag, err := x.Get(goexif.GPSAltitude)
	if err != nil {
		return 0
	}

	alt, err := tagRational(tag, 0)
	if err != nil {
		return 0
	}

	return alt.Float()
}

func tagRational(tag *tiff.Tag, i int) (Rational, error) {
	num, den, err := tag.Rat2(i)
	if err != nil {
		return Rational{}, err
	}
	return Rational{Num: num, Den: den}, nil
}

// dmsToDecimal переводит градусы/минуты/секунды в десятичные градусы,
// южное и западное полушария дают отрицательный знак
func dmsToDecimal(deg, min, sec Rational, ref string) float64 {
	decimal := deg.Float() + min.Float()/60 + sec.Float()/3600
	if ref == "S" || ref == "W" {
		decimal = -decimal
	}
	return decimal
}
