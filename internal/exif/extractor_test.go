package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
)

// gpsEntry описывает одну запись GPS IFD для синтетического TIFF
type gpsEntry struct {
	tag  uint16
	ref  string      // полушарие для ASCII тегов
	rats [][2]uint32 // рациональные значения для остальных тегов
}

func gpsRef(tag uint16, ref string) gpsEntry {
	return gpsEntry{tag: tag, ref: ref}
}

func gpsRats(tag uint16, rats ...[2]uint32) gpsEntry {
	return gpsEntry{tag: tag, rats: rats}
}

// buildGPSTiff собирает минимальный little-endian TIFF: IFD0 с указателем
// на GPS IFD и сами GPS записи. Данные длиннее 4 байт кладутся после таблицы
func buildGPSTiff(t *testing.T, entries []gpsEntry) []byte {
	t.Helper()

	le := binary.LittleEndian
	ifd0Offset := uint32(8)
	gpsOffset := ifd0Offset + 2 + 12 + 4
	dataOffset := gpsOffset + uint32(2+len(entries)*12+4)

	buf := new(bytes.Buffer)
	buf.WriteString("II")
	binary.Write(buf, le, uint16(0x2A))
	binary.Write(buf, le, ifd0Offset)

	// IFD0: единственная запись — указатель на GPS IFD (LONG)
	binary.Write(buf, le, uint16(1))
	binary.Write(buf, le, uint16(0x8825))
	binary.Write(buf, le, uint16(4))
	binary.Write(buf, le, uint32(1))
	binary.Write(buf, le, gpsOffset)
	binary.Write(buf, le, uint32(0))

	// GPS IFD: таблица записей, затем область данных
	var data bytes.Buffer
	binary.Write(buf, le, uint16(len(entries)))
	for _, e := range entries {
		binary.Write(buf, le, e.tag)
		if e.rats == nil {
			binary.Write(buf, le, uint16(2)) // ASCII, значение помещается в 4 байта
			binary.Write(buf, le, uint32(len(e.ref)+1))
			inline := make([]byte, 4)
			copy(inline, e.ref)
			buf.Write(inline)
			continue
		}
		binary.Write(buf, le, uint16(5)) // RATIONAL, значение по смещению
		binary.Write(buf, le, uint32(len(e.rats)))
		binary.Write(buf, le, dataOffset+uint32(data.Len()))
		for _, r := range e.rats {
			binary.Write(&data, le, r[0])
			binary.Write(&data, le, r[1])
		}
	}
	binary.Write(buf, le, uint32(0))
	buf.Write(data.Bytes())

	return buf.Bytes()
}

func TestRationalFloat(t *testing.T) {
	tests := []struct {
		name string
		rat  Rational
		want float64
	}{
		{"integer", Rational{Num: 120, Den: 1}, 120},
		{"fraction", Rational{Num: 1205, Den: 10}, 120.5},
		{"zero denominator", Rational{Num: 7, Den: 0}, 0},
		{"zero value", Rational{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rat.Float(); got != tt.want {
				t.Errorf("Rational{%d,%d}.Float() = %v, want %v", tt.rat.Num, tt.rat.Den, got, tt.want)
			}
		})
	}
}

func TestDMSToDecimal(t *testing.T) {
	tests := []struct {
		name          string
		deg, min, sec Rational
		ref           string
		want          float64
	}{
		{"north positive", Rational{43, 1}, Rational{39, 1}, Rational{0, 1}, "N", 43.65},
		{"east positive", Rational{79, 1}, Rational{23, 1}, Rational{0, 1}, "E", 79.0 + 23.0/60.0},
		{"south negative", Rational{33, 1}, Rational{52, 1}, Rational{30, 1}, "S", -(33.0 + 52.0/60.0 + 30.0/3600.0)},
		{"west negative", Rational{79, 1}, Rational{23, 1}, Rational{0, 1}, "W", -(79.0 + 23.0/60.0)},
		{"fractional seconds", Rational{10, 1}, Rational{30, 1}, Rational{361, 10}, "N", 10.0 + 30.0/60.0 + 36.1/3600.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dmsToDecimal(tt.deg, tt.min, tt.sec, tt.ref)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("dmsToDecimal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeTorontoCoordinates(t *testing.T) {
	raw := buildGPSTiff(t, []gpsEntry{
		gpsRef(0x0001, "N"),
		gpsRats(0x0002, [2]uint32{43, 1}, [2]uint32{39, 1}, [2]uint32{0, 1}),
		gpsRef(0x0003, "W"),
		gpsRats(0x0004, [2]uint32{79, 1}, [2]uint32{23, 1}, [2]uint32{0, 1}),
		gpsRats(0x0006, [2]uint32{1205, 10}),
	})

	sample, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if math.Abs(sample.Lat-43.65) > 1e-9 {
		t.Errorf("Lat = %v, want 43.65", sample.Lat)
	}
	wantLon := -(79.0 + 23.0/60.0)
	if math.Abs(sample.Lon-wantLon) > 1e-9 {
		t.Errorf("Lon = %v, want %v", sample.Lon, wantLon)
	}
	if math.Abs(sample.Alt-120.5) > 1e-9 {
		t.Errorf("Alt = %v, want 120.5", sample.Alt)
	}
	if sample.Timestamp != "" {
		t.Errorf("Timestamp = %q, want empty", sample.Timestamp)
	}
}

func TestDecodeSouthernHemisphere(t *testing.T) {
	raw := buildGPSTiff(t, []gpsEntry{
		gpsRef(0x0001, "S"),
		gpsRats(0x0002, [2]uint32{33, 1}, [2]uint32{52, 1}, [2]uint32{0, 1}),
		gpsRef(0x0003, "E"),
		gpsRats(0x0004, [2]uint32{151, 1}, [2]uint32{12, 1}, [2]uint32{0, 1}),
	})

	sample, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if sample.Lat >= 0 {
		t.Errorf("Lat = %v, want negative for S", sample.Lat)
	}
	if sample.Lon <= 0 {
		t.Errorf("Lon = %v, want positive for E", sample.Lon)
	}
	// Высота не задана — по умолчанию 0
	if sample.Alt != 0 {
		t.Errorf("Alt = %v, want 0", sample.Alt)
	}
}

func TestDecodeMissingGPS(t *testing.T) {
	tests := []struct {
		name    string
		entries []gpsEntry
	}{
		{"empty gps ifd", nil},
		{"latitude without ref", []gpsEntry{
			gpsRats(0x0002, [2]uint32{43, 1}, [2]uint32{39, 1}, [2]uint32{0, 1}),
			gpsRef(0x0003, "W"),
			gpsRats(0x0004, [2]uint32{79, 1}, [2]uint32{23, 1}, [2]uint32{0, 1}),
		}},
		{"no longitude", []gpsEntry{
			gpsRef(0x0001, "N"),
			gpsRats(0x0002, [2]uint32{43, 1}, [2]uint32{39, 1}, [2]uint32{0, 1}),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := buildGPSTiff(t, tt.entries)
			_, err := Decode(bytes.NewReader(raw))
			if !errors.Is(err, ErrNoGPS) {
				t.Errorf("Decode() error = %v, want ErrNoGPS", err)
			}
		})
	}
}

func TestDecodeNotAnImage(t *testing.T) {
	_, err := Decode(strings.NewReader("совсем не изображение"))
	if !errors.Is(err, ErrNoGPS) {
		t.Errorf("Decode() error = %v, want ErrNoGPS", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	_, err := Extract("/nonexistent/path/image.jpg")
	if err == nil {
		t.Fatal("Extract() expected error for missing file")
	}
	if errors.Is(err, ErrNoGPS) {
		t.Errorf("Extract() error = %v, want plain I/O error", err)
	}
}
