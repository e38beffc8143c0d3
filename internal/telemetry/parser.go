package telemetry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"drone-viewer-go/pkg/models"
)

// lookaheadLines ограничивает просмотр блока после строки с меткой времени
const lookaheadLines = 7

var (
	tagRe       = regexp.MustCompile(`<.*?>`)
	latitudeRe  = regexp.MustCompile(`(?i)\[?latitude:\s*([+-]?\d+\.?\d*)\]?`)
	longitudeRe = regexp.MustCompile(`(?i)\[?longitude:\s*([+-]?\d+\.?\d*)\]?`)
	absAltRe    = regexp.MustCompile(`(?i)abs[_\s-]?alt\s*[:=]\s*([+-]?\d+(?:\.\d+)?)`)
	relAltRe    = regexp.MustCompile(`(?i)rel[_\s-]?alt\s*[:=]\s*([+-]?\d+(?:\.\d+)?)`)
)

// ParseFile читает файл телеметрии и возвращает точки GPS в порядке следования
func ParseFile(path string) ([]models.GPSSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse разбирает телеметрию дрона в формате субтитров: блок начинается
// строкой с "-->", метка времени — первое поле этой строки, координаты
// ищутся в нескольких следующих строках. Блок без координат пропускается,
// непригодная строка не прерывает разбор
func Parse(r io.Reader) ([]models.GPSSample, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read telemetry: %w", err)
	}

	var samples []models.GPSSample
	for i, line := range lines {
		if !strings.Contains(line, "-->") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		timestamp := fields[0]

		// Окно просмотра: до lookaheadLines строк после маркера времени
		end := i + 1 + lookaheadLines
		if end > len(lines) {
			end = len(lines)
		}

		for j := i + 1; j < end; j++ {
			// HTML-разметка DJI (шрифты, цвета) мешает регуляркам
			clean := tagRe.ReplaceAllString(lines[j], "")

			latMatch := latitudeRe.FindStringSubmatch(clean)
			lonMatch := longitudeRe.FindStringSubmatch(clean)
			if latMatch == nil || lonMatch == nil {
				continue
			}

			lat, err := strconv.ParseFloat(latMatch[1], 64)
			if err != nil {
				continue
			}
			lon, err := strconv.ParseFloat(lonMatch[1], 64)
			if err != nil {
				continue
			}
			alt, ok := altitudeFrom(clean)
			if !ok {
				continue
			}

			samples = append(samples, models.GPSSample{
				Lat:       lat,
				Lon:       lon,
				Alt:       alt,
				Timestamp: timestamp,
			})
			break
		}
	}

	return samples, nil
}

// altitudeFrom извлекает высоту из строки: абсолютная высота всегда
// приоритетнее относительной, отсутствие обеих даёт 0. Ошибка разбора
// найденного числа делает строку непригодной
func altitudeFrom(line string) (float64, bool) {
	if m := absAltRe.FindStringSubmatch(line); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	if m := relAltRe.FindStringSubmatch(line); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, true
}

// Seconds переводит метку времени HH:MM:SS,mmm в секунды от начала видео
func Seconds(timestamp string) (float64, error) {
	parts := strings.Split(timestamp, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", timestamp)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", timestamp)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", timestamp)
	}

	s, err := strconv.ParseFloat(strings.Replace(parts[2], ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp %q", timestamp)
	}

	return float64(h)*3600 + float64(m)*60 + s, nil
}
