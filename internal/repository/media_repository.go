package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"drone-viewer-go/internal/storage"
)

// Наборы расширений для маршрутизации загрузок и сканирования каталога
var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	videoExtensions = map[string]bool{".mp4": true, ".mov": true, ".avi": true}
)

const trackExtension = ".srt"

// MediaRepository интерфейс для работы с файлами в каталоге загрузок
type MediaRepository interface {
	SaveUpload(filename string, src io.Reader) (string, error)
	ListImages() ([]string, error)
	FindVideo() (string, error)
	FindTrack() (string, error)
	Clear() error
	Root() string
	ImagePath(filename string) string
	FilePath(filename string) string
}

// mediaRepository реализация MediaRepository поверх файловой системы
type mediaRepository struct {
	root string
}

// NewMediaRepository создает новый instance MediaRepository
func NewMediaRepository(root string) MediaRepository {
	return &mediaRepository{
		root: root,
	}
}

// SaveUpload сохраняет файл загрузки, развозя его по корзинам: снимки в
// подкаталог images, всё остальное в корень. Одноимённый файл молча
// перезаписывается. Возвращает путь относительно корня
func (r *mediaRepository) SaveUpload(filename string, src io.Reader) (string, error) {
	// Берём только имя: путь из формы не должен выводить за каталог
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == "/" || name == "" {
		return "", fmt.Errorf("invalid upload filename %q", filename)
	}

	relative := name
	if imageExtensions[strings.ToLower(filepath.Ext(name))] {
		relative = filepath.Join(storage.ImagesSubdir, name)
	}

	fullPath := filepath.Join(r.root, relative)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload data: %w", err)
	}

	return relative, nil
}

// ListImages возвращает имена файлов снимков, отсортированные по имени
func (r *mediaRepository) ListImages() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, storage.ImagesSubdir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read images directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// FindVideo ищет видео файл в корне каталога. При нескольких кандидатах
// побеждает последний по алфавиту — выбор детерминирован
func (r *mediaRepository) FindVideo() (string, error) {
	return r.findLast(videoExtensions)
}

// FindTrack ищет файл телеметрии в корне каталога, правило выбора
// то же, что у FindVideo
func (r *mediaRepository) FindTrack() (string, error) {
	return r.findLast(map[string]bool{trackExtension: true})
}

// findLast возвращает последний по алфавиту файл корня с подходящим
// расширением; отсутствие кандидатов — не ошибка
func (r *mediaRepository) findLast(extensions map[string]bool) (string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read upload directory: %w", err)
	}

	// os.ReadDir отдаёт записи отсортированными по имени
	found := ""
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if extensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			found = entry.Name()
		}
	}

	return found, nil
}

// Clear удаляет все файлы и подкаталоги корня и восстанавливает пустой
// подкаталог снимков
func (r *mediaRepository) Clear() error {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return fmt.Errorf("failed to read upload directory: %w", err)
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(r.root, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}

	if err := os.MkdirAll(filepath.Join(r.root, storage.ImagesSubdir), 0755); err != nil {
		return fmt.Errorf("failed to recreate images directory: %w", err)
	}

	return nil
}

// Root возвращает корневой каталог загрузок
func (r *mediaRepository) Root() string {
	return r.root
}

// ImagePath возвращает абсолютный путь к файлу снимка
func (r *mediaRepository) ImagePath(filename string) string {
	return filepath.Join(r.root, storage.ImagesSubdir, filename)
}

// FilePath возвращает абсолютный путь к файлу в корне каталога
func (r *mediaRepository) FilePath(filename string) string {
	return filepath.Join(r.root, filename)
}
