package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// ImagesSubdir имя подкаталога для снимков внутри каталога загрузок
const ImagesSubdir = "images"

// Init создает каталог загрузок вместе с подкаталогом снимков
func Init(root string) error {
	if root == "" {
		return fmt.Errorf("upload root is not configured")
	}

	if err := os.MkdirAll(filepath.Join(root, ImagesSubdir), 0755); err != nil {
		return fmt.Errorf("failed to create upload directories: %w", err)
	}

	log.Printf("✅ Upload storage initialized at %s", root)
	return nil
}

// HealthCheck проверяет, что каталог загрузок существует и доступен на запись
func HealthCheck(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("upload root is not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("upload root %s is not a directory", root)
	}

	// Пробная запись: права могли измениться после старта
	probe, err := os.CreateTemp(root, ".healthcheck-*")
	if err != nil {
		return fmt.Errorf("upload root is not writable: %w", err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}
