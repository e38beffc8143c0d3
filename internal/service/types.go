package service

import (
	"io"
)

// UploadFile описывает один файл из формы загрузки
type UploadFile struct {
	Filename string
	Data     io.Reader
}

// ClearResponse результат очистки каталога загрузок
type ClearResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse ответ проверки здоровья сервиса
type HealthResponse struct {
	Status  string `json:"status"`  // healthy/unhealthy
	Storage string `json:"storage"` // состояние каталога загрузок
	Version string `json:"version"`
}
