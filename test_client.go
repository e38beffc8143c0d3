package main

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const baseURL = "http://localhost:8087"

func main() {
	// Проверяем health endpoint
	fmt.Println("Проверяем health endpoint...")
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		fmt.Printf("Ошибка при обращении к health endpoint: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Ошибка чтения ответа: %v\n", err)
		return
	}

	fmt.Printf("Health check ответ (статус %d):\n%s\n\n", resp.StatusCode, string(body))

	// Если переданы файлы, загружаем их и запрашиваем карту
	if len(os.Args) > 1 {
		if os.Args[1] == "clear" {
			if err := testClear(); err != nil {
				fmt.Printf("Ошибка при очистке данных: %v\n", err)
			}
			return
		}

		if err := testUpload(os.Args[1:]); err != nil {
			fmt.Printf("Ошибка при тестировании загрузки: %v\n", err)
			return
		}

		if err := testMap(); err != nil {
			fmt.Printf("Ошибка при запросе карты: %v\n", err)
		}
	} else {
		fmt.Println("Для тестирования загрузки запустите: go run test_client.go <файлы...>")
		fmt.Println("Для очистки данных запустите: go run test_client.go clear")
	}
}

func testUpload(paths []string) error {
	// Создаем multipart form с пакетом файлов
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("ошибка чтения файла %s: %w", path, err)
		}

		fileWriter, err := writer.CreateFormFile("files", filepath.Base(path))
		if err != nil {
			return fmt.Errorf("ошибка создания form field: %w", err)
		}

		if _, err := fileWriter.Write(data); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}

		fmt.Printf("Добавлен файл %s (%d байт)\n", filepath.Base(path), len(data))
	}

	writer.Close()

	// Отправляем запрос
	client := &http.Client{Timeout: 5 * time.Minute}
	req, err := http.NewRequest("POST", baseURL+"/upload", &body)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	fmt.Println("Отправляем файлы на сервер...")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка отправки запроса: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	// Клиент следует за редиректом на главную страницу
	fmt.Printf("Ответ загрузки (статус %d, страница %d байт)\n", resp.StatusCode, len(respBody))
	return nil
}

func testMap() error {
	resp, err := http.Get(baseURL + "/map")
	if err != nil {
		return fmt.Errorf("ошибка запроса карты: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	fmt.Printf("Документ карты (статус %d, %d байт)\n", resp.StatusCode, len(body))
	return nil
}

func testClear() error {
	resp, err := http.Post(baseURL+"/clear_data", "application/json", nil)
	if err != nil {
		return fmt.Errorf("ошибка запроса очистки: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	fmt.Printf("Ответ очистки (статус %d):\n%s\n", resp.StatusCode, string(body))
	return nil
}
