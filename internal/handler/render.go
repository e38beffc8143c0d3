package handler

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"drone-viewer-go/pkg/models"
)

//go:embed templates/index.html
var templatesFS embed.FS

// indexTemplate разбирается один раз при старте процесса
var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"toJSON": toJSON,
}).ParseFS(templatesFS, "templates/index.html"))

// indexData данные для шаблона главной страницы
type indexData struct {
	SnapshotID string
	VideoFile  string
	Track      []models.TrackPoint
}

// toJSON сериализует данные для вставки в скрипт шаблона
func toJSON(data interface{}) (template.JS, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return template.JS(bytes), nil
}

// renderIndex пишет HTML главной страницы
func renderIndex(w io.Writer, data *indexData) error {
	if err := indexTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render index page: %w", err)
	}
	return nil
}
