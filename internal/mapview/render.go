package mapview

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/map.html
var templatesFS embed.FS

// mapTemplate разбирается один раз при старте процесса
var mapTemplate = template.Must(template.New("map.html").Funcs(template.FuncMap{
	"toJSON": toJSON,
}).ParseFS(templatesFS, "templates/map.html"))

// toJSON сериализует данные для вставки в скрипт шаблона
func toJSON(data interface{}) (template.JS, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return template.JS(bytes), nil
}

// RenderHTML пишет полностью самостоятельный HTML документ карты
func RenderHTML(w io.Writer, doc *Document) error {
	if err := mapTemplate.Execute(w, doc); err != nil {
		return fmt.Errorf("failed to render map document: %w", err)
	}
	return nil
}
