package view

import (
	"embed"
	"fmt"
	"github.com/labstack/echo/v4"
	"html/template"
	"io"
	"weather-view/internal/domain/model"
)

// PageTemplate is the name of the weather page template.
const PageTemplate = "weather.html"

//go:embed templates/*.html
var templateFS embed.FS

var forecastIcons = map[string]string{
	"rain":  "🌧",
	"sun":   "☀",
	"cloud": "☁",
}

// PageData is what the weather page template is executed with.
type PageData struct {
	BasePath string
	Page     model.WeatherPage
}

// TemplateRenderer renders the embedded html/template set for echo.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses the embedded templates.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	templates, err := template.New("").
		Funcs(template.FuncMap{
			"icon":        forecastIcon,
			"temperature": formatTemperature,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func forecastIcon(name string) string {
	if icon, ok := forecastIcons[name]; ok {
		return icon
	}
	return name
}

func formatTemperature(t model.Temperature) string {
	return fmt.Sprintf("%d°%s", t.Value, t.Unit)
}
