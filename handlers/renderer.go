package handlers

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/notblessy/cryptotracker/dashboard"
	"github.com/notblessy/cryptotracker/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateRenderer renders html/template pages for echo.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() *TemplateRenderer {
	funcs := template.FuncMap{
		"noticeClass": func(level models.NoticeLevel) string {
			return "notice notice-" + string(level)
		},
		"isLine": func(c *dashboard.Chart) bool {
			return c.Kind == dashboard.ChartLine
		},
	}
	return &TemplateRenderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
