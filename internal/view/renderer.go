package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed templates/*.html templates/*.css
var templateFS embed.FS

const htmlMediaType = "text/html"

type Renderer struct {
	tmpl     *template.Template
	minifier *minify.M
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html", "templates/*.css")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	m := minify.New()
	m.AddFunc(htmlMediaType, html.Minify)
	m.AddFunc("text/css", css.Minify)

	return &Renderer{tmpl: tmpl, minifier: m}, nil
}

// RenderPage executes the page template and returns minified HTML.
func (r *Renderer) RenderPage(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}

	out, err := r.minifier.Bytes(htmlMediaType, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minify page: %w", err)
	}
	return out, nil
}

func (r *Renderer) WritePage(w http.ResponseWriter, status int, page Page) error {
	body, err := r.RenderPage(page)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(body)
	return err
}
