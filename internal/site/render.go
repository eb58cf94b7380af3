package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katariya/portfolio/internal/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap holds the helpers available to every template.
var FuncMap = template.FuncMap{
	"join": strings.Join,
}

// Templates parses the bundled templates. Each template is named after its file.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// RenderPage writes the full page for p.
func RenderPage(w io.Writer, tmpl *template.Template, p Page) error {
	return tmpl.ExecuteTemplate(w, "index.html", p)
}

// Export writes a static copy of the site into dir: index.html for All and one
// tag-<slug>.html per tag. It returns the written file names in tag order.
func Export(dir string, doc *Document) ([]string, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	tags := catalog.AvailableTags(doc.Projects)
	linker := NewStaticLinker(tags)

	written := make([]string, 0, len(tags))
	for _, tag := range tags {
		f := catalog.NewFilter(doc.Projects)
		f.Set(tag)

		var buf bytes.Buffer
		if err := RenderPage(&buf, tmpl, NewPage(doc, f, linker)); err != nil {
			return written, fmt.Errorf("render %s: %w", tag, err)
		}

		name := linker.FileName(tag)
		if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}
