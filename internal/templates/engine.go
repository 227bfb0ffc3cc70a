package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

// Engine renders named templates to text.
type Engine interface {
	Execute(name string, data any) (string, error)
}

type TextTemplateEngine struct {
	templates *template.Template
}

// NewEngine parses every .tmpl file in the embedded set, then overlays any
// .tmpl files from customDir so installations can restyle the output.
func NewEngine(embedded fs.FS, customDir string, funcs template.FuncMap) (*TextTemplateEngine, error) {
	root := template.New("").Funcs(funcs)

	if err := parseDir(root, embedded); err != nil {
		return nil, fmt.Errorf("loading embedded templates: %w", err)
	}

	if customDir != "" {
		err := parseDir(root, os.DirFS(customDir))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading custom templates: %w", err)
		}
	}

	return &TextTemplateEngine{templates: root}, nil
}

func parseDir(root *template.Template, fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}
		name := strings.TrimPrefix(path, "templates/")
		if _, err := root.New(name).Parse(string(content)); err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}
		return nil
	})
}

func (e *TextTemplateEngine) Execute(name string, data any) (string, error) {
	tmpl := e.templates.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.String(), nil
}
