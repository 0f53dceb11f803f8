package router

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Renderer builds server-side pages from the index.html shell and one
// template per page, interpolating {{global.*}}, {{head.*}} and the
// {{html-template-content}} marker.
type Renderer struct {
	fs          afero.Fs
	publicDir   string
	templateDir string
	global      map[string]string
	log         *zap.Logger
}

func NewRenderer(fs afero.Fs, publicDir, templateDir string, global map[string]string, log *zap.Logger) *Renderer {
	return &Renderer{
		fs:          fs,
		publicDir:   publicDir,
		templateDir: templateDir,
		global:      global,
		log:         log.With(zap.String("component", "pages")),
	}
}

// Page returns the handler that renders the named template.
func (rd *Renderer) Page(templateName string) PageHandler {
	return func(ctx context.Context) (string, error) {
		return rd.render(templateName)
	}
}

func (rd *Renderer) render(templateName string) (string, error) {
	shell, err := afero.ReadFile(rd.fs, filepath.Join(rd.publicDir, "index.html"))
	if err != nil {
		rd.log.Error("Failed to read index.html", zap.Error(err))
		return "", fmt.Errorf("read index.html: %w", err)
	}

	html := string(shell)
	for key, value := range rd.global {
		html = strings.ReplaceAll(html, fmt.Sprintf("{{global.%s}}", key), value)
	}

	head := map[string]string{
		"title":       strings.ToUpper(templateName[:1]) + templateName[1:],
		"description": "pizza delivery",
	}
	for key, value := range head {
		html = strings.ReplaceAll(html, fmt.Sprintf("{{head.%s}}", key), value)
	}

	content, err := afero.ReadFile(rd.fs, filepath.Join(rd.templateDir, templateName+".html"))
	if err != nil {
		rd.log.Error("Failed to read page template",
			zap.Error(err), zap.String("template", templateName))
		return "", fmt.Errorf("read template %s: %w", templateName, err)
	}

	return strings.Replace(html, "{{html-template-content}}", string(content), 1), nil
}
