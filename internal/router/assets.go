package router

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// AssetResolver serves files beneath a fixed public directory, inferring
// the content type from the file extension.
type AssetResolver struct {
	fs        afero.Fs
	publicDir string
	log       *zap.Logger
}

func NewAssetResolver(fs afero.Fs, publicDir string, log *zap.Logger) *AssetResolver {
	return &AssetResolver{
		fs:        fs,
		publicDir: publicDir,
		log:       log.With(zap.String("component", "assets")),
	}
}

// Get returns the asset contents and content type, or (nil, "") when the
// file does not exist or the path escapes the public directory.
func (a *AssetResolver) Get(name string) ([]byte, string) {
	cleaned := filepath.Clean("/" + name)
	if strings.Contains(cleaned, "..") {
		return nil, ""
	}

	data, err := afero.ReadFile(a.fs, filepath.Join(a.publicDir, cleaned))
	if err != nil {
		a.log.Debug("Asset not found", zap.String("name", name))
		return nil, ""
	}

	return data, contentTypeFor(name)
}

func contentTypeFor(name string) string {
	switch {
	case strings.HasSuffix(name, ".js"):
		return "application/javascript"
	case strings.HasSuffix(name, ".css"):
		return "text/css"
	case strings.HasSuffix(name, ".html"):
		return "text/html"
	case strings.HasSuffix(name, ".icon"):
		return "image/x-icon"
	default:
		return "plain/text"
	}
}
