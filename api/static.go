package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Favicon serves the site icon from the static directory.
func (a *API) Favicon(r *Request) (*Response, error) {
	b, err := os.ReadFile(filepath.Join(a.StaticDir, "favicon.ico"))
	if err != nil {
		return &Response{Status: http.StatusNotFound, Kind: KindPlain}, nil
	}

	return &Response{Status: http.StatusOK, Payload: b, Kind: KindFavicon}, nil
}

// StaticAsset serves files under the reserved public/ prefix. The
// content kind follows the file extension; everything unknown goes out
// as plain text.
func (a *API) StaticAsset(r *Request) (*Response, error) {
	name := strings.TrimPrefix(r.Path, "public/")
	if name == "" || name != path.Clean(name) || strings.Contains(name, "..") {
		return &Response{Status: http.StatusNotFound, Kind: KindPlain}, nil
	}

	b, err := os.ReadFile(filepath.Join(a.StaticDir, filepath.FromSlash(name)))
	if err != nil {
		return &Response{Status: http.StatusNotFound, Kind: KindPlain}, nil
	}

	return &Response{Status: http.StatusOK, Payload: b, Kind: kindForExt(path.Ext(name))}, nil
}

func kindForExt(ext string) ContentKind {
	switch strings.ToLower(ext) {
	case ".html":
		return KindHTML
	case ".css":
		return KindCSS
	case ".png":
		return KindPNG
	case ".jpg", ".jpeg":
		return KindJPG
	case ".ico":
		return KindFavicon
	default:
		return KindPlain
	}
}
