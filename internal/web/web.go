package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/vineethbhatalevoor/AILegalsummary/pkg/logger_i"
)

//go:embed static
var assets embed.FS

var static, _ = fs.Sub(assets, "static")

// IndexHandler serves the upload page.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(static, "index.html")
	if err != nil {
		logger_i.NewLogger("Web").Error("index page missing from build", "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// StaticHandler serves the page's script and stylesheet under /static/.
func StaticHandler() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(static)))
}
