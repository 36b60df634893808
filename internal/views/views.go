package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// NewEngine returns a template engine backed by the embedded view files so
// rendering works regardless of the process working directory.
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
