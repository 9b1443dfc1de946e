// Package web holds the embedded HTML views of the dashboard.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var views embed.FS

// NewEngine returns the fiber views engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(views, "views")
	if err != nil {
		panic(fmt.Sprintf("web: embedded views missing: %v", err))
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("kg", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})
	engine.AddFunc("selected", func(a, b string) bool {
		return a == b
	})
	return engine
}
