package views

import (
	"embed"
	"net/http"

	"kajianku_backend/internals/features/kajian/dto"
	"kajianku_backend/internals/features/kajian/model"

	"github.com/gofiber/template/html/v2"
)

//go:embed index.html
var files embed.FS

const (
	PageTitle    = "List Kajian di Lombok"
	PageTemplate = "index"
)

type PageData struct {
	Title      string
	FilterTerm string
	Rows       []dto.KajianResponse
	Draft      model.KajianDraft
	Submitting bool
}

// NewEngine: view engine fiber di atas template yang di-embed.
// Pasang di fiber.Config{Views: ...} lalu panggil c.Render(PageTemplate, data).
func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
