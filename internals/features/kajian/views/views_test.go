package views

import (
	"bytes"
	"testing"

	"kajianku_backend/internals/features/kajian/dto"
	"kajianku_backend/internals/features/kajian/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, data PageData) string {
	t.Helper()
	if data.Title == "" {
		data.Title = PageTitle
	}
	var buf bytes.Buffer
	require.NoError(t, NewEngine().Render(&buf, PageTemplate, data))
	return buf.String()
}

func TestRenderPage(t *testing.T) {
	html := render(t, PageData{
		FilterTerm: "lombok",
		Rows: []dto.KajianResponse{{
			Nama: "Budi", Tempat: "Lombok", Waktu: "Senin",
			MapsURL: "https://www.google.com/maps/search/?api=1&query=Lombok",
		}},
		Draft: model.KajianDraft{Nama: "Ahmad"},
	})

	assert.Contains(t, html, "<h1>List Kajian di Lombok</h1>")
	assert.Contains(t, html, `value="lombok"`)
	assert.Contains(t, html, `href="https://www.google.com/maps/search/?api=1&amp;query=Lombok"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
	assert.Contains(t, html, `name="Nama" value="Ahmad"`)
	assert.Contains(t, html, "+ Tambah Kajian")
	assert.NotContains(t, html, "Sedang menambahkan...")
}

func TestRenderPageSubmittingDisablesButton(t *testing.T) {
	html := render(t, PageData{Submitting: true})

	assert.Contains(t, html, `<button type="submit" disabled>Sedang menambahkan...</button>`)
}

func TestRenderPageEscapesRecordText(t *testing.T) {
	html := render(t, PageData{Rows: []dto.KajianResponse{{Nama: `<script>alert(1)</script>`}}})

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
