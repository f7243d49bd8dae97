package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kajianku_backend/internals/features/kajian/model"
	"kajianku_backend/internals/features/kajian/service"
	"kajianku_backend/internals/features/kajian/views"
	routeDetails "kajianku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct{ records []model.KajianRecord }

func (m *memStore) FetchAll(context.Context) ([]model.KajianRecord, error) {
	return append([]model.KajianRecord(nil), m.records...), nil
}

func (m *memStore) Append(_ context.Context, rec model.KajianRecord) error {
	m.records = append(m.records, rec)
	return nil
}

func newTestApp() *fiber.App {
	store := &memStore{records: []model.KajianRecord{{Nama: "Budi", Tempat: "Lombok", Waktu: "Senin"}}}
	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	SetupRoutes(app, routeDetails.KajianDeps{
		Store:    store,
		Registry: service.NewSessionRegistry(store, nil, time.Hour),
		Sessions: session.New(),
		MapsBase: "https://www.google.com/maps/search/",
	})
	return app
}

func TestSetupRoutesMountsEverything(t *testing.T) {
	app := newTestApp()

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/public/kajian", http.StatusOK},
		{http.MethodGet, "/tidak-ada", http.StatusNotFound},
	} {
		resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestHealthReportsSessions(t *testing.T) {
	app := newTestApp()

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	assert.EqualValues(t, 1, body["active_sessions"])
}
