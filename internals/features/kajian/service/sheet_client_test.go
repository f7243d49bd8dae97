package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"kajianku_backend/internals/features/kajian/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetClientFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"Nama":"Budi","Tempat":"Lombok","Waktu":"Senin"},{"Nama":"Hasan","Tempat":"Praya","Waktu":"Ahad","Extra":"x"}]`)
	}))
	defer srv.Close()

	got, err := NewSheetClient(srv.URL, time.Second).FetchAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []model.KajianRecord{
		{Nama: "Budi", Tempat: "Lombok", Waktu: "Senin"},
		{Nama: "Hasan", Tempat: "Praya", Waktu: "Ahad"},
	}, got)
}

func TestSheetClientFetchAllEmptyAndNull(t *testing.T) {
	for _, body := range []string{`[]`, `null`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))

		got, err := NewSheetClient(srv.URL, time.Second).FetchAll(context.Background())
		srv.Close()

		require.NoError(t, err, body)
		assert.NotNil(t, got, body)
		assert.Empty(t, got, body)
	}
}

func TestSheetClientFetchAllNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":"limit"}`)
	}))
	defer srv.Close()

	got, err := NewSheetClient(srv.URL, time.Second).FetchAll(context.Background())

	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrRemoteRead)
	var rerr *RemoteReadError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusTooManyRequests, rerr.StatusCode)
	assert.NotErrorIs(t, err, ErrRemoteWrite)
}

func TestSheetClientFetchAllBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>bukan json</html>`)
	}))
	defer srv.Close()

	_, err := NewSheetClient(srv.URL, time.Second).FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrRemoteRead)
}

func TestSheetClientFetchAllTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewSheetClient(url, 500*time.Millisecond).FetchAll(context.Background())
	assert.ErrorIs(t, err, ErrRemoteRead)
}

func TestSheetClientFetchAllCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSheetClient("http://127.0.0.1:1", time.Second).FetchAll(ctx)
	assert.ErrorIs(t, err, ErrRemoteRead)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSheetClientAppend(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotBody   map[string]string
		calls     int
		mu        sync.Mutex
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"created":1}`)
	}))
	defer srv.Close()

	rec := model.KajianRecord{Nama: "Ahmad", Tempat: "Masjid Agung", Waktu: "Jumat, 1 Jan 2025, 19:00"}
	err := NewSheetClient(srv.URL, time.Second).Append(context.Background(), rec)

	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Contains(t, gotType, "application/json")
	assert.Equal(t, map[string]string{"Nama": "Ahmad", "Tempat": "Masjid Agung", "Waktu": "Jumat, 1 Jan 2025, 19:00"}, gotBody)
}

func TestSheetClientAppendNon2xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewSheetClient(srv.URL, time.Second).Append(context.Background(), model.KajianRecord{Nama: "A"})

	require.ErrorIs(t, err, ErrRemoteWrite)
	var werr *RemoteWriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, http.StatusInternalServerError, werr.StatusCode)
	assert.EqualValues(t, 1, calls.Load(), "tanpa retry")
}

func TestSheetClientTimeoutUsesContextDeadline(t *testing.T) {
	c := NewSheetClient("http://example.invalid", time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.LessOrEqual(t, c.timeout(ctx), 2*time.Second)
	assert.Equal(t, time.Minute, c.timeout(context.Background()))
	assert.Equal(t, 10*time.Second, (&SheetClient{}).timeout(context.Background()))
}

func TestRemoteErrorMessages(t *testing.T) {
	assert.Equal(t, "gagal mengambil data kajian: status 404", (&RemoteReadError{StatusCode: 404}).Error())
	assert.Equal(t, "gagal menambahkan data kajian", (&RemoteWriteError{}).Error())
}
