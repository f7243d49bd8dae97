package service

import (
	"context"
	"errors"
	"time"

	"kajianku_backend/internals/features/kajian/model"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// KajianStore adalah sisi remote dari koleksi kajian.
type KajianStore interface {
	FetchAll(ctx context.Context) ([]model.KajianRecord, error)
	Append(ctx context.Context, rec model.KajianRecord) error
}

// SheetClient bicara ke endpoint sheetdb (GET list, POST append).
// Satu panggilan = satu round trip; tanpa cache, retry, atau batching.
type SheetClient struct {
	URL     string
	Timeout time.Duration
}

func NewSheetClient(url string, timeout time.Duration) *SheetClient {
	return &SheetClient{URL: url, Timeout: timeout}
}

var _ KajianStore = (*SheetClient)(nil)

// FetchAll | GET <endpoint>
func (s *SheetClient) FetchAll(ctx context.Context) ([]model.KajianRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RemoteReadError{Err: err}
	}

	a := fiber.Get(s.URL).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Timeout(s.timeout(ctx))

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, &RemoteReadError{StatusCode: code, Err: errors.Join(errs...)}
	}
	if !isSuccess(code) {
		return nil, &RemoteReadError{StatusCode: code}
	}

	// elemen diasumsikan sudah berbentuk record; tidak ada validasi skema
	var out []model.KajianRecord
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, &RemoteReadError{StatusCode: code, Err: err}
	}
	if out == nil {
		out = []model.KajianRecord{}
	}
	return out, nil
}

// Append | POST <endpoint> body {Nama,Tempat,Waktu}
// Body response tidak dibaca. Tanpa idempotency key: submit ganda = baris ganda.
func (s *SheetClient) Append(ctx context.Context, rec model.KajianRecord) error {
	if err := ctx.Err(); err != nil {
		return &RemoteWriteError{Err: err}
	}

	a := fiber.Post(s.URL).
		JSONEncoder(sonic.Marshal).
		JSON(rec).
		Timeout(s.timeout(ctx))

	code, _, errs := a.Bytes()
	if len(errs) > 0 {
		return &RemoteWriteError{StatusCode: code, Err: errors.Join(errs...)}
	}
	if !isSuccess(code) {
		return &RemoteWriteError{StatusCode: code}
	}
	return nil
}

// timeout: pakai yang lebih pendek antara Timeout dan sisa deadline ctx.
func (s *SheetClient) timeout(ctx context.Context) time.Duration {
	t := s.Timeout
	if t <= 0 {
		t = 10 * time.Second
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left > 0 && left < t {
			t = left
		}
	}
	return t
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
