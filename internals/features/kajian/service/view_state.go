package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"kajianku_backend/internals/features/kajian/model"

	"go.uber.org/zap"
)

var ErrViewClosed = errors.New("view kajian sudah ditutup")

// ViewSnapshot adalah salinan state untuk dirender.
type ViewSnapshot struct {
	Collection  []model.KajianRecord
	FilterTerm  string
	Filtered    []model.KajianRecord
	Draft       model.KajianDraft
	Submitting  bool
	Initialized bool
}

// ViewState memegang state satu halaman (satu sesi view):
// koleksi penuh, kata kunci filter, hasil filter, draft form, dan flag submit.
//
// derivedView tidak pernah diubah langsung; selalu dihitung ulang lewat
// FilterKajian setiap kali collection atau filterTerm berubah.
// Mutex tidak pernah dipegang selama panggilan jaringan.
type ViewState struct {
	store  KajianStore
	logger *zap.Logger
	now    func() time.Time

	initOnce sync.Once

	mu          sync.Mutex
	collection  []model.KajianRecord
	filterTerm  string
	derivedView []model.KajianRecord
	draft       model.KajianDraft
	submitting  bool
	initialized bool
	closed      bool
	lastSeen    time.Time
}

func NewViewState(store KajianStore, logger *zap.Logger) *ViewState {
	if logger == nil {
		logger = zap.NewNop()
	}
	vs := &ViewState{
		store:      store,
		logger:     logger,
		now:        time.Now,
		collection: []model.KajianRecord{},
	}
	vs.lastSeen = vs.now()
	vs.recompute()
	return vs
}

// Initialize mengambil koleksi sekali saja (aktivasi pertama).
// Gagal → dicatat ke log, koleksi tetap kosong, tidak diulang otomatis.
func (vs *ViewState) Initialize(ctx context.Context) {
	vs.initOnce.Do(func() {
		records, err := vs.store.FetchAll(ctx)

		vs.mu.Lock()
		defer vs.mu.Unlock()

		if vs.closed {
			vs.logger.Debug("hasil fetch diabaikan, view sudah ditutup")
			return
		}
		vs.initialized = true
		if err != nil {
			vs.logger.Error("Gagal mengambil data kajian", zap.Error(err))
			return
		}
		vs.collection = records
		vs.recompute()
	})
}

// SetFilterTerm menyimpan kata kunci apa adanya (tanpa trim).
func (vs *ViewState) SetFilterTerm(term string) {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	if vs.closed {
		return
	}
	vs.filterTerm = term
	vs.recompute()
}

// SetDraftField mengisi satu kolom draft apa adanya.
func (vs *ViewState) SetDraftField(field model.DraftField, value string) error {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	if !field.Valid() {
		return fmt.Errorf("field draft tidak dikenal: %q", field)
	}
	if vs.closed {
		return ErrViewClosed
	}
	switch field {
	case model.FieldNama:
		vs.draft.Nama = value
	case model.FieldTempat:
		vs.draft.Tempat = value
	case model.FieldWaktu:
		vs.draft.Waktu = value
	}
	return nil
}

// Submit mengirim draft ke sheet.
//
// Sukses: kandidat ditambahkan di akhir koleksi (optimistic, tanpa re-fetch)
// dan draft dikosongkan. Gagal: dicatat, draft tetap, koleksi tidak berubah.
// Tidak menolak panggilan paralel; gerbangnya ada di layer input (Submitting).
func (vs *ViewState) Submit(ctx context.Context) error {
	vs.mu.Lock()
	if vs.closed {
		vs.mu.Unlock()
		return ErrViewClosed
	}
	vs.submitting = true
	candidate := vs.draft.ToRecord()
	vs.mu.Unlock()

	err := vs.store.Append(ctx, candidate)

	vs.mu.Lock()
	defer vs.mu.Unlock()

	if vs.closed {
		vs.logger.Debug("hasil append diabaikan, view sudah ditutup", zap.Error(err))
		return err
	}
	vs.submitting = false
	if err != nil {
		vs.logger.Error("Gagal menambahkan data kajian",
			zap.Error(err),
			zap.String("nama", candidate.Nama),
		)
		return err
	}

	vs.collection = append(slices.Clip(vs.collection), candidate)
	vs.draft = model.KajianDraft{}
	vs.recompute()
	return nil
}

// Close menandai view sudah dibongkar; hasil jaringan yang datang
// setelahnya tidak lagi mengubah state.
func (vs *ViewState) Close() {
	vs.mu.Lock()
	vs.closed = true
	vs.mu.Unlock()
}

func (vs *ViewState) Closed() bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.closed
}

// Touch memperbarui waktu akses terakhir (dipakai reaper sesi).
func (vs *ViewState) Touch() {
	vs.mu.Lock()
	vs.lastSeen = vs.now()
	vs.mu.Unlock()
}

func (vs *ViewState) LastSeen() time.Time {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.lastSeen
}

func (vs *ViewState) Collection() []model.KajianRecord {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return slices.Clone(vs.collection)
}

func (vs *ViewState) FilterTerm() string {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.filterTerm
}

func (vs *ViewState) Filtered() []model.KajianRecord {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return slices.Clone(vs.derivedView)
}

func (vs *ViewState) Draft() model.KajianDraft {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.draft
}

func (vs *ViewState) Submitting() bool {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return vs.submitting
}

func (vs *ViewState) Snapshot() ViewSnapshot {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	return ViewSnapshot{
		Collection:  slices.Clone(vs.collection),
		FilterTerm:  vs.filterTerm,
		Filtered:    slices.Clone(vs.derivedView),
		Draft:       vs.draft,
		Submitting:  vs.submitting,
		Initialized: vs.initialized,
	}
}

// recompute: caller wajib pegang mu.
func (vs *ViewState) recompute() {
	vs.derivedView = FilterKajian(vs.collection, vs.filterTerm)
}
