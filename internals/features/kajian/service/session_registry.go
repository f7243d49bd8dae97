package service

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionRegistry memetakan ID sesi browser → ViewState.
// Satu sesi = satu "halaman" dengan koleksi, filter, dan draft sendiri.
type SessionRegistry struct {
	store   KajianStore
	logger  *zap.Logger
	idleTTL time.Duration
	now     func() time.Time

	mu    sync.Mutex
	views map[string]*ViewState

	cron *cron.Cron
}

func NewSessionRegistry(store KajianStore, logger *zap.Logger, idleTTL time.Duration) *SessionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRegistry{
		store:   store,
		logger:  logger,
		idleTTL: idleTTL,
		now:     time.Now,
		views:   make(map[string]*ViewState),
	}
}

// Get mengembalikan view milik sesi, membuat baru kalau belum ada.
func (r *SessionRegistry) Get(id string) *ViewState {
	r.mu.Lock()
	defer r.mu.Unlock()

	vs, ok := r.views[id]
	if !ok || vs.Closed() {
		vs = NewViewState(r.store, r.logger.With(zap.String("session", shortID(id))))
		vs.now = r.now
		r.views[id] = vs
	}
	vs.Touch()
	return vs
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Reap menutup view yang idle lebih lama dari idleTTL. Mengembalikan jumlah yang dibuang.
func (r *SessionRegistry) Reap() int {
	if r.idleTTL <= 0 {
		return 0
	}
	threshold := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	var stale []*ViewState
	for id, vs := range r.views {
		if vs.LastSeen().Before(threshold) {
			stale = append(stale, vs)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, vs := range stale {
		vs.Close()
	}
	return len(stale)
}

// StartReaper menjadwalkan Reap dengan ekspresi cron (mis. "@every 5m").
func (r *SessionRegistry) StartReaper(schedule string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() {
		if n := r.Reap(); n > 0 {
			r.logger.Info("[SESSION-REAPER] view idle dibuang", zap.Int("count", n), zap.Int("remaining", r.Len()))
		}
	}); err != nil {
		return err
	}

	r.mu.Lock()
	r.cron = c
	r.mu.Unlock()

	c.Start()
	r.logger.Info("[SESSION-REAPER] started", zap.String("schedule", schedule), zap.Duration("idle_ttl", r.idleTTL))
	return nil
}

// Stop menghentikan reaper dan menutup semua view.
func (r *SessionRegistry) Stop() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	views := r.views
	r.views = make(map[string]*ViewState)
	r.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
	for _, vs := range views {
		vs.Close()
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
