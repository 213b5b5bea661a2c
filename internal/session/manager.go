package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"DebitNoteEngine/internal/pipeline"
)

// Run is one completed pipeline invocation. A stored Result is immutable;
// a fresh upload always gets a new id, results are never merged.
type Run struct {
	ID        string
	Filename  string
	Config    pipeline.Config
	Result    *pipeline.Result
	CreatedAt time.Time
	ExpiresAt time.Time
}

// RunStore keeps completed runs in memory so the results and download
// endpoints can serve them later. Nothing survives a restart; the engine
// deliberately keeps no run history.
type RunStore struct {
	mu      sync.Mutex
	runs    map[string]*Run
	ttl     time.Duration
	sweeper *cron.Cron
}

func NewRunStore(ttl time.Duration) *RunStore {
	return &RunStore{
		runs: make(map[string]*Run),
		ttl:  ttl,
	}
}

// Put stores a finished run and returns it with its assigned id.
func (s *RunStore) Put(res *pipeline.Result, cfg pipeline.Config, filename string) *Run {
	now := time.Now()
	run := &Run{
		ID:        uuid.New().String(),
		Filename:  filename,
		Config:    cfg,
		Result:    res,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Lock()
	s.runs[run.ID] = run
	s.mu.Unlock()
	return run
}

func (s *RunStore) Get(id string) (*Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if ok && time.Now().After(run.ExpiresAt) {
		delete(s.runs, id)
		return nil, false
	}
	return run, ok
}

func (s *RunStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, id)
}

// CleanupExpired drops runs past their TTL and reports how many went.
func (s *RunStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	n := 0
	for id, run := range s.runs {
		if now.After(run.ExpiresAt) {
			delete(s.runs, id)
			n++
		}
	}
	return n
}

// StartSweeper purges expired runs on the given cron schedule.
func (s *RunStore) StartSweeper(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if n := s.CleanupExpired(); n > 0 {
			log.Printf("[RunStore] purged %d expired runs", n)
		}
	}); err != nil {
		return err
	}
	c.Start()
	s.sweeper = c
	return nil
}

func (s *RunStore) StopSweeper() {
	if s.sweeper != nil {
		s.sweeper.Stop()
	}
}
