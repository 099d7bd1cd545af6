package notice

import (
	"log/slog"
	"sort"
	"time"
)

// delayed is a notice waiting for its due date, keyed by the decision that
// produced it.
type delayed struct {
	key    string
	due    time.Time
	notice Notice
}

// Scheduler owns the pending notice queue and the delayed-notice table.
// The one-shot ledger is scoped to the scheduler instance, so suppression
// lasts exactly one simulation lifetime.
type Scheduler struct {
	pending []Notice
	seen    map[string]bool
	delayed []delayed
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{seen: make(map[string]bool)}
}

// Enqueue inserts the notice and re-sorts pending by priority ascending.
// Equal priorities keep insertion order.
func (s *Scheduler) Enqueue(n Notice) {
	s.pending = append(s.pending, n)
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].Priority < s.pending[j].Priority
	})
}

// EnqueueOnce enqueues unless a notice with the same title was ever enqueued
// through it before. Reports whether the notice actually fired, so callers
// can tie side effects to the first occurrence.
func (s *Scheduler) EnqueueOnce(n Notice) bool {
	if s.seen[n.Title] {
		return false
	}
	s.seen[n.Title] = true
	s.Enqueue(n)
	return true
}

// Peek returns the highest-priority pending notice without removing it.
func (s *Scheduler) Peek() (Notice, bool) {
	if len(s.pending) == 0 {
		return Notice{}, false
	}
	return s.pending[0], true
}

// Pop removes and returns the highest-priority pending notice.
func (s *Scheduler) Pop() (Notice, bool) {
	if len(s.pending) == 0 {
		return Notice{}, false
	}
	n := s.pending[0]
	s.pending = s.pending[1:]
	return n, true
}

// PendingCount returns the number of queued notices.
func (s *Scheduler) PendingCount() int {
	return len(s.pending)
}

// Pending returns a copy of the queue for read-only observers.
func (s *Scheduler) Pending() []Notice {
	out := make([]Notice, len(s.pending))
	copy(out, s.pending)
	return out
}

// Delay schedules the notice to become pending at due, replacing any delayed
// notice already registered under key. At most one delayed notice per key
// exists at any time.
func (s *Scheduler) Delay(key string, n Notice, due time.Time) {
	kept := s.delayed[:0]
	for _, d := range s.delayed {
		if d.key != key {
			kept = append(kept, d)
		}
	}
	s.delayed = append(kept, delayed{key: key, due: due, notice: n})
	slog.Debug("notice delayed", "key", key, "due", due, "title", n.Title)
}

// HasDelayed reports whether a delayed notice for key is outstanding.
// Decisions with an outstanding response stay unavailable until it resolves.
func (s *Scheduler) HasDelayed(key string) bool {
	for _, d := range s.delayed {
		if d.key == key {
			return true
		}
	}
	return false
}

// PromoteDue moves every delayed notice whose due time has passed into the
// pending queue. Called once per clock advance.
func (s *Scheduler) PromoteDue(now time.Time) {
	kept := s.delayed[:0]
	for _, d := range s.delayed {
		if !d.due.After(now) {
			s.Enqueue(d.notice)
		} else {
			kept = append(kept, d)
		}
	}
	s.delayed = kept
}

// Clear drops all pending and delayed notices. Used on termination, which
// abandons any outstanding confirmation workflow.
func (s *Scheduler) Clear() {
	s.pending = nil
	s.delayed = nil
}
