package sim

import (
	"time"

	"github.com/talgya/lifesim/internal/config"
)

// Snapshot is the externally observable state, safe to serialize.
type Snapshot struct {
	Date         time.Time      `json:"date"`
	Age          int            `json:"age"`
	Money        int            `json:"money"`
	Traits       map[string]int `json:"traits"`
	Employment   *Employment    `json:"employment,omitempty"`
	Achievements []string       `json:"achievements"`
	Finished     bool           `json:"finished"`
}

// Employment describes the current job for observers.
type Employment struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Payment  int    `json:"payment"`
	Sessions int    `json:"sessions"`
}

// Snapshot captures the current state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		Date:         s.date,
		Age:          s.Age(),
		Money:        s.Money(),
		Traits:       s.Ledger.Snapshot(),
		Achievements: s.Achievements(),
		Finished:     s.Finished(),
	}
	if w := s.Career.Work(); w != nil {
		snap.Employment = &Employment{
			Company:  w.Company.Name,
			Position: w.CurrentPosition().Name,
			Payment:  s.Career.Pay(w.Company, w.Position),
			Sessions: w.Sessions,
		}
	}
	return snap
}

// DecisionView is one decision with its current gating for the UI
// collaborator.
type DecisionView struct {
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	Days      float64 `json:"days"`
	Available bool    `json:"available"`
	Active    bool    `json:"active"`
}

// Decisions lists every configured decision with availability computed
// against the current state.
func (s *Sim) Decisions() []DecisionView {
	var out []DecisionView
	for i := range s.world.Categories {
		cat := &s.world.Categories[i]
		for j := range cat.Decisions {
			d := &cat.Decisions[j]
			out = append(out, DecisionView{
				Category:  cat.Name,
				Name:      d.Name,
				Days:      d.Days,
				Available: s.Available(d),
				Active:    s.Active(d),
			})
		}
	}
	return out
}

// Find resolves a decision by category and name for external callers.
func (s *Sim) Find(category, name string) (*config.Decision, bool) {
	d := s.world.FindDecision(category, name)
	return d, d != nil
}
