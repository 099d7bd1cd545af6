// Package event injects scripted one-time occurrences into the simulation.
// Events compete with player decisions for trait effects but fire at most
// once per playthrough each.
package event

import (
	"log/slog"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entropy"
)

// Injector holds the scripted event pool and the used-set for one run.
type Injector struct {
	events []config.RandomEvent
	used   map[string]bool
	chance float64
	rng    *entropy.Source
}

// NewInjector creates an injector over the configured event list.
func NewInjector(events []config.RandomEvent, chance float64, rng *entropy.Source) *Injector {
	return &Injector{
		events: events,
		used:   make(map[string]bool),
		chance: chance,
		rng:    rng,
	}
}

// Roll makes the per-advance probabilistic check. When it passes, one
// not-yet-used event whose decision currently clears the eligible gate is
// picked uniformly, marked used, and returned. Returns nil when nothing
// fires.
func (in *Injector) Roll(eligible func(*config.Decision) bool) *config.RandomEvent {
	if in.rng.Float() >= in.chance {
		return nil
	}
	var pool []*config.RandomEvent
	for i := range in.events {
		ev := &in.events[i]
		if in.used[ev.Name] {
			continue
		}
		if !eligible(&ev.Decision) {
			continue
		}
		pool = append(pool, ev)
	}
	if len(pool) == 0 {
		return nil
	}
	ev := pool[in.rng.Intn(len(pool))]
	in.used[ev.Name] = true
	slog.Info("random event fired", "event", ev.Name, "pool", len(pool))
	return ev
}

// Used reports whether the named event already fired this run.
func (in *Injector) Used(name string) bool { return in.used[name] }
