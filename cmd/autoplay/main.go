// Command autoplay drives a simulation to termination with a simple greedy
// policy and reports how the life went. Useful for balance tuning and for
// checking that fixed seeds reproduce identical runs.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/sim"
	"github.com/talgya/lifesim/internal/telemetry"
	"github.com/talgya/lifesim/internal/trait"
)

func main() {
	var (
		worldPath = flag.String("world", "", "world YAML file (empty = built-in world)")
		seed      = flag.Int64("seed", 42, "random seed")
		maxMoves  = flag.Int("max-moves", 5000, "safety cap on applied decisions")
		verbose   = flag.Bool("v", false, "log every move")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	world := config.DefaultWorld()
	if *worldPath != "" {
		loaded, err := config.Load(*worldPath)
		if err != nil {
			slog.Error("failed to load world", "path", *worldPath, "error", err)
			os.Exit(1)
		}
		world = loaded
	}

	recorder := telemetry.NewMemoryRecorder()
	s := sim.New(world, *seed, recorder)

	moves := 0
	for iter := 0; !s.Finished() && iter < *maxMoves; iter++ {
		drainNotices(s)
		if s.Finished() {
			break
		}
		d := pickDecision(s)
		if d == nil {
			// Everything gated: let time pass and retry.
			s.AdvanceTime(1, false, false)
			continue
		}
		s.ApplyDecision(d, true)
		moves++
	}
	drainNotices(s)

	snap := s.Snapshot()
	slog.Warn("run complete",
		"seed", *seed,
		"moves", moves,
		"age", snap.Age,
		"date", snap.Date.Format(time.DateOnly),
		"money", snap.Money,
		"finished", snap.Finished,
		"achievements", len(snap.Achievements),
		"telemetry_events", len(recorder.Events()),
	)
	for _, a := range snap.Achievements {
		slog.Warn("achievement", "label", a)
	}
}

// drainNotices acknowledges every pending notice, accepting all offers.
func drainNotices(s *sim.Sim) {
	for {
		n, ok := s.Notices.Pop()
		if !ok {
			return
		}
		s.Resolve(n, true)
	}
}

// pickDecision is a greedy career policy: work when employed, job-hunt when
// not, study when young, rest when frayed.
func pickDecision(s *sim.Sim) *config.Decision {
	stress := s.Ledger.Get(trait.Stress)

	// Cool down before stress becomes lethal.
	if stress > 50 {
		if d := firstAvailable(s, "Life", "Rest at home"); d != nil {
			return d
		}
	}
	if d := firstAvailable(s, "Career", "Go to work"); d != nil {
		return d
	}
	if d := firstAvailable(s, "Career", "Ask for promotion"); d != nil {
		return d
	}
	if d := firstAvailable(s, "Career", "Publish résumé"); d != nil {
		return d
	}
	// Unemployed and waiting on a résumé response: improve the odds.
	for _, name := range []string{"Advanced engineering", "Programming course", "Public speaking club"} {
		if d := firstAvailable(s, "Study", name); d != nil {
			return d
		}
	}
	if d := firstAvailable(s, "Life", "Morning runs"); d != nil {
		return d
	}
	return nil
}

func firstAvailable(s *sim.Sim, category, name string) *config.Decision {
	d, ok := s.Find(category, name)
	if !ok || !s.Available(d) {
		return nil
	}
	return d
}
