// Package sim is the deterministic simulation core: it owns the player
// state, advances simulated time, and wires the trait ledger, career engine,
// notice scheduler, and event injector together.
package sim

import (
	"log/slog"
	"math"
	"time"

	"github.com/talgya/lifesim/internal/career"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entropy"
	"github.com/talgya/lifesim/internal/event"
	"github.com/talgya/lifesim/internal/notice"
	"github.com/talgya/lifesim/internal/telemetry"
	"github.com/talgya/lifesim/internal/trait"
)

// State is the orchestrator lifecycle.
type State uint8

const (
	StateRunning  State = iota
	StateFinished // terminal; further decisions are ignored
)

// epoch anchors simulated dates. Only differences matter.
var epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

// Sim holds one playthrough. Single-caller: all mutation happens inside
// ApplyDecision/AdvanceTime/Resolve invoked synchronously by the owner.
type Sim struct {
	world  *config.World
	params config.Params

	Ledger  *trait.Ledger
	Notices *notice.Scheduler
	Career  *career.Engine

	injector *event.Injector
	rng      *entropy.Source
	recorder telemetry.Recorder

	state       State
	startDate   time.Time
	date        time.Time
	lastPay     time.Time
	lastInflate time.Time

	achievements []string
	achieved     map[string]bool

	// OnUpdate fires after every completed time advance so observers can
	// refresh. Optional.
	OnUpdate func()
}

// New creates a fresh playthrough over the world, seeded for reproducible
// randomness. recorder may be nil.
func New(world *config.World, seed int64, recorder telemetry.Recorder) *Sim {
	if recorder == nil {
		recorder = telemetry.Nop{}
	}
	rng := entropy.NewSource(seed)
	ledger := trait.NewLedger()
	notices := notice.NewScheduler()

	s := &Sim{
		world:     world,
		params:    world.Params,
		Ledger:    ledger,
		Notices:   notices,
		Career:    career.NewEngine(world, ledger, notices, rng),
		injector:  event.NewInjector(world.Events, world.Params.RandomEventChance, rng),
		rng:       rng,
		recorder:  recorder,
		achieved:  make(map[string]bool),
		startDate: epoch.AddDate(0, 0, world.Params.StartDay),
	}
	s.date = s.startDate
	s.lastPay = s.date
	s.lastInflate = s.date
	s.Ledger.Inc(trait.Money, s.params.StartMoney)

	m := world.Messages.Welcome
	s.Notices.EnqueueOnce(notice.New(m.Title, m.Content, notice.PriorityNormal))

	recorder.Record(telemetry.EventGameStarted, telemetry.Metadata{"seed": seed})
	slog.Info("simulation started", "seed", seed, "start_money", s.params.StartMoney, "start_age", s.params.StartAge)
	return s
}

// Date returns the current simulated date.
func (s *Sim) Date() time.Time { return s.date }

// Money returns the current money trait.
func (s *Sim) Money() int { return s.Ledger.Get(trait.Money) }

// Age returns the player's age in whole years.
func (s *Sim) Age() int {
	days := s.date.Sub(s.startDate).Hours() / 24
	return s.params.StartAge + int(days/365)
}

// Finished reports whether the playthrough reached its terminal state.
func (s *Sim) Finished() bool { return s.state == StateFinished }

// Achievements returns the unlocked labels in unlock order.
func (s *Sim) Achievements() []string {
	out := make([]string, len(s.achievements))
	copy(out, s.achievements)
	return out
}

// ApplyDecision applies the decision's trait deltas, runs its career
// behavior, and advances time by its duration. fromPlayer marks direct
// player actions; event follow-up decisions pass false so one advance never
// chains more than one injected event.
//
// Calling this after the terminal state is an explicit no-op.
func (s *Sim) ApplyDecision(d *config.Decision, fromPlayer bool) {
	if s.state == StateFinished {
		slog.Warn("decision ignored, simulation finished", "decision", d.Name)
		return
	}
	for _, ch := range d.Changes {
		s.Ledger.Inc(ch.Kind, ch.Value)
	}
	s.Career.Apply(d.ID, s.date, s.Age())
	s.recorder.Record(telemetry.EventDecisionApplied, telemetry.Metadata{
		"decision": d.Name,
		"id":       d.ID.String(),
	})
	s.AdvanceTime(d.Days, d.Scaled, fromPlayer)
	slog.Info("decision applied", "decision", d.Name, "date", s.date.Format(time.DateOnly), "money", s.Money())
}

// Available reports whether the decision can currently be taken: no
// outstanding delayed response for its id, min/max trait preconditions hold
// (max bounds are exclusive), it would not drive money negative, and the
// career gate passes.
func (s *Sim) Available(d *config.Decision) bool {
	if s.state == StateFinished {
		return false
	}
	if d.ID != config.DecisionNone && s.Notices.HasDelayed(d.ID.String()) {
		return false
	}
	for _, m := range d.Min {
		if s.Ledger.Get(m.Kind) < m.Value {
			return false
		}
	}
	for _, m := range d.Max {
		if s.Ledger.Get(m.Kind) >= m.Value {
			return false
		}
	}
	if !s.Active(d) {
		return false
	}
	return s.Career.Available(d.ID)
}

// Active reports whether taking the decision keeps money non-negative.
func (s *Sim) Active(d *config.Decision) bool {
	return s.Money()+d.MoneyDelta() >= 0
}

// Resolve consumes an acknowledged notice. choice is the user's answer;
// non-cancelable notices ignore it and always resolve with true.
func (s *Sim) Resolve(n notice.Notice, choice bool) {
	if !n.Cancelable {
		choice = true
	}
	switch n.Followup.Kind {
	case notice.FollowupJobOffer:
		s.Career.ConfirmInvite(n.Followup.Company, n.Followup.Position, choice, s.date)
	case notice.FollowupEvent:
		s.resolveEvent(n.Followup.Event, choice)
	}
}

func (s *Sim) resolveEvent(name string, accept bool) {
	ev := s.world.FindEvent(name)
	if ev == nil {
		return
	}
	if accept {
		s.ApplyDecision(&ev.Decision, false)
		if ev.AcceptMsg != nil {
			s.Notices.Enqueue(notice.New(ev.AcceptMsg.Title, ev.AcceptMsg.Content, notice.PriorityNormal))
		}
		return
	}
	if ev.DeclineMsg != nil {
		s.Notices.Enqueue(notice.New(ev.DeclineMsg.Title, ev.DeclineMsg.Content, notice.PriorityNormal))
	}
}

// Finish transitions to the terminal state: outstanding workflows are
// abandoned, the cause and the life summary are queued, and the achievement
// set is guaranteed non-empty.
func (s *Sim) finish(cause config.Message) {
	s.Notices.Clear()
	s.Notices.Enqueue(notice.New(cause.Title, cause.Content, notice.PriorityCritical))

	days := s.date.Sub(s.startDate).Hours() / 24
	age := int(math.Round(float64(s.params.StartAge) + days/365))
	m := s.world.Messages.Finish.Format(age)
	s.Notices.Enqueue(notice.New(m.Title, m.Content, notice.PriorityCritical))

	if len(s.achievements) == 0 {
		s.addAchievement("Nothing")
	}
	s.state = StateFinished
	s.recorder.Record(telemetry.EventGameEnded, telemetry.Metadata{
		"cause": cause.Title,
		"age":   age,
	})
	slog.Info("simulation finished", "cause", cause.Title, "age", age)
	s.signal()
}

func (s *Sim) addAchievement(label string) {
	if s.achieved[label] {
		return
	}
	s.achieved[label] = true
	s.achievements = append(s.achievements, label)
	s.recorder.Record(telemetry.EventAchievementUnlocked, telemetry.Metadata{"label": label})
	slog.Info("achievement unlocked", "label", label)
}

func (s *Sim) signal() {
	if s.OnUpdate != nil {
		s.OnUpdate()
	}
}
