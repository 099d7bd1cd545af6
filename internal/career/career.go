// Package career implements the employment side of the simulation: job
// search, the invite/interview workflow, promotion, attendance, and the
// per-company runtime facts (bans, past applications, salary inflation).
package career

import (
	"log/slog"
	"time"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entropy"
	"github.com/talgya/lifesim/internal/notice"
	"github.com/talgya/lifesim/internal/trait"
)

// WorkState is the player's current employment. Position indexes into the
// company's seniority-ordered position list, so the next rung is the next
// index.
type WorkState struct {
	Company    *config.Company
	Position   int
	Sessions   int // work actions since hire or last reset
	LastWorked time.Time
}

// CurrentPosition returns the held position.
func (w *WorkState) CurrentPosition() *config.Position {
	return &w.Company.Positions[w.Position]
}

// Engine owns employment state and the mutable per-company side-table.
// Static company data stays untouched; everything that changes at runtime
// lives here, keyed by company name.
type Engine struct {
	world   *config.World
	params  config.Params
	ledger  *trait.Ledger
	notices *notice.Scheduler
	rng     *entropy.Source

	work *WorkState // nil while unemployed

	banned    map[string]bool
	applied   map[string]bool
	inflation map[string]int

	lastOffer *candidate // anti-repetition memory for the search
}

// NewEngine creates an unemployed career engine over the given world.
func NewEngine(world *config.World, ledger *trait.Ledger, notices *notice.Scheduler, rng *entropy.Source) *Engine {
	return &Engine{
		world:     world,
		params:    world.Params,
		ledger:    ledger,
		notices:   notices,
		rng:       rng,
		banned:    make(map[string]bool),
		applied:   make(map[string]bool),
		inflation: make(map[string]int),
	}
}

// Work returns the current employment, nil while unemployed.
func (e *Engine) Work() *WorkState { return e.work }

// Pay returns the effective payment of a position at a company: base plus
// that company's accumulated inflation bonus.
func (e *Engine) Pay(c *config.Company, pos int) int {
	return c.Positions[pos].Payment + e.inflation[c.Name]
}

// Available reports whether the career-gated decision can currently be
// taken. Non-career decisions are always fine from this engine's view.
func (e *Engine) Available(id config.DecisionID) bool {
	switch id {
	case config.DecisionWork:
		return e.work != nil
	case config.DecisionWorkPromotion:
		return e.work != nil &&
			e.work.Sessions > e.params.MinPromotionTimes &&
			e.work.Position+1 < len(e.work.Company.Positions)
	case config.DecisionWorkRecommend:
		return e.work != nil && e.work.Sessions > e.params.MinRecommendTimes
	default:
		return true
	}
}

// Apply dispatches the career behavior of a decision. now is the simulated
// date, age the player's current age in years.
func (e *Engine) Apply(id config.DecisionID, now time.Time, age int) {
	switch id {
	case config.DecisionPublishResume:
		e.publishResume(now, age)
	case config.DecisionWork:
		e.workSession(now)
	case config.DecisionWorkPromotion:
		e.askPromotion()
	case config.DecisionWorkRecommend:
		e.resetSessions("recommendation")
	}
}

// publishResume runs the candidate search and schedules the response as a
// delayed notice three days out, superseding any earlier outstanding one.
func (e *Engine) publishResume(now time.Time, age int) {
	msgs := &e.world.Messages
	key := config.DecisionPublishResume.String()

	cand, ok := e.findCandidate(age)
	var n notice.Notice
	if ok {
		pos := &cand.company.Positions[cand.position]
		delta := e.Pay(cand.company, cand.position) - e.currentPay()
		msg := msgs.WorkInvite.Format(cand.company.Name, pos.Name, delta)
		n = notice.Notice{
			Title:      msg.Title,
			Body:       msg.Content,
			Priority:   notice.PriorityHigh,
			Cancelable: true,
			Followup: notice.Followup{
				Kind:     notice.FollowupJobOffer,
				Company:  cand.company.Name,
				Position: cand.position,
			},
		}
		slog.Info("job invite prepared", "company", cand.company.Name, "position", pos.Name, "pay_delta", delta)
	} else {
		n = notice.New(msgs.NoWorkInvites.Title, msgs.NoWorkInvites.Content, notice.PriorityNormal)
		slog.Info("resume published, no candidates")
	}
	e.notices.Delay(key, n, now.Add(resumeResponseDelay))
}

const (
	resumeResponseDelay = 3 * 24 * time.Hour
	hiredDelay          = 1 * 24 * time.Hour
	rejectedDelay       = 3 * 24 * time.Hour
)

// ConfirmInvite resolves an accepted or declined interview invitation.
// Requirements are re-checked at confirmation time; they may have drifted
// since the offer was made.
func (e *Engine) ConfirmInvite(companyName string, position int, accept bool, now time.Time) {
	if !accept {
		return
	}
	company := e.world.FindCompany(companyName)
	if company == nil || position >= len(company.Positions) {
		return
	}
	pos := &company.Positions[position]
	msgs := &e.world.Messages
	key := config.DecisionPublishResume.String()

	if !e.meets(pos.Requirements) {
		msg := msgs.InterviewFailed.Format(company.Name, pos.Name)
		e.notices.Delay(key, notice.New(msg.Title, msg.Content, notice.PriorityNormal), now.Add(rejectedDelay))
		slog.Info("interview failed", "company", company.Name, "position", pos.Name)
		return
	}

	if e.work != nil {
		e.applied[e.work.Company.Name] = true
	}
	e.work = &WorkState{Company: company, Position: position, LastWorked: now}
	msg := msgs.NewJob.Format(pos.Name, company.Name)
	e.notices.Delay(key, notice.New(msg.Title, msg.Content, notice.PriorityHigh), now.Add(hiredDelay))
	slog.Info("hired", "company", company.Name, "position", pos.Name)
}

// workSession credits one day of pay and advances tenure.
func (e *Engine) workSession(now time.Time) {
	if e.work == nil {
		return
	}
	pay := e.Pay(e.work.Company, e.work.Position)
	e.ledger.Inc(trait.Money, pay)
	e.work.Sessions++
	e.work.LastWorked = now

	m := e.world.Messages.WorkProgressNotice
	e.notices.EnqueueOnce(notice.New(m.Title, m.Content, notice.PriorityLow))
}

// askPromotion moves to the next rung when requirements are met; otherwise
// tenure resets and the player re-qualifies from zero. Never both.
func (e *Engine) askPromotion() {
	if e.work == nil || e.work.Position+1 >= len(e.work.Company.Positions) {
		return
	}
	next := e.work.Position + 1
	pos := &e.work.Company.Positions[next]
	msgs := &e.world.Messages
	if e.meets(pos.Requirements) {
		e.work.Position = next
		msg := msgs.PromotionOk.Format(pos.Name, e.work.Company.Name)
		e.notices.Enqueue(notice.New(msg.Title, msg.Content, notice.PriorityNormal))
		slog.Info("promoted", "company", e.work.Company.Name, "position", pos.Name)
		return
	}
	e.resetSessions("failed promotion")
	e.notices.Enqueue(notice.New(msgs.PromotionNone.Title, msgs.PromotionNone.Content, notice.PriorityNormal))
}

func (e *Engine) resetSessions(reason string) {
	if e.work == nil {
		return
	}
	e.work.Sessions = 0
	slog.Debug("work sessions reset", "reason", reason)
}

// CheckAttendance fires the player when the gap since the last worked day
// exceeds the allowed maximum. The employer is banned from future searches.
// Returns the former employer when a firing happened.
func (e *Engine) CheckAttendance(now time.Time) *config.Company {
	if e.work == nil {
		return nil
	}
	allowed := float64(e.params.MaxSkipWorkDays) * e.params.TimeScale
	gap := now.Sub(e.work.LastWorked).Hours() / 24
	if gap <= allowed {
		return nil
	}
	company := e.work.Company
	e.Ban(company.Name)
	e.work = nil

	msg := e.world.Messages.LostJob.Format(company.Name)
	e.notices.Enqueue(notice.New(msg.Title, msg.Content, notice.PriorityHigh))
	e.ledger.Inc(trait.BadWorker, 1)
	slog.Info("fired for absence", "company", company.Name, "gap_days", gap)
	return company
}

// Ban permanently hides the company from candidate search.
func (e *Engine) Ban(name string) {
	e.banned[name] = true
}

// Banned reports whether the company is excluded from search.
func (e *Engine) Banned(name string) bool { return e.banned[name] }

// InflateSalaries raises the inflation bonus of every company except the
// current employer. The orchestrator drives the period.
func (e *Engine) InflateSalaries(amount int) {
	for i := range e.world.Companies {
		name := e.world.Companies[i].Name
		if e.work != nil && e.work.Company.Name == name {
			continue
		}
		e.inflation[name] += amount
	}
}

// currentPay returns the effective pay of the held position, zero while
// unemployed.
func (e *Engine) currentPay() int {
	if e.work == nil {
		return 0
	}
	return e.Pay(e.work.Company, e.work.Position)
}

// meets reports whether every threshold is satisfied by the ledger.
func (e *Engine) meets(reqs config.Traits) bool {
	for _, r := range reqs {
		if e.ledger.Get(r.Kind) < r.Value {
			return false
		}
	}
	return true
}
