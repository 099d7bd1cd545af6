package career

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entropy"
	"github.com/talgya/lifesim/internal/notice"
	"github.com/talgya/lifesim/internal/trait"
)

var t0 = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

func skillPos(name string, pay, precond, req int) config.Position {
	p := config.Position{Name: name, Payment: pay}
	if precond > 0 {
		p.Preconditions = config.Traits{{Kind: trait.Skill, Value: precond}}
	}
	if req > 0 {
		p.Requirements = config.Traits{{Kind: trait.Skill, Value: req}}
	}
	return p
}

func testWorld(companies ...config.Company) *config.World {
	return &config.World{
		Params:    config.DefaultParams(),
		Companies: companies,
		Messages:  config.DefaultMessages(),
	}
}

type fixture struct {
	engine  *Engine
	ledger  *trait.Ledger
	notices *notice.Scheduler
}

func newFixture(seed int64, w *config.World) *fixture {
	ledger := trait.NewLedger()
	notices := notice.NewScheduler()
	return &fixture{
		engine:  NewEngine(w, ledger, notices, entropy.NewSource(seed)),
		ledger:  ledger,
		notices: notices,
	}
}

func TestAvailable_WorkRequiresEmployment(t *testing.T) {
	w := testWorld(config.Company{Name: "Acme", Positions: []config.Position{skillPos("Clerk", 100, 0, 0)}})
	f := newFixture(1, w)

	assert.False(t, f.engine.Available(config.DecisionWork))
	assert.False(t, f.engine.Available(config.DecisionWorkPromotion))
	assert.False(t, f.engine.Available(config.DecisionWorkRecommend))
	assert.True(t, f.engine.Available(config.DecisionPublishResume))
	assert.True(t, f.engine.Available(config.DecisionNone))

	f.engine.work = &WorkState{Company: &w.Companies[0], LastWorked: t0}
	assert.True(t, f.engine.Available(config.DecisionWork))
}

func TestAvailable_PromotionNeedsTenureAndNextRung(t *testing.T) {
	w := testWorld(config.Company{Name: "Acme", Positions: []config.Position{
		skillPos("Clerk", 100, 0, 0),
		skillPos("Manager", 200, 0, 50),
	}})
	w.Params.MinPromotionTimes = 6
	f := newFixture(1, w)
	f.engine.work = &WorkState{Company: &w.Companies[0], Sessions: 6, LastWorked: t0}

	// Sessions must exceed the threshold, not just reach it.
	assert.False(t, f.engine.Available(config.DecisionWorkPromotion))
	f.engine.work.Sessions = 7
	assert.True(t, f.engine.Available(config.DecisionWorkPromotion))

	// Top of the ladder: no next rung, no promotion.
	f.engine.work.Position = 1
	assert.False(t, f.engine.Available(config.DecisionWorkPromotion))
}

func TestAskPromotion_AdvancesOrResetsNeverBoth(t *testing.T) {
	w := testWorld(config.Company{Name: "Acme", Positions: []config.Position{
		skillPos("Clerk", 100, 0, 0),
		skillPos("Manager", 200, 0, 50),
	}})
	f := newFixture(1, w)
	f.engine.work = &WorkState{Company: &w.Companies[0], Sessions: 9, LastWorked: t0}

	// Requirements unmet: counter resets, position stays.
	f.engine.askPromotion()
	assert.Equal(t, 0, f.engine.work.Position)
	assert.Equal(t, 0, f.engine.work.Sessions)
	n, ok := f.notices.Pop()
	require.True(t, ok)
	assert.Equal(t, w.Messages.PromotionNone.Title, n.Title)

	// Requirements met: position advances, counter untouched.
	f.engine.work.Sessions = 9
	f.ledger.Inc(trait.Skill, 50)
	f.engine.askPromotion()
	assert.Equal(t, 1, f.engine.work.Position)
	assert.Equal(t, 9, f.engine.work.Sessions)
	n, ok = f.notices.Pop()
	require.True(t, ok)
	assert.Equal(t, w.Messages.PromotionOk.Title, n.Title)
}

func TestWorkSession_PaysWithInflation(t *testing.T) {
	w := testWorld(
		config.Company{Name: "Acme", Positions: []config.Position{skillPos("Clerk", 100, 0, 0)}},
		config.Company{Name: "Beta", Positions: []config.Position{skillPos("Clerk", 100, 0, 0)}},
	)
	f := newFixture(1, w)
	f.engine.work = &WorkState{Company: &w.Companies[0], LastWorked: t0}

	// Inflation never touches the employer.
	f.engine.InflateSalaries(25)
	assert.Equal(t, 100, f.engine.Pay(&w.Companies[0], 0))
	assert.Equal(t, 125, f.engine.Pay(&w.Companies[1], 0))

	later := t0.AddDate(0, 0, 5)
	f.engine.workSession(later)
	assert.Equal(t, 100, f.ledger.Get(trait.Money))
	assert.Equal(t, 1, f.engine.work.Sessions)
	assert.Equal(t, later, f.engine.work.LastWorked)

	// The progress notice is one-shot.
	f.engine.workSession(later)
	assert.Equal(t, 1, f.notices.PendingCount())
}

func TestPublishResume_SchedulesDelayedResponse(t *testing.T) {
	w := testWorld(config.Company{Name: "Acme", Positions: []config.Position{skillPos("Clerk", 100, 0, 0)}})
	f := newFixture(1, w)

	f.engine.publishResume(t0, 20)
	key := config.DecisionPublishResume.String()
	require.True(t, f.notices.HasDelayed(key))

	// Resubmitting replaces the outstanding response instead of stacking.
	f.engine.publishResume(t0.AddDate(0, 0, 1), 20)
	require.True(t, f.notices.HasDelayed(key))

	f.notices.PromoteDue(t0.AddDate(0, 0, 3))
	assert.Equal(t, 0, f.notices.PendingCount())
	f.notices.PromoteDue(t0.AddDate(0, 0, 4))
	require.Equal(t, 1, f.notices.PendingCount())

	n, _ := f.notices.Pop()
	assert.True(t, n.Cancelable)
	assert.Equal(t, notice.PriorityHigh, n.Priority)
	assert.Equal(t, notice.FollowupJobOffer, n.Followup.Kind)
	assert.Equal(t, "Acme", n.Followup.Company)
}

func TestPublishResume_NoCandidates(t *testing.T) {
	w := testWorld(config.Company{Name: "Acme", Positions: []config.Position{skillPos("Clerk", 100, 50, 0)}})
	f := newFixture(1, w)

	f.engine.publishResume(t0, 20)
	f.notices.PromoteDue(t0.AddDate(0, 0, 4))
	n, ok := f.notices.Pop()
	require.True(t, ok)
	assert.Equal(t, w.Messages.NoWorkInvites.Title, n.Title)
	assert.False(t, n.Cancelable)
	assert.Equal(t, notice.FollowupNone, n.Followup.Kind)
}

func TestConfirmInvite_HiredWhenRequirementsMet(t *testing.T) {
	w := testWorld(
		config.Company{Name: "Acme", Positions: []config.Position{skillPos("Clerk", 100, 0, 0)}},
		config.Company{Name: "Beta", Positions: []config.Position{skillPos("Senior", 300, 0, 20)}},
	)
	f := newFixture(1, w)
	f.engine.work = &WorkState{Company: &w.Companies[0], Sessions: 4, LastWorked: t0}
	f.ledger.Inc(trait.Skill, 20)

	f.engine.ConfirmInvite("Beta", 0, true, t0)

	require.NotNil(t, f.engine.work)
	assert.Equal(t, "Beta", f.engine.work.Company.Name)
	assert.Equal(t, 0, f.engine.work.Sessions)
	assert.True(t, f.engine.applied["Acme"], "previous employer should be marked applied")

	f.notices.PromoteDue(t0.AddDate(0, 0, 1))
	n, ok := f.notices.Pop()
	require.True(t, ok)
	assert.Equal(t, w.Messages.NewJob.Title, n.Title)
}

func TestConfirmInvite_FailsWhenRequirementsDrifted(t *testing.T) {
	w := testWorld(config.Company{Name: "Beta", Positions: []config.Position{skillPos("Senior", 300, 0, 20)}})
	f := newFixture(1, w)

	f.engine.ConfirmInvite("Beta", 0, true, t0)
	assert.Nil(t, f.engine.work)

	// The rejection arrives three days out, not one.
	f.notices.PromoteDue(t0.AddDate(0, 0, 2))
	assert.Equal(t, 0, f.notices.PendingCount())
	f.notices.PromoteDue(t0.AddDate(0, 0, 4))
	n, ok := f.notices.Pop()
	require.True(t, ok)
	assert.Equal(t, w.Messages.InterviewFailed.Title, n.Title)
}

func TestConfirmInvite_DeclineDoesNothing(t *testing.T) {
	w := testWorld(config.Company{Name: "Beta", Positions: []config.Position{skillPos("Senior", 300, 0, 0)}})
	f := newFixture(1, w)

	f.engine.ConfirmInvite("Beta", 0, false, t0)
	assert.Nil(t, f.engine.work)
	assert.False(t, f.notices.HasDelayed(config.DecisionPublishResume.String()))
}

func TestCheckAttendance_FiresAfterGap(t *testing.T) {
	w := testWorld(config.Company{Name: "Acme", Positions: []config.Position{skillPos("Clerk", 100, 0, 0)}})
	w.Params.MaxSkipWorkDays = 10
	w.Params.TimeScale = 1
	f := newFixture(1, w)
	f.engine.work = &WorkState{Company: &w.Companies[0], LastWorked: t0}

	// Inside the allowance: nothing happens.
	assert.Nil(t, f.engine.CheckAttendance(t0.AddDate(0, 0, 10)))
	require.NotNil(t, f.engine.work)

	fired := f.engine.CheckAttendance(t0.AddDate(0, 0, 11))
	require.NotNil(t, fired)
	assert.Equal(t, "Acme", fired.Name)
	assert.Nil(t, f.engine.work)
	assert.True(t, f.engine.Banned("Acme"))
	assert.Equal(t, 1, f.ledger.Get(trait.BadWorker))

	n, ok := f.notices.Pop()
	require.True(t, ok)
	assert.Equal(t, w.Messages.LostJob.Title, n.Title)
}
