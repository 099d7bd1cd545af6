package sim

import (
	"fmt"
	"time"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/notice"
	"github.com/talgya/lifesim/internal/trait"
)

const payPeriodDays = 31

// AdvanceTime moves the simulated clock forward and runs the fixed update
// sequence: pay cycle, attendance, vital thresholds, random events (player
// advances only), achievements, delayed-notice promotion, salary inflation,
// and finally the external update signal.
func (s *Sim) AdvanceTime(days float64, scaled, fromPlayer bool) {
	if s.state == StateFinished {
		return
	}
	if scaled {
		days *= s.params.TimeScale
	}
	s.date = s.date.Add(time.Duration(days * float64(day)))

	s.updatePayment()
	s.updateAttendance()
	if s.updateVitals() {
		return // finish already signalled
	}
	if fromPlayer {
		s.injectEvent()
	}
	s.updateAchievements()
	s.Notices.PromoteDue(s.date)
	s.updateInflation()
	s.signal()
}

// updatePayment credits the unconditional monthly income for every full pay
// period that elapsed.
func (s *Sim) updatePayment() {
	for s.date.Sub(s.lastPay).Hours()/24 > payPeriodDays {
		s.Ledger.Inc(trait.Money, s.params.MonthMoney)
		s.lastPay = s.lastPay.AddDate(0, 0, payPeriodDays)
		m := s.world.Messages.MonthPayment
		s.Notices.EnqueueOnce(notice.New(m.Title, m.Content, notice.PriorityLow))
	}
}

// updateAttendance fires the player for skipping work too long.
func (s *Sim) updateAttendance() {
	if company := s.Career.CheckAttendance(s.date); company != nil {
		s.addAchievement(fmt.Sprintf("Fired from '%s'", company.Name))
	}
}

// updateVitals runs the low-money penalty and the stress/disease/madness
// thresholds. A limit breach terminates the run and short-circuits the
// remaining checks. Returns true when the run finished.
func (s *Sim) updateVitals() bool {
	msgs := &s.world.Messages

	// The broke penalty fires once per lifetime: the notice and the stress
	// hit are gated together by the one-shot ledger.
	if s.Money() == 0 {
		if s.Notices.EnqueueOnce(notice.New(msgs.LowMoney.Title, msgs.LowMoney.Content, notice.PriorityHigh)) {
			s.Ledger.Inc(trait.Stress, s.params.LowMoneyStress)
		}
	}

	vitals := []struct {
		kind    trait.Kind
		limit   int
		warning config.Message
		death   config.Message
		label   string
	}{
		{trait.Stress, s.params.StressLimit, msgs.StressWarning, msgs.HeartAttack, "Died of a heart attack"},
		{trait.Disease, s.params.DiseaseLimit, msgs.DiseaseWarning, msgs.DiseaseDeath, "Died of illness"},
		{trait.Madness, s.params.MadLimit, msgs.MadWarning, msgs.MadDeath, "Lost their mind"},
	}
	for _, v := range vitals {
		value := s.Ledger.Get(v.kind)
		if float64(value) > float64(v.limit)*config.WarnFraction {
			s.Notices.EnqueueOnce(notice.New(v.warning.Title, v.warning.Content, notice.PriorityHigh))
		}
		if value > v.limit {
			s.addAchievement(v.label)
			s.finish(v.death)
			return true
		}
	}

	// Natural death: one roll per advance once old enough.
	if s.Age() >= s.params.MinDeathChanceAge && s.rng.Float() < s.params.DeathChance {
		s.finish(msgs.NaturalDeath)
		return true
	}
	return false
}

// injectEvent makes the per-advance random event check and raises the prompt
// when one fires.
func (s *Sim) injectEvent() {
	ev := s.injector.Roll(func(d *config.Decision) bool {
		return s.Available(d) && s.Active(d)
	})
	if ev == nil {
		return
	}
	s.Notices.Enqueue(notice.Notice{
		Title:      ev.Title,
		Body:       ev.Content,
		Priority:   notice.PriorityHigh,
		Cancelable: ev.Cancelable,
		Followup:   notice.Followup{Kind: notice.FollowupEvent, Event: ev.Name},
	})
}

// updateAchievements re-evaluates position and trait-threshold achievements.
func (s *Sim) updateAchievements() {
	if w := s.Career.Work(); w != nil {
		s.addAchievement(fmt.Sprintf("%s at '%s'", w.CurrentPosition().Name, w.Company.Name))
	}
	for _, rule := range s.world.Achievements {
		if s.Ledger.Get(rule.Trait.Kind()) >= rule.Min {
			s.addAchievement(rule.Label)
		}
	}
}

// updateInflation periodically raises every non-employer company's salary
// bonus.
func (s *Sim) updateInflation() {
	if s.params.InflateDays <= 0 {
		return
	}
	for s.date.Sub(s.lastInflate).Hours()/24 > float64(s.params.InflateDays) {
		s.Career.InflateSalaries(s.params.InflateValue)
		s.lastInflate = s.lastInflate.AddDate(0, 0, s.params.InflateDays)
	}
}
