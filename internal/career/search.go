package career

import (
	"log/slog"
	"sort"

	"github.com/talgya/lifesim/internal/config"
)

// candidate is one (company, position) pair surfaced by the search.
type candidate struct {
	company  *config.Company
	position int
}

// Search limits: requirement-met pools surface the best offers, fallback
// pools surface the cheapest attainable stretch goals.
const (
	maxMetCandidates      = 5
	maxFallbackCandidates = 10
)

// findCandidate runs the tiered candidate search feeding PublishResume.
//
// Tier order: drop the previously proposed pair when alternatives exist,
// prefer companies never applied to, prefer positions whose requirements are
// already met, then cap the pool by payment (top-paid when qualified, lowest
// -paid otherwise) and pick uniformly.
func (e *Engine) findCandidate(age int) (candidate, bool) {
	if age > e.params.MaxApplyAge {
		slog.Debug("too old to apply", "age", age, "max", e.params.MaxApplyAge)
		return candidate{}, false
	}

	var pool []candidate
	for i := range e.world.Companies {
		company := &e.world.Companies[i]
		if e.banned[company.Name] {
			continue
		}
		if e.work != nil && e.work.Company.Name == company.Name {
			continue
		}
		for p := range company.Positions {
			if e.meets(company.Positions[p].Preconditions) {
				pool = append(pool, candidate{company: company, position: p})
			}
		}
	}
	if len(pool) == 0 {
		return candidate{}, false
	}

	// Never propose the same pair twice in a row when there is a choice.
	if e.lastOffer != nil && len(pool) > 1 {
		filtered := pool[:0]
		for _, c := range pool {
			if c.company.Name == e.lastOffer.company.Name && c.position == e.lastOffer.position {
				continue
			}
			filtered = append(filtered, c)
		}
		pool = filtered
	}

	// Prefer companies the player never applied to.
	if fresh := e.filterFresh(pool); len(fresh) > 0 {
		pool = fresh
	}

	// Prefer positions the player already qualifies for.
	met := e.filterQualified(pool)
	qualified := len(met) > 0
	if qualified {
		pool = met
	}

	if qualified {
		sort.SliceStable(pool, func(i, j int) bool {
			return e.Pay(pool[i].company, pool[i].position) > e.Pay(pool[j].company, pool[j].position)
		})
		if len(pool) > maxMetCandidates {
			pool = pool[:maxMetCandidates]
		}
	} else {
		sort.SliceStable(pool, func(i, j int) bool {
			return e.Pay(pool[i].company, pool[i].position) < e.Pay(pool[j].company, pool[j].position)
		})
		if len(pool) > maxFallbackCandidates {
			pool = pool[:maxFallbackCandidates]
		}
	}

	pick := pool[e.rng.Intn(len(pool))]
	e.lastOffer = &pick
	slog.Debug("candidate selected",
		"company", pick.company.Name,
		"position", pick.company.Positions[pick.position].Name,
		"pool", len(pool),
		"qualified", qualified,
	)
	return pick, true
}

func (e *Engine) filterFresh(pool []candidate) []candidate {
	var out []candidate
	for _, c := range pool {
		if !e.applied[c.company.Name] {
			out = append(out, c)
		}
	}
	return out
}

func (e *Engine) filterQualified(pool []candidate) []candidate {
	var out []candidate
	for _, c := range pool {
		if e.meets(c.company.Positions[c.position].Requirements) {
			out = append(out, c)
		}
	}
	return out
}
