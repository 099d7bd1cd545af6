// Package trait provides the player attribute ledger.
// Every numeric fact about the player (money, stress, skills) is a trait.
package trait

import (
	"fmt"
	"log/slog"
)

// Kind enumerates the tracked player attributes.
type Kind uint8

const (
	Money     Kind = iota
	Stress
	Disease
	Madness
	Skill
	Talking
	Sport
	Social
	Alcohol
	BadWorker
)

var kindNames = map[Kind]string{
	Money:     "money",
	Stress:    "stress",
	Disease:   "disease",
	Madness:   "madness",
	Skill:     "skill",
	Talking:   "talking",
	Sport:     "sport",
	Social:    "social",
	Alcohol:   "alcohol",
	BadWorker: "bad_worker",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// String returns the stable lowercase name used in config files and logs.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("trait(%d)", k)
}

// ParseKind resolves a config-file trait name.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown trait %q", name)
}

// Value pairs a trait kind with a threshold or delta.
// Used for decision preconditions, position requirements, and trait changes.
type Value struct {
	Kind  Kind
	Value int
}

// Ledger is a total mapping from trait kind to a non-negative integer.
// Absent kinds read as zero. Mutation never fails.
type Ledger struct {
	values map[Kind]int
}

// NewLedger creates an empty ledger (all traits zero).
func NewLedger() *Ledger {
	return &Ledger{values: make(map[Kind]int)}
}

// Get returns the current value, zero for unset kinds.
func (l *Ledger) Get(k Kind) int {
	return l.values[k]
}

// Inc adds delta to the trait, clamping the result at zero.
func (l *Ledger) Inc(k Kind, delta int) {
	v := l.values[k] + delta
	if v < 0 {
		v = 0
	}
	l.values[k] = v
	slog.Debug("trait changed", "trait", k, "delta", delta, "value", v)
}

// Each calls fn for every trait that has been touched.
func (l *Ledger) Each(fn func(k Kind, v int)) {
	for k, v := range l.values {
		fn(k, v)
	}
}

// Snapshot returns a name→value copy for external observers.
func (l *Ledger) Snapshot() map[string]int {
	out := make(map[string]int, len(l.values))
	l.Each(func(k Kind, v int) { out[k.String()] = v })
	return out
}
