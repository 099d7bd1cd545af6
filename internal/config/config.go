// Package config holds the immutable reference data the simulation runs on:
// companies and positions, the decision tree, the message catalog, scripted
// random events, achievement rules, and tunable parameters.
// Loaded once from YAML and treated as read-only afterwards.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/talgya/lifesim/internal/trait"
)

// DecisionID tags decisions that carry special engine behavior. Most
// decisions are plain trait trades and use DecisionNone.
type DecisionID uint8

const (
	DecisionNone DecisionID = iota
	DecisionPublishResume
	DecisionWork
	DecisionWorkPromotion
	DecisionWorkRecommend
)

var decisionIDNames = map[DecisionID]string{
	DecisionNone:          "",
	DecisionPublishResume: "publish_resume",
	DecisionWork:          "work",
	DecisionWorkPromotion: "work_promotion",
	DecisionWorkRecommend: "work_recommend",
}

// String returns the stable config-file name of the id.
func (id DecisionID) String() string { return decisionIDNames[id] }

// UnmarshalYAML resolves a decision id from its config-file name.
func (id *DecisionID) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for k, n := range decisionIDNames {
		if n == name {
			*id = k
			return nil
		}
	}
	return fmt.Errorf("unknown decision id %q", name)
}

// MarshalYAML emits the config-file name.
func (id DecisionID) MarshalYAML() (any, error) { return id.String(), nil }

// Traits is a trait→value list. In YAML it reads as a plain mapping of
// trait names to integers; order is normalized by kind for determinism.
type Traits []trait.Value

// UnmarshalYAML decodes a {trait-name: value} mapping.
func (t *Traits) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]int
	if err := value.Decode(&m); err != nil {
		return err
	}
	out := make(Traits, 0, len(m))
	for name, v := range m {
		k, err := trait.ParseKind(name)
		if err != nil {
			return err
		}
		out = append(out, trait.Value{Kind: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	*t = out
	return nil
}

// MarshalYAML emits the {trait-name: value} mapping form.
func (t Traits) MarshalYAML() (any, error) {
	m := make(map[string]int, len(t))
	for _, v := range t {
		m[v.Kind.String()] = v.Value
	}
	return m, nil
}

// Get returns the value for kind, zero if absent.
func (t Traits) Get(k trait.Kind) (int, bool) {
	for _, v := range t {
		if v.Kind == k {
			return v.Value, true
		}
	}
	return 0, false
}

// Decision is one configured player action: preconditions, trait effects,
// and a time cost. Min thresholds are inclusive lower bounds; Max bounds are
// exclusive (the trait must stay strictly below them).
type Decision struct {
	Name    string     `yaml:"name"`
	ID      DecisionID `yaml:"id,omitempty"`
	Days    float64    `yaml:"days"`
	Min     Traits     `yaml:"min,omitempty"`
	Max     Traits     `yaml:"max,omitempty"`
	Changes Traits     `yaml:"changes,omitempty"`
	Scaled  bool       `yaml:"scaled,omitempty"`
}

// MoneyDelta returns the money change this decision applies, zero if none.
func (d *Decision) MoneyDelta() int {
	v, _ := d.Changes.Get(trait.Money)
	return v
}

// Category groups decisions for presentation.
type Category struct {
	Name      string     `yaml:"name"`
	Decisions []Decision `yaml:"decisions"`
}

// Position is one rung of a company's career ladder. Preconditions gate
// being offered the position; Requirements gate actually being hired.
type Position struct {
	Name          string `yaml:"name"`
	Payment       int    `yaml:"payment"`
	Preconditions Traits `yaml:"preconditions,omitempty"`
	Requirements  Traits `yaml:"requirements,omitempty"`
}

// Company is an employer with positions ordered by seniority; "next
// position" always means next list index.
type Company struct {
	Name      string     `yaml:"name"`
	Positions []Position `yaml:"positions"`
}

// RandomEvent is a scripted one-time occurrence. Its decision re-enters the
// normal pipeline when the player accepts the prompt.
type RandomEvent struct {
	Name       string   `yaml:"name"`
	Title      string   `yaml:"title"`
	Content    string   `yaml:"content"`
	Cancelable bool     `yaml:"cancelable,omitempty"`
	Decision   Decision `yaml:"decision"`
	AcceptMsg  *Message `yaml:"accept_msg,omitempty"`
	DeclineMsg *Message `yaml:"decline_msg,omitempty"`
}

// AchievementRule unlocks a label once a trait reaches a threshold.
type AchievementRule struct {
	Trait TraitName `yaml:"trait"`
	Min   int       `yaml:"min"`
	Label string    `yaml:"label"`
}

// TraitName is a trait.Kind that reads as its name in YAML.
type TraitName trait.Kind

// UnmarshalYAML resolves the trait name.
func (t *TraitName) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	k, err := trait.ParseKind(name)
	if err != nil {
		return err
	}
	*t = TraitName(k)
	return nil
}

// MarshalYAML emits the trait name.
func (t TraitName) MarshalYAML() (any, error) { return trait.Kind(t).String(), nil }

// Kind converts back to the ledger key type.
func (t TraitName) Kind() trait.Kind { return trait.Kind(t) }

// World bundles everything the simulation consumes.
type World struct {
	Params       Params            `yaml:"params"`
	Companies    []Company         `yaml:"companies"`
	Categories   []Category        `yaml:"categories"`
	Messages     Messages          `yaml:"messages"`
	Events       []RandomEvent     `yaml:"events"`
	Achievements []AchievementRule `yaml:"achievements,omitempty"`
}

// Load reads and validates a world definition from a YAML file.
func Load(path string) (*World, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world config: %w", err)
	}
	var w World
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse world config: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world config: %w", err)
	}
	return &w, nil
}

// Validate checks structural invariants the engine relies on.
func (w *World) Validate() error {
	if len(w.Companies) == 0 {
		return fmt.Errorf("no companies defined")
	}
	seen := make(map[string]bool, len(w.Companies))
	for _, c := range w.Companies {
		if c.Name == "" {
			return fmt.Errorf("company with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate company %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Positions) == 0 {
			return fmt.Errorf("company %q has no positions", c.Name)
		}
	}
	if len(w.Categories) == 0 {
		return fmt.Errorf("no decision categories defined")
	}
	names := make(map[string]bool)
	for _, ev := range w.Events {
		if ev.Name == "" {
			return fmt.Errorf("event with empty name")
		}
		if names[ev.Name] {
			return fmt.Errorf("duplicate event %q", ev.Name)
		}
		names[ev.Name] = true
	}
	return nil
}

// FindCompany returns the company with the given name, nil if absent.
func (w *World) FindCompany(name string) *Company {
	for i := range w.Companies {
		if w.Companies[i].Name == name {
			return &w.Companies[i]
		}
	}
	return nil
}

// FindDecision looks a decision up by category and name.
func (w *World) FindDecision(category, name string) *Decision {
	for i := range w.Categories {
		if w.Categories[i].Name != category {
			continue
		}
		for j := range w.Categories[i].Decisions {
			if w.Categories[i].Decisions[j].Name == name {
				return &w.Categories[i].Decisions[j]
			}
		}
	}
	return nil
}

// FindEvent returns the scripted event with the given name, nil if absent.
func (w *World) FindEvent(name string) *RandomEvent {
	for i := range w.Events {
		if w.Events[i].Name == name {
			return &w.Events[i]
		}
	}
	return nil
}
