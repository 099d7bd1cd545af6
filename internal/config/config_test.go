package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/talgya/lifesim/internal/trait"
)

func TestDefaultWorld_IsValid(t *testing.T) {
	require.NoError(t, DefaultWorld().Validate())
}

func TestLoad_RoundTrip(t *testing.T) {
	raw, err := yaml.Marshal(DefaultWorld())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0644))

	w, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultParams().StartMoney, w.Params.StartMoney)
	assert.Len(t, w.Companies, len(DefaultWorld().Companies))
	require.NotNil(t, w.FindCompany("Pixel Forge"))
	assert.Equal(t, "Junior Developer", w.FindCompany("Pixel Forge").Positions[0].Name)
	require.NotNil(t, w.FindDecision("Career", "Go to work"))
	assert.Equal(t, DecisionWork, w.FindDecision("Career", "Go to work").ID)
}

func TestTraits_UnmarshalMapping(t *testing.T) {
	var d Decision
	err := yaml.Unmarshal([]byte(`
name: Night course
days: 7
min:
  skill: 10
changes:
  skill: 5
  money: -100
`), &d)
	require.NoError(t, err)

	v, ok := d.Min.Get(trait.Skill)
	require.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = d.Changes.Get(trait.Money)
	require.True(t, ok)
	assert.Equal(t, -100, v)
	assert.Equal(t, -100, d.MoneyDelta())
}

func TestTraits_UnknownNameFails(t *testing.T) {
	var d Decision
	err := yaml.Unmarshal([]byte("name: x\ndays: 1\nmin:\n  charisma: 3\n"), &d)
	assert.Error(t, err)
}

func TestDecisionID_UnknownFails(t *testing.T) {
	var d Decision
	err := yaml.Unmarshal([]byte("name: x\nid: retire\ndays: 1\n"), &d)
	assert.Error(t, err)
}

func TestValidate_DuplicateCompany(t *testing.T) {
	w := DefaultWorld()
	w.Companies = append(w.Companies, w.Companies[0])
	assert.Error(t, w.Validate())
}

func TestValidate_CompanyWithoutPositions(t *testing.T) {
	w := DefaultWorld()
	w.Companies[0].Positions = nil
	assert.Error(t, w.Validate())
}

func TestMessage_Format(t *testing.T) {
	m := Message{Title: "Offer", Content: "'%s' offers %s (%+d)"}
	got := m.Format("Acme", "Clerk", -25)
	assert.Equal(t, "Offer", got.Title)
	assert.Equal(t, "'Acme' offers Clerk (-25)", got.Content)

	got = m.Format("Acme", "Clerk", 40)
	assert.Equal(t, "'Acme' offers Clerk (+40)", got.Content)
}
