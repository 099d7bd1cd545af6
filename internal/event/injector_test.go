package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entropy"
)

func testEvents() []config.RandomEvent {
	return []config.RandomEvent{
		{Name: "a", Title: "A", Decision: config.Decision{Name: "a"}},
		{Name: "b", Title: "B", Decision: config.Decision{Name: "b"}},
	}
}

func always(*config.Decision) bool { return true }

func TestRoll_ZeroChanceNeverFires(t *testing.T) {
	in := NewInjector(testEvents(), 0, entropy.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Nil(t, in.Roll(always))
	}
}

func TestRoll_EachEventFiresAtMostOnce(t *testing.T) {
	in := NewInjector(testEvents(), 1, entropy.NewSource(1))

	seen := map[string]int{}
	for i := 0; i < 10; i++ {
		if ev := in.Roll(always); ev != nil {
			seen[ev.Name]++
		}
	}
	assert.Equal(t, 1, seen["a"])
	assert.Equal(t, 1, seen["b"])
	assert.True(t, in.Used("a"))
	assert.True(t, in.Used("b"))
}

func TestRoll_SkipsIneligibleDecisions(t *testing.T) {
	in := NewInjector(testEvents(), 1, entropy.NewSource(1))

	onlyB := func(d *config.Decision) bool { return d.Name == "b" }
	ev := in.Roll(onlyB)
	require.NotNil(t, ev)
	assert.Equal(t, "b", ev.Name)

	// "a" stays unused and can fire later once it becomes eligible.
	assert.False(t, in.Used("a"))
	ev = in.Roll(always)
	require.NotNil(t, ev)
	assert.Equal(t, "a", ev.Name)
}

func TestRoll_EmptyPool(t *testing.T) {
	in := NewInjector(nil, 1, entropy.NewSource(1))
	assert.Nil(t, in.Roll(always))
}
