package trait

import "testing"

func TestLedger_GetDefaultsToZero(t *testing.T) {
	l := NewLedger()
	if got := l.Get(Stress); got != 0 {
		t.Fatalf("expected unset trait to read 0, got %d", got)
	}
}

func TestLedger_IncAccumulates(t *testing.T) {
	l := NewLedger()
	l.Inc(Money, 100)
	l.Inc(Money, 50)
	if got := l.Get(Money); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
}

func TestLedger_IncClampsAtZero(t *testing.T) {
	l := NewLedger()
	l.Inc(Money, 30)
	l.Inc(Money, -100)
	if got := l.Get(Money); got != 0 {
		t.Fatalf("expected clamp at 0, got %d", got)
	}
	// Clamping discards the overshoot entirely.
	l.Inc(Money, 10)
	if got := l.Get(Money); got != 10 {
		t.Fatalf("expected 10 after refill, got %d", got)
	}
}

func TestLedger_IncNegativeFromUnset(t *testing.T) {
	l := NewLedger()
	l.Inc(Disease, -5)
	if got := l.Get(Disease); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range []Kind{Money, Stress, Disease, Madness, Skill, Talking, Sport, Social, Alcohol, BadWorker} {
		parsed, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if parsed != k {
			t.Fatalf("round trip mismatch: %v != %v", parsed, k)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	if _, err := ParseKind("charisma"); err == nil {
		t.Fatal("expected error for unknown trait name")
	}
}

func TestLedger_EachVisitsTouchedTraits(t *testing.T) {
	l := NewLedger()
	l.Inc(Skill, 3)
	l.Inc(Stress, 8)
	l.Inc(Money, 0)

	got := make(map[Kind]int)
	l.Each(func(k Kind, v int) { got[k] = v })
	if len(got) != 3 {
		t.Fatalf("expected 3 visited traits, got %d", len(got))
	}
	if got[Skill] != 3 || got[Stress] != 8 || got[Money] != 0 {
		t.Fatalf("unexpected visit values: %v", got)
	}
}

func TestLedger_Snapshot(t *testing.T) {
	l := NewLedger()
	l.Inc(Skill, 12)
	l.Inc(Money, 7)
	snap := l.Snapshot()
	if snap["skill"] != 12 || snap["money"] != 7 {
		t.Fatalf("unexpected snapshot: %v", snap)
	}
}
