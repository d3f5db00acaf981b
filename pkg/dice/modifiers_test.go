package dice

import (
	"math/rand/v2"
	"testing"
)

func TestModifiersApply(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))

	t.Run("queued dice land on the pool and the queue resets", func(t *testing.T) {
		m := Modifiers{Boost: 2, Setback: 1, Upgrades: 1, DifficultyUpgrades: 1}
		p := &Pool{Ability: 2, Difficulty: 1}
		m.Apply(p, 0, r)

		want := Pool{Ability: 1, Proficiency: 1, Challenge: 1, Boost: 2, Setback: 1}
		if *p != want {
			t.Errorf("pool after apply = %+v, want %+v", *p, want)
		}
		if m != (Modifiers{}) {
			t.Errorf("modifiers not reset: %+v", m)
		}
	})

	t.Run("zero bonus chance grants nothing", func(t *testing.T) {
		var m Modifiers
		p := &Pool{}
		boosts, setbacks := m.Apply(p, 0, r)
		if len(boosts) != 0 || len(setbacks) != 0 {
			t.Errorf("got reasons %v / %v with zero chance", boosts, setbacks)
		}
		if p.Boost != 0 || p.Setback != 0 {
			t.Errorf("got bonus dice %+v with zero chance", *p)
		}
	})

	t.Run("certain bonus chance grants two of each", func(t *testing.T) {
		var m Modifiers
		p := &Pool{}
		boosts, setbacks := m.Apply(p, 1, r)
		if p.Boost != 2 || p.Setback != 2 {
			t.Errorf("got %d boost / %d setback, want 2 / 2", p.Boost, p.Setback)
		}
		if len(boosts) != 2 || len(setbacks) != 2 {
			t.Errorf("got %d boost reasons / %d setback reasons, want 2 / 2",
				len(boosts), len(setbacks))
		}
		if boosts[0] == boosts[1] {
			t.Error("boost reasons should be sampled without replacement")
		}
	})
}
