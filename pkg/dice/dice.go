// Package dice implements the narrative dice-pool system used by the
// adventure simulation: typed pools, symbolic results, upgrades and
// queued roll modifiers.
package dice

import (
	"cmp"
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/text"
)

// Result is the outcome of rolling a pool. Successes and Advantages may be
// negative, encoding net failures and threats. Triumphs and Despairs are
// always non-negative.
type Result struct {
	Successes  int `json:"successes"`
	Advantages int `json:"advantages"`
	Triumphs   int `json:"triumphs"`
	Despairs   int `json:"despairs"`
}

// IsSuccess reports whether the result is a net success.
func (r Result) IsSuccess() bool {
	return (r.Successes+r.Triumphs)-r.Despairs > 0
}

// Compare orders results by (successes+triumphs-despairs, advantages).
// Returns -1 if r < other, 0 if equal, 1 if r > other.
func (r Result) Compare(other Result) int {
	if c := cmp.Compare(
		r.Successes+r.Triumphs-r.Despairs,
		other.Successes+other.Triumphs-other.Despairs,
	); c != 0 {
		return c
	}
	return cmp.Compare(r.Advantages, other.Advantages)
}

// String renders the result as prose: "two Successes and one Advantage".
func (r Result) String() string {
	var parts []string
	if r.Successes > 0 {
		parts = append(parts, text.NumberWord(r.Successes)+" "+text.Plural("Success", r.Successes))
	} else if r.Successes < 0 {
		parts = append(parts, text.NumberWord(-r.Successes)+" "+text.Plural("Failure", -r.Successes))
	}
	if r.Advantages > 0 {
		parts = append(parts, text.NumberWord(r.Advantages)+" "+text.Plural("Advantage", r.Advantages))
	} else if r.Advantages < 0 {
		parts = append(parts, text.NumberWord(-r.Advantages)+" "+text.Plural("Threat", -r.Advantages))
	}
	if r.Triumphs > 0 {
		parts = append(parts, text.NumberWord(r.Triumphs)+" "+text.Plural("Triumph", r.Triumphs))
	}
	if r.Despairs > 0 {
		parts = append(parts, text.NumberWord(r.Despairs)+" "+text.Plural("Despair", r.Despairs))
	}
	if len(parts) == 0 {
		return "a wash"
	}
	return text.JoinAnd(parts)
}

// Pool is a pool of dice to roll for one check. Counts are never negative.
type Pool struct {
	Ability     int `json:"ability"`
	Proficiency int `json:"proficiency"`
	Difficulty  int `json:"difficulty"`
	Challenge   int `json:"challenge"`
	Boost       int `json:"boost"`
	Setback     int `json:"setback"`
}

// ForSkill returns the pool for a skill and attribute pair, opposed by a
// difficulty and challenge pair: the lower of (attr, skill) becomes
// Proficiency dice and the remainder Ability dice, and symmetrically for
// the opposition.
func ForSkill(attrValue, skillValue, difficulty, challenge, boost, setback int) *Pool {
	proficiency := min(skillValue, attrValue)
	challengeDice := min(difficulty, challenge)
	return &Pool{
		Ability:     max(skillValue, attrValue) - proficiency,
		Proficiency: proficiency,
		Difficulty:  max(difficulty, challenge) - challengeDice,
		Challenge:   challengeDice,
		Boost:       boost,
		Setback:     setback,
	}
}

// Upgrade upgrades (times > 0) or downgrades (times < 0) the positive side
// of the pool. Upgrading with no Ability dice left adds a fresh Ability die
// rather than failing; downgrading with no Proficiency dice left is a no-op
// and never removes dice.
func (p *Pool) Upgrade(times int) *Pool {
	for ; times > 0; times-- {
		if p.Ability > 0 {
			p.Ability--
			p.Proficiency++
		} else {
			p.Ability++
		}
	}
	for ; times < 0; times++ {
		if p.Proficiency == 0 {
			break
		}
		p.Proficiency--
		p.Ability++
	}
	return p
}

// UpgradeDifficulty is Upgrade over the opposition side of the pool.
func (p *Pool) UpgradeDifficulty(times int) *Pool {
	for ; times > 0; times-- {
		if p.Difficulty > 0 {
			p.Difficulty--
			p.Challenge++
		} else {
			p.Difficulty++
		}
	}
	for ; times < 0; times++ {
		if p.Challenge == 0 {
			break
		}
		p.Challenge--
		p.Difficulty++
	}
	return p
}

// Roll rolls every die in the pool and sums the symbols into one Result.
func (p *Pool) Roll(r *rand.Rand) Result {
	var result Result
	rollType := func(table []Face, count int) {
		for i := 0; i < count; i++ {
			f := table[r.IntN(len(table))]
			result.Successes += f.Successes
			result.Advantages += f.Advantages
			result.Triumphs += f.Triumphs
			result.Despairs += f.Despairs
		}
	}
	rollType(abilityTable, p.Ability)
	rollType(proficiencyTable, p.Proficiency)
	rollType(difficultyTable, p.Difficulty)
	rollType(challengeTable, p.Challenge)
	rollType(boostTable, p.Boost)
	rollType(setbackTable, p.Setback)
	return result
}

// String renders the pool as prose: "one Ability die and two Difficulty dice".
func (p *Pool) String() string {
	var parts []string
	describe := func(count int, name string) {
		if count > 0 {
			parts = append(parts, text.NumberWord(count)+" "+name+" "+text.Plural("die", count))
		}
	}
	describe(p.Ability, "Ability")
	describe(p.Proficiency, "Proficiency")
	describe(p.Difficulty, "Difficulty")
	describe(p.Challenge, "Challenge")
	describe(p.Boost, "Boost")
	describe(p.Setback, "Setback")
	if len(parts) == 0 {
		return "no dice"
	}
	return text.JoinAnd(parts)
}
