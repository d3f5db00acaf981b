package dice

import (
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/rng"
)

// Modifiers are effects queued for one side's next roll: flat bonus dice
// plus pool upgrades. They are consumed (reset to zero) when applied.
type Modifiers struct {
	Boost              int `json:"boost"`
	Setback            int `json:"setback"`
	Upgrades           int `json:"upgrades"`
	DifficultyUpgrades int `json:"difficulty_upgrades"`
}

// Narration reasons for randomly granted bonus dice. Each pool must hold at
// least as many entries as the maximum bonus dice of its kind (two), since
// reasons are sampled without replacement.
var randomBoostReasons = []string{
	"being a great cat",
	"being based",
	"being high on catnip",
	"being in an excellent mood",
	"cuteness",
	"being focused",
	"having recently eaten",
	"impeccable vibes",
}

var randomSetbackReasons = []string{
	"discourse",
	"horniness",
	"having rotten vibes",
	"being distracted",
}

// Apply applies the queued modifiers to the pool, resets the receiver, and
// independently grants up to two random Boost and up to two random Setback
// dice, each with probability bonusChance (the second die only if the first
// fired). Returns the narration reasons for any granted bonus dice.
func (m *Modifiers) Apply(pool *Pool, bonusChance float64, r *rand.Rand) (boostReasons, setbackReasons []string) {
	pool.Upgrade(m.Upgrades).UpgradeDifficulty(m.DifficultyUpgrades)
	pool.Boost += m.Boost
	pool.Setback += m.Setback
	*m = Modifiers{}

	boost := 0
	if r.Float64() < bonusChance {
		boost = 1
		if r.Float64() < bonusChance {
			boost = 2
		}
	}
	pool.Boost += boost
	if boost > 0 {
		boostReasons = rng.Sample(r, randomBoostReasons, boost)
	}

	setback := 0
	if r.Float64() < bonusChance {
		setback = 1
		if r.Float64() < bonusChance {
			setback = 2
		}
	}
	pool.Setback += setback
	if setback > 0 {
		setbackReasons = rng.Sample(r, randomSetbackReasons, setback)
	}
	return boostReasons, setbackReasons
}
