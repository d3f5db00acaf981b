package actor

import (
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/rng"
)

var catNames = []string{
	"Biscuit", "Clawdia", "Fig", "General Fluff", "Horatio", "Jellybean",
	"Maple", "Miso", "Mochi", "Nimbus", "Pepper", "Pickles", "Potato",
	"Professor Paws", "Rumble", "Sir Pounce", "Soot", "Tangerine",
	"Turnip", "Wasabi",
}

var catPrefixes = []string{"Lady", "Lord", "Baron", "Auntie", "Doctor"}

var catSuffixes = []string{
	"the Bold", "the Sleepy", "of the Alley", "the Third", "Von Whiskers",
}

var catPronounSets = []string{
	"he,him,his,himself,false",
	"she,her,her,herself,false",
	"they,them,their,themself,true",
}

var catDescriptors = []string{
	"curious", "dignified", "scruffy", "elegant", "round", "chaotic",
	"solemn", "windswept",
}

const (
	prefixChance = 0.075
	suffixChance = 0.15
)

func generateName(r *rand.Rand) string {
	name := catNames[r.IntN(len(catNames))]
	if r.Float64() < prefixChance {
		name = catPrefixes[r.IntN(len(catPrefixes))] + " " + name
	}
	if r.Float64() < suffixChance {
		name = name + " " + catSuffixes[r.IntN(len(catSuffixes))]
	}
	return name
}

// Generate creates a new random cat with the given id. Stats follow a
// normal distribution centered on 50, so most cats are unremarkable and
// the occasional one is exceptional.
func Generate(r *rand.Rand, id int) *Cat {
	pronouns, _ := ParsePronouns(catPronounSets[r.IntN(len(catPronounSets))])
	return &Cat{
		ID:           id,
		Name:         generateName(r),
		Pronouns:     pronouns,
		Descriptor:   catDescriptors[r.IntN(len(catDescriptors))],
		Chonk:        rng.NormalInt(r),
		Zoomies:      rng.NormalInt(r),
		Curiosity:    rng.NormalInt(r),
		Playfulness:  rng.NormalInt(r),
		Fluff:        rng.NormalInt(r),
		PurrVolume:   rng.NormalInt(r),
		Skittishness: rng.NormalInt(r),
		Outgoingness: rng.NormalInt(r),
		Dominance:    rng.NormalInt(r),
		Spontaneity:  rng.NormalInt(r),
		Friendliness: rng.NormalInt(r),
	}
}
