package sim

import (
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/rng"
)

// ParticipatingCats selects which cats take part in a narrative event,
// with the chance of participation driven by an attribute axis (inverted
// when negative is set). Spontaneity jitters each cat's chance. If every
// cat ends up selected the result collapses to an empty list: universal
// participation has no specific subject and narrates as "the party".
func ParticipatingCats(r *rand.Rand, cats []*actor.Cat, axis actor.Stat, negative bool) []*actor.Cat {
	var participating []*actor.Cat

	for _, cat := range rng.RandomOrder(r, cats) {
		jitter := float64(cat.Spontaneity) * (r.Float64()*2 - 1)
		target := (100 + float64(cat.Attribute(axis)) + jitter) / 300
		if negative {
			target = 1.0 - target
		}
		if r.Float64() < target {
			participating = append(participating, cat)
		}
	}

	if len(participating) == len(cats) {
		return nil
	}
	return participating
}
