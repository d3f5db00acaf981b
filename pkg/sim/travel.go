package sim

import (
	"fmt"
	"strings"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
	"github.com/whiskerworks/adventure-engine/pkg/text"
)

var travelVerbs = []string{
	"reaches",
	"finds",
	"arrives at",
	"comes to",
	"stumbles upon",
	"approaches",
	"is travelling through",
	"passes through",
	"discovers",
	"journeys through",
	"visits",
	"stops at",
}

var gettingLostVerbs = []string{
	"gets lost",
	"wanders off",
	"loses the way",
	"stumbles aimlessly",
}

var findsVerbs = []string{
	"finds",
	"stumbles upon",
	"discovers",
	"notices",
	"comes across",
	"spots",
}

var genericInteractions = []string{
	"meets",
	"chats with",
	"exchanges rumours with",
	"barters with",
	"passes",
	"notices",
	"gets in a minor argument with",
	"gets directions from",
}

var genericLocations = []Location{
	// En route
	{Article: "a", Name: "barren desert", ShortName: "desert", Type: EnRoute},
	{Article: "a", Name: "stormy coast", ShortName: "coast", Type: EnRoute},
	{Article: "a", Name: "picturesque mountain pass", ShortName: "mountain pass", Type: EnRoute},
	{Article: "a", Name: "forest path", ShortName: "forest path", Type: EnRoute},
	// Cities
	{Article: "a", Name: "merchant district", ShortName: "merchant district", Type: City},
	{Article: "a", Name: "prosperous city", ShortName: "city", Type: City},
	{Article: "a", Name: "sprawling city", ShortName: "city", Type: City},
	{Article: "an", Name: "ancient city", ShortName: "city", Type: City},
	{Article: "a", Name: "majestic castle", ShortName: "castle", Type: City},
	{Article: "a", Name: "peaceful town", ShortName: "town", Type: City},
	// Villages
	{Article: "a", Name: "seaside village", ShortName: "village", Type: Village},
	{Article: "a", Name: "suspicious village", ShortName: "village", Type: Village},
	{Article: "a", Name: "peaceful village", ShortName: "village", Type: Village},
	{Article: "a", Name: "quiet village", ShortName: "village", Type: Village},
	{Article: "a", Name: "small settlement", ShortName: "settlement", Type: Village},
	// Woods
	{Article: "a", Name: "dense forest", ShortName: "forest", Type: Woods},
	{Name: "mysterious woods", ShortName: "woods", Type: Woods},
	// Caves
	{Article: "a", Name: "dark cave", ShortName: "cave", Type: Cave},
	{Article: "an", Name: "ominous cave", ShortName: "cave", Type: Cave},
	{Article: "a", Name: "sprawling cavern", ShortName: "cavern", Type: Cave},
	// Mines
	{Article: "a", Name: "dwarven mine", ShortName: "mine", Type: Mine},
	{Article: "an", Name: "abandoned mineshaft", ShortName: "mineshaft", Type: Mine},
	// Places of power
	{Article: "a", Name: "mysterious ruin", ShortName: "ruin", Type: PlaceOfPower},
	{Article: "an", Name: "ancient shrine", ShortName: "shrine", Type: PlaceOfPower},
}

// locationEventFunc generates one event at the party's current location.
type locationEventFunc func(state *GameState, loc Location, env *Env) outcome.Outcome

// locationEvents maps each location type to its event pool. Entries may
// repeat to weight the draw.
var locationEvents = map[LocationType][]locationEventFunc{
	EnRoute: {
		meetGenericNPC(travellingNPCs),
		combatEncounter([]CombatTemplate{banditAmbush, wildDogcats, banditAmbush, wildDogcats, orcsFight}),
	},
	City: {
		meetGenericNPC(cityNPCs),
		meetGenericNPC(cityNPCs),
		meetGenericNPC(cityNPCs),
		combatEncounter([]CombatTemplate{banditAmbush, guardFight}),
	},
	Village: {
		meetGenericNPC(villageNPCs),
		meetGenericNPC(villageNPCs),
		meetGenericNPC(villageNPCs),
		combatEncounter([]CombatTemplate{vampireEncounter, banditAmbush, banditAmbush}),
	},
	Woods: {
		meetGenericNPC(woodsNPCs),
		getLost,
		combatEncounter([]CombatTemplate{vampireAmbush, wildDogcats, wildDogcats, orcsFight}),
		findThing([]string{
			"a grouping of trees with deep rut marks",
			"the husk of an ancient tree, struck down by lightning",
			"a dense thicket, blocking all natural light",
			"a small, peaceful clearing",
			"a resting bear, watching the party from a distance",
		}),
	},
	Cave: {
		meetGenericNPC(caveNPCs),
		getLost,
		findThing([]string{
			"a pile of spider egg shells",
			"a collapsed tunnel",
			"the skeleton of an unfamiliar beast",
			"a faded map scratched into the cave wall",
			"a broken lantern buried in rocks",
			"an immense cavern, stretching out further than light can reach",
			"a fathomless underground chasm",
			"ancient charcoal paintings of scenes from before history",
			"a small pool with stalactites dripping overhead",
		}),
		combatEncounter([]CombatTemplate{
			spiderSwarm, spiderSwarm, spiderSwarm,
			giantSpiderFight, giantSpiderFight,
			spiderQueenFight,
		}),
	},
	Mine: {
		meetGenericNPC(mineNPCs),
		getLost,
		findThing([]string{
			"a shining diamond",
			"the skeleton of a long-dead miner, buried by rockfall",
			"a gold vein",
			"a half-collapsed old mineshaft",
			"an unexploded stick of dynamite, missing its fuse",
			"a broken pickaxe, its surface marred by deep claw marks",
			"a skull, half-embedded in the wall of the mineshaft",
		}),
	},
	PlaceOfPower: {
		meetGenericNPC(placeOfPowerNPCs),
		findThing([]string{
			"some ancient carvings",
			"a mysterious orb, humming with power",
			"a patch of rare herbs",
			"a spellbook, burnt beyond use",
			"a burnt gash on a wall, whispering with the echoes of a magical duel from centuries ago",
			"a circle on the ground where no sound can be heard",
			"two tree trunks that join into a single crown",
			"a water fountain flowing in reverse",
			"an obsidian obelisk, silently beckoning",
		}),
	},
}

// participants picks the cats involved in a flavor event. If the whole
// party would participate, the narration falls back to "The party" by
// selecting nobody in particular.
func participants(env *Env, axis actor.Stat) []*actor.Cat {
	selected := ParticipatingCats(env.Rand, env.Cats, axis, false)
	if len(selected) == len(env.Cats) {
		return nil
	}
	return selected
}

// pluralizeForGroup adjusts a singular-subject phrase when more than one
// cat is named.
func pluralizeForGroup(phrase string, cats []*actor.Cat) string {
	if len(cats) > 1 {
		return text.PluralVerb(phrase)
	}
	return phrase
}

// partyImage combines the participants' portrait refs.
func partyImage(cats []*actor.Cat) string {
	refs := make([]string, len(cats))
	for i, cat := range cats {
		refs[i] = cat.Image()
	}
	return strings.Join(refs, "+")
}

// meetGenericNPC returns an event where the party chats with a random
// unnamed friendly NPC.
func meetGenericNPC(pool []actor.NPC) locationEventFunc {
	return func(state *GameState, loc Location, env *Env) outcome.Outcome {
		cats := participants(env, actor.StatOutgoingness)
		npc := pool[env.Rand.IntN(len(pool))]
		interaction := pluralizeForGroup(
			genericInteractions[env.Rand.IntN(len(genericInteractions))], cats)
		return outcome.Outcome{
			Text: fmt.Sprintf("🗣️ %s %s %s at the %s. 🗣️",
				actor.DescribeCats(cats), interaction, npc.String(), loc.ShortName),
			Image: partyImage(cats),
		}
	}
}

// getLost is an event where the party loses its way.
func getLost(state *GameState, loc Location, env *Env) outcome.Outcome {
	cats := participants(env, actor.StatSpontaneity)
	description := pluralizeForGroup(
		gettingLostVerbs[env.Rand.IntN(len(gettingLostVerbs))], cats)
	return outcome.Outcome{
		Text: fmt.Sprintf("🧭 %s %s in the %s. 🧭",
			actor.DescribeCats(cats), description, loc.ShortName),
		Image: partyImage(cats),
	}
}

// findThing returns an event where the party spots one of the given
// curiosities.
func findThing(things []string) locationEventFunc {
	return func(state *GameState, loc Location, env *Env) outcome.Outcome {
		cats := participants(env, actor.StatPlayfulness)
		thing := things[env.Rand.IntN(len(things))]
		interaction := pluralizeForGroup(findsVerbs[env.Rand.IntN(len(findsVerbs))], cats)
		return outcome.Outcome{
			Text:  fmt.Sprintf("🔍 %s %s %s. 🔍", actor.DescribeCats(cats), interaction, thing),
			Image: partyImage(cats),
		}
	}
}

// combatEncounter returns an event that kicks off a fight from one of the
// given templates, replacing the start-of-combat narration with the
// template's own.
func combatEncounter(templates []CombatTemplate) locationEventFunc {
	return func(state *GameState, loc Location, env *Env) outcome.Outcome {
		cats := participants(env, actor.StatPlayfulness)
		template := templates[env.Rand.IntN(len(templates))]
		message := pluralizeForGroup(template.Message, cats)

		started := StartCombat(state, env,
			state.CurrentEvent,
			template.BuildEnemies(env.Rand, len(env.Cats)),
			template.CatsAmbushed, template.EnemiesAmbushed)
		return started.
			WithText(fmt.Sprintf("🤼 %s %s 🤼", actor.DescribeCats(cats), message)).
			WithImage(partyImage(cats))
	}
}

// Travel is the party's default activity: drifting between locations and
// hitting whatever each one holds.
type Travel struct {
	CurrentLocation *Location `json:"current_location,omitempty"`
	Destination     *Location `json:"destination,omitempty"`
}

// EventType implements Event.
func (t *Travel) EventType() string { return "Travel" }

// StartTravel makes travel the current event, headed for the current
// quest's destination if there is one.
func StartTravel(state *GameState, env *Env) outcome.Outcome {
	env.Log.Info("party starts travelling")
	travel := &Travel{}
	if quest := state.CurrentQuest(); quest != nil {
		dest := quest.Destination
		travel.Destination = &dest
	}
	state.CurrentEvent = travel

	if travel.Destination != nil {
		return outcome.Outcome{
			Text: fmt.Sprintf("🗺️ The party sets off towards %s. 🗺️", travel.Destination),
		}
	}
	return outcome.Outcome{Text: "🗺️ The party sets off. 🗺️"}
}

// GenerateUpdate either triggers an event at the current location or moves
// the party somewhere new.
func (t *Travel) GenerateUpdate(state *GameState, env *Env) outcome.Outcome {
	env.Log.Info("party is traveling")
	if t.CurrentLocation != nil && env.Rand.Float64() < env.Config.Happening {
		env.Log.Info("triggering location event")
		return t.generateLocationEvent(state, env)
	}

	env.Log.Info("travelling")
	reaches := travelVerbs[env.Rand.IntN(len(travelVerbs))]

	var candidates []Location
	for _, loc := range genericLocations {
		if t.CurrentLocation == nil || loc.Name != t.CurrentLocation.Name {
			candidates = append(candidates, loc)
		}
	}
	next := candidates[env.Rand.IntN(len(candidates))]
	t.CurrentLocation = &next

	return outcome.Outcome{
		Text: fmt.Sprintf("🏞 The party %s %s. 🏞", reaches, next),
	}
}

// generateLocationEvent picks a random event for the current location.
// Quest encounters would preempt the draw here once quest content exists;
// for now a pending quest only gets logged.
func (t *Travel) generateLocationEvent(state *GameState, env *Env) outcome.Outcome {
	if quest := state.CurrentQuest(); quest != nil && quest.EncountersLeft > 0 {
		if env.Rand.Float64() < env.Config.QuestEncounter {
			env.Log.Info("quest encounter rolled, none available yet",
				"encounters_left", quest.EncountersLeft)
		}
	}
	events := locationEvents[t.CurrentLocation.Type]
	makeEvent := events[env.Rand.IntN(len(events))]
	return makeEvent(state, *t.CurrentLocation, env)
}
