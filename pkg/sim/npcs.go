package sim

import (
	"math/rand/v2"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/rng"
)

// Friendly NPC pools, by where the party might run into them.

var universalNPCs = []actor.NPC{
	actor.GenericNPC("cat"),
	actor.GenericNPC("dog"),
	actor.GenericNPC("smuggler"),
	actor.GenericNPC("merchant"),
	actor.GenericNPC("catnip dealer"),
}

var travellingNPCs = append([]actor.NPC{
	actor.GenericNPC("traveller"),
	actor.GenericNPC("wanderer"),
	actor.GenericNPC("hermit"),
	actor.GenericNPC("explorer"),
}, universalNPCs...)

var villageNPCs = append([]actor.NPC{
	actor.GenericNPC("farmer"),
	actor.GenericNPC("peasant"),
	actor.GenericNPC("hunter"),
}, universalNPCs...)

var cityNPCs = append([]actor.NPC{
	actor.GenericNPC("noblecat"),
	actor.GenericNPC("policecat"),
	actor.GenericNPC("guardscat"),
}, universalNPCs...)

var woodsNPCs = append([]actor.NPC{
	actor.GenericNPC("druid"),
	actor.GenericNPC("wizard"),
	actor.GenericNPC("cultist"),
	actor.GenericNPC("elfcat"),
	actor.GenericNPC("witch"),
	actor.GenericNPC("hunter"),
	actor.GenericNPC("hermit"),
}, universalNPCs...)

var caveNPCs = []actor.NPC{
	actor.GenericNPC("dwarfcat"),
	actor.GenericNPC("hermit"),
	actor.GenericNPC("archaeologist"),
	actor.GenericNPC("explorer"),
}

var mineNPCs = []actor.NPC{
	actor.GenericNPC("miner"),
	actor.GenericNPC("dwarfcat"),
	actor.GenericNPC("worker"),
	actor.GenericNPC("union cat"),
}

var placeOfPowerNPCs = []actor.NPC{
	actor.GenericNPC("wizard"),
	actor.GenericNPC("catnipmancer"),
	actor.GenericNPC("sorcerer"),
	actor.GenericNPC("witch"),
	actor.GenericNPC("alchemist"),
	actor.GenericNPC("warlock"),
	actor.GenericNPC("archaeologist"),
	actor.GenericNPC("explorer"),
}

// WeightedNPC is one entry of an encounter's enemy draw pool.
type WeightedNPC struct {
	NPC    actor.NPC
	Weight int
}

// CombatTemplate describes one kind of combat encounter: its opening
// narration, a weighted enemy pool, optional enemies that always appear,
// and who gets caught off guard.
type CombatTemplate struct {
	Message         string
	Enemies         []WeightedNPC
	ForcedEnemies   []actor.NPC
	EnemiesAmbushed bool
	CatsAmbushed    bool
}

// BuildEnemies assembles the enemy roster for one instance of this
// encounter: the forced enemies plus weighted draws until a randomized
// total-HP budget, scaled by the party size, is met. Returned NPCs are
// independent copies; the templates are never mutated.
func (t CombatTemplate) BuildEnemies(r *rand.Rand, partySize int) []actor.NPC {
	hpTarget := partySize*3 + r.IntN(partySize*7+1)

	enemies := make([]actor.NPC, len(t.ForcedEnemies))
	copy(enemies, t.ForcedEnemies)

	totalHP := 0
	for _, e := range enemies {
		totalHP += e.HP
	}

	pool := make([]actor.NPC, len(t.Enemies))
	weights := make([]int, len(t.Enemies))
	for i, w := range t.Enemies {
		pool[i] = w.NPC
		weights[i] = w.Weight
	}

	for totalHP < hpTarget {
		enemy := rng.SelectWeighted(r, pool, weights)
		enemies = append(enemies, enemy)
		totalHP += enemy.HP
	}
	return enemies
}

// Hostile NPC stat blocks.

var bandit = actor.NPC{
	Name: "bandit", Generic: true,
	AttackAttr: 3, AttackSkill: 1,
	Presence: 1, Willpower: 2,
	Soak: 4, HP: 5,
	Weapon: "sword", WeaponDamage: 5,
	Defense: 0,
}

var banditLeader = actor.NPC{
	Name: "bandit leader", Generic: true,
	AttackAttr: 3, AttackSkill: 2,
	Presence: 3, Willpower: 3,
	Soak: 4, HP: 14,
	Weapon: "cutlass", WeaponDamage: 6,
	Defense: 1,
}

var vampire = actor.NPC{
	Name: "vampire cat", Generic: true,
	AttackAttr: 4, AttackSkill: 3,
	Presence: 6, Willpower: 4,
	Soak: 4, HP: 18,
	Weapon: "vampiric bite", WeaponDamage: 5,
	Defense: 2,
}

var ghoul = actor.NPC{
	Name: "ghoul", Generic: true,
	AttackAttr: 1, AttackSkill: 0,
	Presence: 3, Willpower: 3,
	Soak: 2, HP: 5,
	Weapon: "ghoulish swipe", WeaponDamage: 0,
	Defense: 0,
}

var spiderBoss = actor.NPC{
	Name: "giant spidercat queen", Generic: true,
	AttackAttr: 6, AttackSkill: 2,
	Presence: 3, Willpower: 3,
	Soak: 8, HP: 26,
	Weapon: "enormous fangs", WeaponDamage: 7,
	Defense: 1,
}

var giantSpider = actor.NPC{
	Name: "giant spidercat", Generic: true,
	AttackAttr: 4, AttackSkill: 2,
	Presence: 1, Willpower: 2,
	Soak: 5, HP: 14,
	Weapon: "venomous bite", WeaponDamage: 4,
	Defense: 0,
}

var spider = actor.NPC{
	Name: "spidercat", Generic: true,
	AttackAttr: 1, AttackSkill: 0,
	Presence: 1, Willpower: 2,
	Soak: 3, HP: 5,
	Weapon: "venomous bite", WeaponDamage: 2,
	Defense: 0,
}

var guardscat = actor.NPC{
	Name: "guardscat", Generic: true,
	AttackAttr: 3, AttackSkill: 1,
	Presence: 2, Willpower: 2,
	Soak: 3, HP: 7,
	Weapon: "truncheon", WeaponDamage: 5,
	Defense: 1,
}

var guardCaptain = actor.NPC{
	Name: "guard catptain", Generic: true,
	AttackAttr: 3, AttackSkill: 2,
	Presence: 3, Willpower: 2,
	Soak: 4, HP: 13,
	Weapon: "halberd", WeaponDamage: 7,
	Defense: 1,
}

var dogcat = actor.NPC{
	Name: "wild dogcat", Generic: true,
	AttackAttr: 2, AttackSkill: 0,
	Presence: 1, Willpower: 1,
	Soak: 2, HP: 5,
	Weapon: "vicious bite", WeaponDamage: 4,
	Defense: 0,
}

var orc = actor.NPC{
	Name: "orc cat warrior", Generic: true,
	AttackAttr: 4, AttackSkill: 1,
	Presence: 1, Willpower: 1,
	Soak: 4, HP: 12,
	Weapon: "axe", WeaponDamage: 8,
	Defense: 0,
}

// Encounter templates.

var banditAmbush = CombatTemplate{
	Message:      "gets ambushed by a group of bandits!",
	Enemies:      []WeightedNPC{{bandit, 5}, {banditLeader, 1}},
	CatsAmbushed: true,
}

var vampireEncounter = CombatTemplate{
	Message:         "runs into a vampire feeding on a dead villager! It's a fight!",
	Enemies:         []WeightedNPC{{ghoul, 1}},
	ForcedEnemies:   []actor.NPC{vampire},
	EnemiesAmbushed: true,
	CatsAmbushed:    true,
}

var vampireAmbush = CombatTemplate{
	Message:         "gets jumped by a vampire hoping for an easy meal!",
	Enemies:         []WeightedNPC{{ghoul, 1}},
	ForcedEnemies:   []actor.NPC{vampire},
	EnemiesAmbushed: true,
	CatsAmbushed:    true,
}

var spiderSwarm = CombatTemplate{
	Message: "gets closed in on by a swarm of spidercats!",
	Enemies: []WeightedNPC{{spider, 1}},
}

var giantSpiderFight = CombatTemplate{
	Message:       "is attacked by a giant spidercat!",
	Enemies:       []WeightedNPC{{spider, 10}, {giantSpider, 1}},
	ForcedEnemies: []actor.NPC{giantSpider},
	CatsAmbushed:  true,
}

var spiderQueenFight = CombatTemplate{
	Message:       "has angered the spidercat queen! It's a fight!",
	Enemies:       []WeightedNPC{{spider, 10}, {giantSpider, 1}},
	ForcedEnemies: []actor.NPC{spiderBoss},
}

var guardFight = CombatTemplate{
	Message: "gets in a scuffle with some guards!",
	Enemies: []WeightedNPC{{guardscat, 5}, {guardCaptain, 1}},
}

var wildDogcats = CombatTemplate{
	Message: "runs into a pack of angry wild dogcats!",
	Enemies: []WeightedNPC{{dogcat, 1}},
}

var orcsFight = CombatTemplate{
	Message: "gets attacked by a gang of orc cats!",
	Enemies: []WeightedNPC{{orc, 1}},
}
