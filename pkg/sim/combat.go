package sim

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/dice"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
	"github.com/whiskerworks/adventure-engine/pkg/rng"
	"github.com/whiskerworks/adventure-engine/pkg/text"
)

const (
	catSymbol   = "😼"
	enemySymbol = "👺"
)

// The attack skills a cat may improvise with, and the attribute each one
// keys off.
var catAttackSkills = []struct {
	Skill string
	Attr  actor.Stat
}{
	{"Archery", actor.StatZoomies},
	{"Artillery", actor.StatZoomies},
	{"Bap", actor.StatChonk},
	{"Claws", actor.StatChonk},
	{"Cuteness", actor.StatPurrVolume},
	{"Hissing", actor.StatPurrVolume},
	{"Loud Meowing", actor.StatPurrVolume},
	{"Pouncing", actor.StatZoomies},
	{"Ranged (Heavy)", actor.StatZoomies},
	{"Ranged (Light)", actor.StatZoomies},
	{"Slap", actor.StatChonk},
	{"Swording", actor.StatChonk},
}

// Combat is a fight between the party and an enemy roster. When it ends,
// control hands back to NextEvent. Cat hit points live only here for the
// duration of the fight; they are combat state, not cat state.
type Combat struct {
	NextEvent           Event
	Enemies             []actor.NPC
	CatsAmbushed        bool
	EnemiesAmbushed     bool
	InitiativeRemaining []bool // true = a cat acts in this slot
	CatsActed           map[int]bool
	EnemiesActed        map[int]bool
	CatHPs              map[int]int
	CatModifiers        dice.Modifiers
	EnemyModifiers      dice.Modifiers
}

// EventType implements Event.
func (c *Combat) EventType() string { return "Combat" }

func init() {
	RegisterEvent("Combat", func() Event { return &Combat{} })
	RegisterEvent("Travel", func() Event { return &Travel{} })
}

// combatJSON is Combat's wire form; NextEvent needs the tagged codec.
type combatJSON struct {
	NextEvent           json.RawMessage `json:"next_event"`
	Enemies             []actor.NPC     `json:"enemies"`
	CatsAmbushed        bool            `json:"cats_ambushed"`
	EnemiesAmbushed     bool            `json:"enemies_ambushed"`
	InitiativeRemaining []bool          `json:"initiative_remaining,omitempty"`
	CatsActed           map[int]bool    `json:"cats_who_have_already_acted,omitempty"`
	EnemiesActed        map[int]bool    `json:"enemies_who_have_already_acted,omitempty"`
	CatHPs              map[int]int     `json:"cat_hps,omitempty"`
	CatModifiers        dice.Modifiers  `json:"cat_roll_modifiers"`
	EnemyModifiers      dice.Modifiers  `json:"enemy_roll_modifiers"`
}

func (c *Combat) MarshalJSON() ([]byte, error) {
	next, err := EncodeEvent(c.NextEvent)
	if err != nil {
		return nil, err
	}
	return json.Marshal(combatJSON{
		NextEvent:           next,
		Enemies:             c.Enemies,
		CatsAmbushed:        c.CatsAmbushed,
		EnemiesAmbushed:     c.EnemiesAmbushed,
		InitiativeRemaining: c.InitiativeRemaining,
		CatsActed:           c.CatsActed,
		EnemiesActed:        c.EnemiesActed,
		CatHPs:              c.CatHPs,
		CatModifiers:        c.CatModifiers,
		EnemyModifiers:      c.EnemyModifiers,
	})
}

func (c *Combat) UnmarshalJSON(data []byte) error {
	var wire combatJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	next, err := DecodeEvent(wire.NextEvent)
	if err != nil {
		return err
	}
	// Empty acted sets are omitted from the wire form; the turn
	// procedures write into them, so never leave them nil.
	if wire.CatsActed == nil {
		wire.CatsActed = map[int]bool{}
	}
	if wire.EnemiesActed == nil {
		wire.EnemiesActed = map[int]bool{}
	}
	*c = Combat{
		NextEvent:           next,
		Enemies:             wire.Enemies,
		CatsAmbushed:        wire.CatsAmbushed,
		EnemiesAmbushed:     wire.EnemiesAmbushed,
		InitiativeRemaining: wire.InitiativeRemaining,
		CatsActed:           wire.CatsActed,
		EnemiesActed:        wire.EnemiesActed,
		CatHPs:              wire.CatHPs,
		CatModifiers:        wire.CatModifiers,
		EnemyModifiers:      wire.EnemyModifiers,
	}
	return nil
}

// StartCombat clones the enemy roster, installs a Combat as the current
// event and returns the opening outcome. nextEvent resumes when the fight
// ends.
func StartCombat(state *GameState, env *Env, nextEvent Event, enemies []actor.NPC, catsAmbushed, enemiesAmbushed bool) outcome.Outcome {
	env.Log.Info("party starts combat", "enemies", len(enemies))
	roster := make([]actor.NPC, len(enemies))
	copy(roster, enemies)

	c := &Combat{
		NextEvent:       nextEvent,
		Enemies:         roster,
		CatsAmbushed:    catsAmbushed,
		EnemiesAmbushed: enemiesAmbushed,
		CatsActed:       map[int]bool{},
		EnemiesActed:    map[int]bool{},
		CatHPs:          map[int]int{},
	}
	state.CurrentEvent = c
	return outcome.Outcome{
		Text:  fmt.Sprintf("🤼 The party gets in a fight with %s! 🤼", actor.DescribeNPCs(roster)),
		Panel: c.statusPanel(env.Cats),
	}
}

// GenerateUpdate advances the fight by one step: terminal checks first,
// then initiative if the queue is empty, otherwise the next turn.
func (c *Combat) GenerateUpdate(state *GameState, env *Env) outcome.Outcome {
	catsStanding := c.catsStanding(env.Cats)
	enemiesStanding := c.enemiesStanding()

	if len(catsStanding) == 0 {
		state.CurrentEvent = c.NextEvent
		return outcome.Outcome{
			Text: "There are no cats left standing.",
			Panel: &outcome.Panel{
				Title:       "⚰️ Defeat! ⚰️",
				Description: "The party escapes in shame!",
				Color:       outcome.ColorDefeat,
			},
		}
	}

	if len(enemiesStanding) == 0 {
		state.CurrentEvent = c.NextEvent
		return outcome.Outcome{
			Text: "There are no enemies left standing.",
			Panel: &outcome.Panel{
				Title:       "🏆 Victory! 🏆",
				Description: "The party continues onward!",
				Color:       outcome.ColorVictory,
			},
		}
	}

	if len(c.InitiativeRemaining) == 0 {
		return c.rollInitiative(catsStanding, enemiesStanding, env)
	}

	currentIsCat := c.InitiativeRemaining[0]
	c.InitiativeRemaining = c.InitiativeRemaining[1:]

	if currentIsCat {
		return c.doCatTurn(catsStanding, enemiesStanding, env)
	}
	return c.doEnemyTurn(catsStanding, enemiesStanding, env)
}

// catsStanding returns the cats still on their feet, lazily seeding each
// cat's hit points from its wound threshold on first reference.
func (c *Combat) catsStanding(cats []*actor.Cat) []*actor.Cat {
	if c.CatHPs == nil {
		c.CatHPs = map[int]int{}
	}
	var standing []*actor.Cat
	for _, cat := range cats {
		hp, ok := c.CatHPs[cat.ID]
		if !ok {
			hp = cat.WoundThreshold()
			c.CatHPs[cat.ID] = hp
		}
		if hp > 0 {
			standing = append(standing, cat)
		}
	}
	return standing
}

// standingEnemy is an enemy still in the fight, with its roster index.
type standingEnemy struct {
	Index int
	NPC   *actor.NPC
}

func (c *Combat) enemiesStanding() []standingEnemy {
	var standing []standingEnemy
	for i := range c.Enemies {
		if c.Enemies[i].HP > 0 {
			standing = append(standing, standingEnemy{Index: i, NPC: &c.Enemies[i]})
		}
	}
	return standing
}

// rollInitiative rolls for everyone standing and rebuilds the turn order.
// The sort is stable and descending, so ties keep the roll order: cats
// first, then enemies.
func (c *Combat) rollInitiative(catsStanding []*actor.Cat, enemiesStanding []standingEnemy, env *Env) outcome.Outcome {
	panel := &outcome.Panel{
		Title: "🎲 Roll initiative! 🎲",
		Color: outcome.ColorDefault,
	}

	type initiativeRoll struct {
		isCat  bool
		result dice.Result
	}
	var rolls []initiativeRoll
	var catLines, enemyLines []string

	catSkill := "Cool"
	catAttr := actor.StatPurrVolume
	if c.CatsAmbushed {
		catSkill = "Vigilance"
		catAttr = actor.StatFluff
	}
	for _, cat := range catsStanding {
		pool := dice.ForSkill(actor.GenesysAttr(cat.Attribute(catAttr)), cat.SkillValue(catSkill), 0, 0, 0, 0)
		result := pool.Roll(env.Rand)
		rolls = append(rolls, initiativeRoll{isCat: true, result: result})
		catLines = append(catLines, fmt.Sprintf(
			"🎲 %s rolls %s for %s and gets **%s**!", cat, pool, catSkill, result))
	}
	panel.AddField("😼 Party rolls 😼", orNone(catLines), false)

	enemySkill := "Cool"
	if c.EnemiesAmbushed {
		enemySkill = "Vigilance"
	}
	for _, e := range enemiesStanding {
		attr := e.NPC.Presence
		if c.EnemiesAmbushed {
			attr = e.NPC.Willpower
		}
		pool := dice.ForSkill(attr, e.NPC.SkillValue(enemySkill), 0, 0, 0, 0)
		result := pool.Roll(env.Rand)
		rolls = append(rolls, initiativeRoll{isCat: false, result: result})
		enemyLines = append(enemyLines, fmt.Sprintf(
			"🎲 **%s** rolls %s for %s and gets **%s**!", e.NPC.CapName(), pool, enemySkill, result))
	}
	panel.AddField("👺 Enemy rolls 👺", orNone(enemyLines), false)

	slices.SortStableFunc(rolls, func(a, b initiativeRoll) int {
		return b.result.Compare(a.result)
	})

	order := make([]bool, len(rolls))
	symbols := make([]string, len(rolls))
	for i, roll := range rolls {
		order[i] = roll.isCat
		symbols[i] = sideSymbol(roll.isCat)
	}
	panel.AddField("🔢 Initiative order for the upcoming round 🔢", strings.Join(symbols, " "), false)

	c.InitiativeRemaining = order
	c.CatsActed = map[int]bool{}
	c.EnemiesActed = map[int]bool{}
	return outcome.Outcome{
		Text:  "⚔️ Next round of combat starts! ⚔️",
		Panel: panel,
	}
}

// doCatTurn has the next cat who hasn't acted attack a random enemy.
func (c *Combat) doCatTurn(catsStanding []*actor.Cat, enemiesStanding []standingEnemy, env *Env) outcome.Outcome {
	var cat *actor.Cat
	for _, candidate := range rng.RandomOrder(env.Rand, catsStanding) {
		if !c.CatsActed[candidate.ID] {
			env.Log.Info("got combat participant", "cat", candidate.Name)
			c.CatsActed[candidate.ID] = true
			cat = candidate
			break
		}
	}
	if cat == nil {
		// Shouldn't happen while the initiative queue holds a cat slot,
		// but the standing set can shift between rounds.
		env.Log.Info("all cats have already acted")
		return outcome.Outcome{Text: "😼 All the remaining cats have already acted! 👺"}
	}

	attack := catAttackSkills[env.Rand.IntN(len(catAttackSkills))]
	target := enemiesStanding[env.Rand.IntN(len(enemiesStanding))].NPC

	pool := dice.ForSkill(
		actor.GenesysAttr(cat.Attribute(attack.Attr)), cat.SkillValue(attack.Skill),
		2, 0, 0, target.Defense)
	boostReasons, setbackReasons := c.CatModifiers.Apply(pool, env.Config.BonusDie, env.Rand)

	result := pool.Roll(env.Rand)

	messages := []string{
		fmt.Sprintf("🗡️ %s attempts to attack %s using %s %s skill. 🗡️",
			cat, target, cat.Pronouns.His, attack.Skill),
	}
	for _, reason := range boostReasons {
		messages = append(messages, fmt.Sprintf("%s gets a Boost die for %s.", cat, reason))
	}
	for _, reason := range setbackReasons {
		messages = append(messages, fmt.Sprintf("%s gets a Setback die for %s.", cat, reason))
	}
	messages = append(messages,
		fmt.Sprintf("\n🎲 %s rolls %s...", cat, pool),
		fmt.Sprintf("\n🎲 %s rolled **%s**!\n", cat, result),
	)

	critRating := rng.FixedInt(fmt.Sprintf("%d_crit", cat.ID), 2, 6)
	spend := c.spendAttackSymbols(result, critRating, true, cat.String(), env.Rand)
	messages = append(messages, spend.Messages...)

	damage := 0
	if result.IsSuccess() {
		damage = result.Successes + result.Triumphs + 3 + cat.SkillValue("damage")*2 - result.Despairs
	}

	if damage > 0 {
		switch {
		case spend.IsCrit && target.Generic:
			messages = append(messages, fmt.Sprintf(
				"\n⚔️ %s **crits and instantly eliminates %s!** ⚔️", cat, target))
			target.HP = 0
			damage = 0
		case spend.IsCrit:
			damage *= 2
			messages = append(messages, fmt.Sprintf("\n⚔️ %s **crits for %d damage!** ⚔️", cat, damage))
		default:
			messages = append(messages, fmt.Sprintf("\n⚔️ %s hits for %d damage! ⚔️", cat, damage))
		}
	} else {
		messages = append(messages, fmt.Sprintf("\n⚔️ %s misses! ⚔️", cat))
	}

	if damage > 0 && target.HP > 0 {
		wounds := max(0, damage-target.Soak)
		messages = append(messages, fmt.Sprintf(
			"%s soaks %d damage and takes **%d %s**.",
			target.CapName(), damage-wounds, wounds, text.Plural("wound", wounds)))
		target.HP -= wounds
	}
	if target.HP <= 0 {
		messages = append(messages, fmt.Sprintf("**%s is defeated!**", target.CapName()))
	}

	return outcome.Outcome{
		Text:  strings.Join(messages, "\n"),
		Panel: c.statusPanel(catsStanding),
		Image: cat.Image(),
	}
}

// doEnemyTurn has the next enemy who hasn't acted attack a random cat.
func (c *Combat) doEnemyTurn(catsStanding []*actor.Cat, enemiesStanding []standingEnemy, env *Env) outcome.Outcome {
	var acting *actor.NPC
	for _, candidate := range rng.RandomOrder(env.Rand, enemiesStanding) {
		if !c.EnemiesActed[candidate.Index] {
			env.Log.Info("got combat participant", "enemy", candidate.NPC.Name)
			c.EnemiesActed[candidate.Index] = true
			acting = candidate.NPC
			break
		}
	}
	if acting == nil {
		env.Log.Info("all enemies have already acted")
		return outcome.Outcome{Text: "👺 All the remaining enemies have already acted! 😼"}
	}

	target := catsStanding[env.Rand.IntN(len(catsStanding))]
	pool := dice.ForSkill(
		acting.AttackAttr, acting.AttackSkill,
		2, 0, 0, rng.FixedInt(fmt.Sprintf("%d_defense", target.ID), 0, 1))
	boostReasons, setbackReasons := c.EnemyModifiers.Apply(pool, env.Config.BonusDie, env.Rand)

	result := pool.Roll(env.Rand)

	messages := []string{
		fmt.Sprintf("🗡️ %s attempts to attack %s using their %s. 🗡️",
			acting.CapName(), target, acting.Weapon),
	}
	for _, reason := range boostReasons {
		messages = append(messages, fmt.Sprintf("%s gets a Boost die for %s.", acting.CapName(), reason))
	}
	for _, reason := range setbackReasons {
		messages = append(messages, fmt.Sprintf("%s gets a Setback die for %s.", acting.CapName(), reason))
	}
	messages = append(messages,
		fmt.Sprintf("\n🎲 %s rolls %s...", acting.CapName(), pool),
		fmt.Sprintf("\n🎲 %s rolled **%s**!\n", acting.CapName(), result),
	)

	critRating := rng.FixedInt(fmt.Sprintf("%s_crit", acting.Weapon), 2, 4)
	spend := c.spendAttackSymbols(result, critRating, false, acting.CapName(), env.Rand)
	messages = append(messages, spend.Messages...)

	damage := 0
	if result.IsSuccess() {
		damage = result.Successes + result.Triumphs + acting.WeaponDamage - result.Despairs
	}

	if damage > 0 {
		if spend.IsCrit {
			damage *= 2
			messages = append(messages, fmt.Sprintf(
				"\n⚔️ %s **crits for %d damage!** ⚔️", acting.CapName(), damage))
		} else {
			messages = append(messages, fmt.Sprintf(
				"\n⚔️ %s hits for %d damage! ⚔️", acting.CapName(), damage))
		}
	} else {
		messages = append(messages, fmt.Sprintf("\n⚔️ %s misses! ⚔️", acting.CapName()))
	}

	if damage > 0 && c.CatHPs[target.ID] > 0 {
		wounds := max(0, damage-target.Soak())
		messages = append(messages, fmt.Sprintf(
			"%s soaks %d damage and takes **%d %s**.",
			target, damage-wounds, wounds, text.Plural("wound", wounds)))
		c.CatHPs[target.ID] -= wounds
	}
	if c.CatHPs[target.ID] <= 0 {
		messages = append(messages, fmt.Sprintf("%s **is defeated!**", target))
	}

	return outcome.Outcome{
		Text:  strings.Join(messages, "\n"),
		Panel: c.statusPanel(catsStanding),
		Image: target.Image(),
	}
}

// statusPanel summarizes who is still up, who has acted, and the turns
// left in the round.
func (c *Combat) statusPanel(cats []*actor.Cat) *outcome.Panel {
	panel := &outcome.Panel{
		Title: "⚔️ Combat! ⚔️",
		Color: outcome.ColorDefault,
	}

	var catLines []string
	i := 0
	for _, cat := range c.catsStanding(cats) {
		i++
		line := fmt.Sprintf("%d. %s [%d/%d]", i, cat, c.CatHPs[cat.ID], cat.WoundThreshold())
		if c.CatsActed[cat.ID] {
			line += " ✅"
		}
		catLines = append(catLines, line)
	}
	panel.AddField("😼 Party 😼", orNoneRemaining(catLines), true)

	var enemyLines []string
	for i, e := range c.enemiesStanding() {
		line := fmt.Sprintf("%d. %s", i+1, e.NPC.CapName())
		if c.EnemiesActed[e.Index] {
			line += " ✅"
		}
		enemyLines = append(enemyLines, line)
	}
	panel.AddField("👺 Enemies 👺", orNoneRemaining(enemyLines), true)

	slots := make([]string, len(c.InitiativeRemaining))
	for i, isCat := range c.InitiativeRemaining {
		slots[i] = sideSymbol(isCat)
	}
	queue := strings.Join(slots, "")
	if queue == "" {
		queue = "Rolling initiative!"
	}
	panel.AddField("⏱ Remaining initiative slots ⏱", queue, false)
	return panel
}

func sideSymbol(isCat bool) string {
	if isCat {
		return catSymbol
	}
	return enemySymbol
}

func orNone(lines []string) string {
	if len(lines) == 0 {
		return "None!"
	}
	return strings.Join(lines, "\n")
}

func orNoneRemaining(lines []string) string {
	if len(lines) == 0 {
		return "None remaining!"
	}
	return strings.Join(lines, "\n")
}
