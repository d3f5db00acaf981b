package actor

import (
	"fmt"

	"github.com/whiskerworks/adventure-engine/pkg/rng"
	"github.com/whiskerworks/adventure-engine/pkg/text"
)

// NPC is a non-party combatant. Generic NPCs are anonymous ("a bandit");
// named ones keep their name as-is. Template NPC values are never mutated
// in place; encounters clone them and track hit points on the clones.
type NPC struct {
	Name         string `json:"name"`
	Generic      bool   `json:"generic"`
	AttackAttr   int    `json:"attack_attr"`
	AttackSkill  int    `json:"attack_skill"`
	Presence     int    `json:"presence"`
	Willpower    int    `json:"willpower"`
	Soak         int    `json:"soak"`
	HP           int    `json:"hp"`
	Weapon       string `json:"weapon"`
	WeaponDamage int    `json:"weapon_damage"`
	Defense      int    `json:"defense"`
}

// GenericNPC returns a generic NPC with the default stat block.
func GenericNPC(name string) NPC {
	return NPC{
		Name:         name,
		Generic:      true,
		AttackAttr:   2,
		AttackSkill:  0,
		Presence:     2,
		Willpower:    2,
		Soak:         2,
		HP:           10,
		Weapon:       "fists",
		WeaponDamage: 3,
		Defense:      1,
	}
}

func (n *NPC) String() string {
	if n.Generic {
		return text.A(n.Name)
	}
	return n.Name
}

// CapName is the NPC's display string with the first letter capitalized.
func (n *NPC) CapName() string {
	return text.CapFirst(n.String())
}

// SkillValue returns the NPC's value for a named skill, identity-stable
// per NPC name. Named NPCs get a slightly wider range than generics.
func (n *NPC) SkillValue(skill string) int {
	if n.Generic {
		return rng.FixedInt(fmt.Sprintf("%s_%s", n.Name, skill), 0, 2)
	}
	return rng.FixedInt(fmt.Sprintf("%s_%s", n.Name, skill), 0, 3)
}
