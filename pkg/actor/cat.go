// Package actor holds the combatant types of the simulation: the party's
// cats and the NPCs they run into.
package actor

import (
	"fmt"
	"strings"

	"github.com/whiskerworks/adventure-engine/pkg/rng"
)

// Stat names an attribute axis of a cat. The first six are Genesys-style
// attributes, the rest are Feline Five personality axes. All are stored on
// a 0-100 scale.
type Stat string

const (
	// Brawn
	StatChonk Stat = "chonk"
	// Agility
	StatZoomies Stat = "zoomies"
	// Intellect
	StatCuriosity Stat = "curiosity"
	// Cunning
	StatPlayfulness Stat = "playfulness"
	// Willpower
	StatFluff Stat = "fluff"
	// Presence
	StatPurrVolume Stat = "purr_volume"

	// How anxious the cat is
	StatSkittishness Stat = "skittishness"
	// How likely the cat is to seek out new experiences
	StatOutgoingness Stat = "outgoingness"
	// How likely the cat is to lead or assume a dominant social role
	StatDominance Stat = "dominance"
	// How impulsive the cat is
	StatSpontaneity Stat = "spontaneity"
	// How affectionate the cat is
	StatFriendliness Stat = "friendliness"
)

// Pronouns is a pronoun set for a cat.
type Pronouns struct {
	He      string `json:"he"`
	Him     string `json:"him"`
	His     string `json:"his"`
	Himself string `json:"himself"`
	Plural  bool   `json:"plural"`
}

// ParsePronouns builds a Pronouns from a string like
// "he,him,his,himself,false".
func ParsePronouns(csv string) (Pronouns, error) {
	parts := strings.Split(csv, ",")
	if len(parts) != 5 {
		return Pronouns{}, fmt.Errorf("invalid pronoun string %q", csv)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return Pronouns{
		He:      parts[0],
		Him:     parts[1],
		His:     parts[2],
		Himself: parts[3],
		Plural:  strings.EqualFold(parts[4], "true"),
	}, nil
}

// Cat is one member of the party. Attribute fields are on a 0-100 scale;
// everything the simulation derives from them (Genesys attribute bands,
// skill values, wound threshold) is computed, not stored.
type Cat struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Pronouns Pronouns `json:"pronouns"`

	// Flavor
	Descriptor string `json:"descriptor,omitempty"`
	Likes      string `json:"likes,omitempty"`
	Dislikes   string `json:"dislikes,omitempty"`
	Hobby      string `json:"hobby,omitempty"`

	// Genesys attributes
	Chonk       int `json:"chonk"`
	Zoomies     int `json:"zoomies"`
	Curiosity   int `json:"curiosity"`
	Playfulness int `json:"playfulness"`
	Fluff       int `json:"fluff"`
	PurrVolume  int `json:"purr_volume"`

	// Feline Five personality
	Skittishness int `json:"skittishness"`
	Outgoingness int `json:"outgoingness"`
	Dominance    int `json:"dominance"`
	Spontaneity  int `json:"spontaneity"`
	Friendliness int `json:"friendliness"`
}

func (c *Cat) String() string {
	return fmt.Sprintf("**%s** (#%d)", c.Name, c.ID)
}

// Attribute returns the raw 0-100 value for a stat axis.
func (c *Cat) Attribute(s Stat) int {
	switch s {
	case StatChonk:
		return c.Chonk
	case StatZoomies:
		return c.Zoomies
	case StatCuriosity:
		return c.Curiosity
	case StatPlayfulness:
		return c.Playfulness
	case StatFluff:
		return c.Fluff
	case StatPurrVolume:
		return c.PurrVolume
	case StatSkittishness:
		return c.Skittishness
	case StatOutgoingness:
		return c.Outgoingness
	case StatDominance:
		return c.Dominance
	case StatSpontaneity:
		return c.Spontaneity
	case StatFriendliness:
		return c.Friendliness
	}
	return 0
}

// GenesysAttr converts a 0-100 attribute value to a Genesys attribute
// rating between 1 and 4.
func GenesysAttr(value int) int {
	switch {
	case value >= 85:
		return 4
	case value >= 65:
		return 3
	case value >= 25:
		return 2
	}
	return 1
}

// SkillValue returns the cat's value for a named skill. The value is
// identity-stable: it looks random but reproduces for the same cat and
// skill on every call without being stored.
func (c *Cat) SkillValue(skill string) int {
	return rng.FixedInt(fmt.Sprintf("%d_%s", c.ID, skill), 0, 3)
}

// WoundThreshold is the cat's maximum hit points.
func (c *Cat) WoundThreshold() int {
	base := rng.FixedInt(fmt.Sprintf("%d_wound_threshold_base", c.ID), 8, 12)
	bonus := rng.FixedInt(fmt.Sprintf("%d_wound_threshold_bonus", c.ID), 0, 1)
	return base + bonus + GenesysAttr(c.Chonk)
}

// StrainThreshold is the cat's maximum strain. Intentionally anchored on
// the wound threshold base so that tanky cats trade off strain capacity.
func (c *Cat) StrainThreshold() int {
	base := rng.FixedInt(fmt.Sprintf("%d_wound_threshold_base", c.ID), 8, 12)
	bonus := rng.FixedInt(fmt.Sprintf("%d_strain_threshold_bonus", c.ID), 0, 1)
	return 8 + (12 - base) + bonus + GenesysAttr(c.Fluff)
}

// Soak is the cat's flat damage reduction.
func (c *Cat) Soak() int {
	return GenesysAttr(c.Chonk)
}

// Image returns an opaque portrait reference for this cat. The delivery
// layer resolves it to an actual image.
func (c *Cat) Image() string {
	return fmt.Sprintf("cat:%d", c.ID)
}
