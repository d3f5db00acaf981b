package sim

import "github.com/whiskerworks/adventure-engine/pkg/actor"

// LocationType determines what events the cats may encounter somewhere.
type LocationType int

const (
	EnRoute LocationType = iota
	City
	Village
	Woods
	Cave
	Mine
	PlaceOfPower
)

// Location is a place in the game world.
type Location struct {
	Article   string       `json:"article,omitempty"`
	Name      string       `json:"name"`
	ShortName string       `json:"short_name"`
	Type      LocationType `json:"type"`
}

func (l Location) String() string {
	if l.Article != "" {
		return l.Article + " " + l.Name
	}
	return l.Name
}

// Quest is a task the party has been handed: a destination and a number of
// encounters to clear along the way. Quests are serialized with the same
// type-tag scheme as events so further variants can be added; Quest itself
// is currently the only registered variant.
type Quest struct {
	EncountersLeft int      `json:"encounters_left"`
	Destination    Location `json:"destination"`
}

// GameState is one party's entire persisted adventure. It is decoded from
// the opaque per-party blob at the start of a tick, mutated by exactly one
// event update, and re-encoded at the end. The simulation performs no
// locking; callers must serialize ticks per party.
type GameState struct {
	CurrentEvent   Event
	Quests         []*Quest
	KnownLocations []Location
	Nemeses        []actor.NPC
}

// NewGameState returns a fresh state with the party setting off.
func NewGameState() *GameState {
	return &GameState{CurrentEvent: &Travel{}}
}

// CurrentQuest returns the top of the quest stack, or nil.
func (gs *GameState) CurrentQuest() *Quest {
	if len(gs.Quests) == 0 {
		return nil
	}
	return gs.Quests[len(gs.Quests)-1]
}
