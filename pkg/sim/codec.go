package sim

import (
	"encoding/json"
	"fmt"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
)

// The type registries for polymorphic serialization. Values are tagged
// with their registered name under the "_t" key; decoding an unknown tag
// is a hard failure. Registration happens eagerly at package init, never
// at decode time.

var (
	eventTypes = map[string]func() Event{}
	questTypes = map[string]func() *Quest{}
)

// RegisterEvent registers an event variant's constructor under its type
// name. Must be called before any decode; package init functions register
// all built-in variants.
func RegisterEvent(name string, ctor func() Event) {
	eventTypes[name] = ctor
}

// RegisterQuest registers a quest variant's constructor under its type name.
func RegisterQuest(name string, ctor func() *Quest) {
	questTypes[name] = ctor
}

func init() {
	RegisterQuest("Quest", func() *Quest { return &Quest{} })
}

// EncodeEvent serializes an event with its type tag.
func EncodeEvent(e Event) ([]byte, error) {
	name := e.EventType()
	if _, ok := eventTypes[name]; !ok {
		return nil, fmt.Errorf("sim: unregistered event type %q (%T)", name, e)
	}
	return encodeTagged(name, e)
}

func encodeTagged(name string, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	tag, _ := json.Marshal(name)
	m["_t"] = tag
	return json.Marshal(m)
}

func decodeTag(data []byte) (string, error) {
	var probe struct {
		T string `json:"_t"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	if probe.T == "" {
		return "", fmt.Errorf("sim: missing type tag")
	}
	return probe.T, nil
}

// DecodeEvent reads the type tag, looks up the registered constructor and
// reconstructs the event. An unknown tag fails the decode.
func DecodeEvent(data []byte) (Event, error) {
	tag, err := decodeTag(data)
	if err != nil {
		return nil, err
	}
	ctor, ok := eventTypes[tag]
	if !ok {
		return nil, fmt.Errorf("sim: unknown event type %q", tag)
	}
	e := ctor()
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("sim: decoding %q: %w", tag, err)
	}
	return e, nil
}

// EncodeQuest serializes a quest with its type tag.
func EncodeQuest(q *Quest) ([]byte, error) {
	return encodeTagged("Quest", q)
}

// DecodeQuest reconstructs a quest from its tagged form.
func DecodeQuest(data []byte) (*Quest, error) {
	tag, err := decodeTag(data)
	if err != nil {
		return nil, err
	}
	ctor, ok := questTypes[tag]
	if !ok {
		return nil, fmt.Errorf("sim: unknown quest type %q", tag)
	}
	q := ctor()
	if err := json.Unmarshal(data, q); err != nil {
		return nil, fmt.Errorf("sim: decoding %q: %w", tag, err)
	}
	return q, nil
}

// gameStateJSON is the wire form of GameState: the polymorphic fields are
// raw tagged messages.
type gameStateJSON struct {
	CurrentEvent   json.RawMessage   `json:"current_event"`
	Quests         []json.RawMessage `json:"quests,omitempty"`
	KnownLocations []Location        `json:"known_locations,omitempty"`
	Nemeses        []actor.NPC       `json:"nemeses,omitempty"`
}

// Encode serializes a GameState into the opaque per-party blob.
func Encode(gs *GameState) ([]byte, error) {
	if gs.CurrentEvent == nil {
		return nil, fmt.Errorf("sim: game state has no current event")
	}
	event, err := EncodeEvent(gs.CurrentEvent)
	if err != nil {
		return nil, err
	}
	wire := gameStateJSON{
		CurrentEvent:   event,
		KnownLocations: gs.KnownLocations,
		Nemeses:        gs.Nemeses,
	}
	for _, q := range gs.Quests {
		raw, err := EncodeQuest(q)
		if err != nil {
			return nil, err
		}
		wire.Quests = append(wire.Quests, raw)
	}
	return json.Marshal(wire)
}

// Decode reconstructs a GameState from a blob produced by Encode.
func Decode(data []byte) (*GameState, error) {
	var wire gameStateJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("sim: decoding game state: %w", err)
	}
	event, err := DecodeEvent(wire.CurrentEvent)
	if err != nil {
		return nil, err
	}
	gs := &GameState{
		CurrentEvent:   event,
		KnownLocations: wire.KnownLocations,
		Nemeses:        wire.Nemeses,
	}
	for _, raw := range wire.Quests {
		q, err := DecodeQuest(raw)
		if err != nil {
			return nil, err
		}
		gs.Quests = append(gs.Quests, q)
	}
	return gs, nil
}
