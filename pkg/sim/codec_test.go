package sim

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/whiskerworks/adventure-engine/pkg/actor"
	"github.com/whiskerworks/adventure-engine/pkg/outcome"
)

func TestEncodeDecodeEvent(t *testing.T) {
	t.Run("travel round trip", func(t *testing.T) {
		loc := genericLocations[0]
		original := &Travel{CurrentLocation: &loc}

		raw, err := EncodeEvent(original)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}

		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			t.Fatalf("encoded form is not an object: %v", err)
		}
		if string(m["_t"]) != `"Travel"` {
			t.Errorf("type tag = %s, want \"Travel\"", m["_t"])
		}

		decoded, err := DecodeEvent(raw)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		travel, ok := decoded.(*Travel)
		if !ok {
			t.Fatalf("decoded to %T, want *Travel", decoded)
		}
		if travel.CurrentLocation == nil || travel.CurrentLocation.Name != loc.Name {
			t.Errorf("current location lost: %+v", travel.CurrentLocation)
		}
	})

	t.Run("combat round trip preserves nested event", func(t *testing.T) {
		original := &Combat{
			NextEvent:           &Travel{Destination: &genericLocations[1]},
			Enemies:             []actor.NPC{actor.GenericNPC("bandit")},
			CatsAmbushed:        true,
			InitiativeRemaining: []bool{true, false},
			CatsActed:           map[int]bool{3: true},
			CatHPs:              map[int]int{3: 9},
		}

		raw, err := EncodeEvent(original)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		decoded, err := DecodeEvent(raw)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		combat, ok := decoded.(*Combat)
		if !ok {
			t.Fatalf("decoded to %T, want *Combat", decoded)
		}
		next, ok := combat.NextEvent.(*Travel)
		if !ok {
			t.Fatalf("nested event decoded to %T, want *Travel", combat.NextEvent)
		}
		if next.Destination == nil || next.Destination.Name != genericLocations[1].Name {
			t.Errorf("nested destination lost: %+v", next.Destination)
		}
		if !combat.CatsAmbushed {
			t.Error("CatsAmbushed lost")
		}
		if len(combat.InitiativeRemaining) != 2 || !combat.InitiativeRemaining[0] {
			t.Errorf("initiative queue lost: %v", combat.InitiativeRemaining)
		}
		if combat.CatHPs[3] != 9 {
			t.Errorf("cat hps lost: %v", combat.CatHPs)
		}
	})

	t.Run("unknown tag fails", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`{"_t": "Banquet"}`))
		if err == nil {
			t.Fatal("expected error for unknown event type")
		}
		if !strings.Contains(err.Error(), "Banquet") {
			t.Errorf("error should name the unknown type: %v", err)
		}
	})

	t.Run("missing tag fails", func(t *testing.T) {
		if _, err := DecodeEvent([]byte(`{}`)); err == nil {
			t.Fatal("expected error for missing type tag")
		}
	})

	t.Run("unregistered event fails to encode", func(t *testing.T) {
		if _, err := EncodeEvent(unregisteredEvent{}); err == nil {
			t.Fatal("expected error for unregistered event type")
		}
	})
}

type unregisteredEvent struct{}

func (unregisteredEvent) EventType() string { return "Unregistered" }
func (unregisteredEvent) GenerateUpdate(*GameState, *Env) outcome.Outcome {
	return outcome.Outcome{}
}

func TestEncodeDecodeGameState(t *testing.T) {
	gs := NewGameState()
	gs.Quests = []*Quest{
		{EncountersLeft: 2, Destination: genericLocations[5]},
	}
	gs.KnownLocations = []Location{genericLocations[0]}
	gs.Nemeses = []actor.NPC{{Name: "Count Hissula", HP: 14}}

	blob, err := Encode(gs)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if _, ok := decoded.CurrentEvent.(*Travel); !ok {
		t.Errorf("current event decoded to %T, want *Travel", decoded.CurrentEvent)
	}
	if len(decoded.Quests) != 1 || decoded.Quests[0].EncountersLeft != 2 {
		t.Errorf("quests lost: %+v", decoded.Quests)
	}
	if decoded.Quests[0].Destination.Name != genericLocations[5].Name {
		t.Errorf("quest destination lost: %+v", decoded.Quests[0].Destination)
	}
	if len(decoded.KnownLocations) != 1 {
		t.Errorf("known locations lost: %+v", decoded.KnownLocations)
	}
	if len(decoded.Nemeses) != 1 || decoded.Nemeses[0].Name != "Count Hissula" {
		t.Errorf("nemeses lost: %+v", decoded.Nemeses)
	}
}

func TestEncodeGameStateWithoutEvent(t *testing.T) {
	if _, err := Encode(&GameState{}); err == nil {
		t.Fatal("expected error for game state without a current event")
	}
}

func TestDecodeQuestUnknownTag(t *testing.T) {
	if _, err := DecodeQuest([]byte(`{"_t": "SideHustle"}`)); err == nil {
		t.Fatal("expected error for unknown quest type")
	}
}
