package sim

import (
	"strings"
	"testing"
)

func TestStartTravel(t *testing.T) {
	t.Run("without a quest", func(t *testing.T) {
		env := newTestEnv(t, testPartyCat(1))
		state := &GameState{}

		out := StartTravel(state, env)
		travel, ok := state.CurrentEvent.(*Travel)
		if !ok {
			t.Fatalf("current event is %T, want *Travel", state.CurrentEvent)
		}
		if travel.Destination != nil {
			t.Errorf("destination = %+v, want nil without a quest", travel.Destination)
		}
		if out.Text != "🗺️ The party sets off. 🗺️" {
			t.Errorf("narration = %q", out.Text)
		}
	})

	t.Run("with a quest", func(t *testing.T) {
		env := newTestEnv(t, testPartyCat(1))
		state := &GameState{
			Quests: []*Quest{{EncountersLeft: 3, Destination: genericLocations[8]}},
		}

		out := StartTravel(state, env)
		travel := state.CurrentEvent.(*Travel)
		if travel.Destination == nil || travel.Destination.Name != genericLocations[8].Name {
			t.Errorf("destination = %+v, want the quest destination", travel.Destination)
		}
		if !strings.Contains(out.Text, genericLocations[8].Name) {
			t.Errorf("narration = %q, want it to name the destination", out.Text)
		}
	})
}

func TestTravelMovesTheParty(t *testing.T) {
	env := newTestEnv(t, testPartyCat(1))
	env.Config.Happening = 0 // always move on
	state := NewGameState()
	travel := state.CurrentEvent.(*Travel)

	out := travel.GenerateUpdate(state, env)
	if travel.CurrentLocation == nil {
		t.Fatal("party has no location after travelling")
	}
	if !strings.Contains(out.Text, "The party") {
		t.Errorf("narration = %q", out.Text)
	}

	// The party never arrives at the place it is already in.
	for i := 0; i < 50; i++ {
		here := travel.CurrentLocation.Name
		travel.GenerateUpdate(state, env)
		if travel.CurrentLocation.Name == here {
			t.Fatalf("party stayed at %q two moves in a row", here)
		}
	}
}

func TestTravelLocationEvents(t *testing.T) {
	t.Run("every location type has an event pool", func(t *testing.T) {
		for _, lt := range []LocationType{EnRoute, City, Village, Woods, Cave, Mine, PlaceOfPower} {
			if len(locationEvents[lt]) == 0 {
				t.Errorf("location type %d has no events", lt)
			}
		}
	})

	t.Run("peaceful location stays in travel", func(t *testing.T) {
		env := newTestEnv(t, testPartyCat(1))
		env.Config.Happening = 1 // always trigger a location event

		state := NewGameState()
		travel := state.CurrentEvent.(*Travel)
		mine := genericLocations[20]
		if mine.Type != Mine {
			t.Fatalf("expected a mine at this index, got %+v", mine)
		}
		travel.CurrentLocation = &mine

		// Mines hold no combat encounters, so the event never changes.
		for i := 0; i < 20; i++ {
			out := travel.GenerateUpdate(state, env)
			if out.Text == "" {
				t.Fatal("location event produced no narration")
			}
			if state.CurrentEvent != Event(travel) {
				t.Fatalf("current event changed to %T in a mine", state.CurrentEvent)
			}
		}
	})

	t.Run("hostile location eventually starts combat", func(t *testing.T) {
		env := newTestEnv(t, testPartyCat(1), testPartyCat(2))
		env.Config.Happening = 1

		state := NewGameState()
		travel := state.CurrentEvent.(*Travel)
		enRoute := genericLocations[0]
		travel.CurrentLocation = &enRoute

		for i := 0; i < 200; i++ {
			travel.GenerateUpdate(state, env)
			if combat, ok := state.CurrentEvent.(*Combat); ok {
				if combat.NextEvent != Event(travel) {
					t.Error("combat should hand back to the travel event")
				}
				if len(combat.Enemies) == 0 {
					t.Error("combat started with no enemies")
				}
				return
			}
		}
		t.Fatal("no combat encounter in 200 updates with certain happenings")
	})
}
