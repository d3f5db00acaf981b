package sim

import (
	"math/rand/v2"
	"testing"
)

func TestBuildEnemies(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 23))

	t.Run("meets the hit point budget", func(t *testing.T) {
		for party := 1; party <= 5; party++ {
			roster := banditAmbush.BuildEnemies(r, party)
			if len(roster) == 0 {
				t.Fatalf("empty roster for party of %d", party)
			}
			total := 0
			for _, e := range roster {
				total += e.HP
			}
			if total < party*3 {
				t.Errorf("party of %d got %d total enemy HP, want at least %d",
					party, total, party*3)
			}
		}
	})

	t.Run("forced enemies always appear", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			roster := spiderQueenFight.BuildEnemies(r, 3)
			if roster[0].Name != spiderBoss.Name {
				t.Fatalf("first enemy is %q, want the forced %q", roster[0].Name, spiderBoss.Name)
			}
		}
	})

	t.Run("roster entries are copies", func(t *testing.T) {
		roster := vampireEncounter.BuildEnemies(r, 2)
		roster[0].HP = 0
		if vampire.HP == 0 {
			t.Error("damaging a roster entry mutated the template")
		}
	})

	t.Run("weights favor the common enemy", func(t *testing.T) {
		counts := map[string]int{}
		for i := 0; i < 100; i++ {
			for _, e := range banditAmbush.BuildEnemies(r, 4) {
				counts[e.Name]++
			}
		}
		if counts["bandit"] <= counts["bandit leader"] {
			t.Errorf("drew %d bandits and %d leaders; weights should favor bandits",
				counts["bandit"], counts["bandit leader"])
		}
	})
}

func TestFriendlyNPCPools(t *testing.T) {
	for name, pool := range map[string]int{
		"travelling":     len(travellingNPCs),
		"village":        len(villageNPCs),
		"city":           len(cityNPCs),
		"woods":          len(woodsNPCs),
		"cave":           len(caveNPCs),
		"mine":           len(mineNPCs),
		"place of power": len(placeOfPowerNPCs),
	} {
		if pool == 0 {
			t.Errorf("%s pool is empty", name)
		}
	}
}
