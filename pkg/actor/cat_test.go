package actor

import (
	"math/rand/v2"
	"testing"
)

func testCat(id int) *Cat {
	return &Cat{
		ID:   id,
		Name: "Biscuit",
		Pronouns: Pronouns{
			He: "she", Him: "her", His: "her", Himself: "herself",
		},
		Chonk:       90,
		Zoomies:     70,
		Curiosity:   50,
		Playfulness: 30,
		Fluff:       20,
		PurrVolume:  10,
	}
}

func TestGenesysAttr(t *testing.T) {
	tests := []struct {
		value int
		want  int
	}{
		{100, 4},
		{85, 4},
		{84, 3},
		{65, 3},
		{64, 2},
		{25, 2},
		{24, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := GenesysAttr(tt.value); got != tt.want {
			t.Errorf("GenesysAttr(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestCatString(t *testing.T) {
	c := testCat(7)
	if got := c.String(); got != "**Biscuit** (#7)" {
		t.Errorf("String() = %q", got)
	}
}

func TestCatAttribute(t *testing.T) {
	c := testCat(1)
	tests := []struct {
		stat Stat
		want int
	}{
		{StatChonk, 90},
		{StatZoomies, 70},
		{StatPurrVolume, 10},
		{StatSpontaneity, 0},
	}
	for _, tt := range tests {
		if got := c.Attribute(tt.stat); got != tt.want {
			t.Errorf("Attribute(%q) = %d, want %d", tt.stat, got, tt.want)
		}
	}
}

func TestCatSkillValue(t *testing.T) {
	c := testCat(3)

	first := c.SkillValue("Cool")
	if first < 0 || first > 3 {
		t.Fatalf("SkillValue out of range: %d", first)
	}
	if got := c.SkillValue("Cool"); got != first {
		t.Errorf("SkillValue not stable: %d then %d", first, got)
	}

	// A different cat with the same skill gets its own value stream.
	other := testCat(4)
	same := true
	for _, skill := range []string{"Cool", "Vigilance", "Claws", "damage", "Bap"} {
		if c.SkillValue(skill) != other.SkillValue(skill) {
			same = false
		}
	}
	if same {
		t.Error("two cats share every skill value; identity is being ignored")
	}
}

func TestCatThresholds(t *testing.T) {
	c := testCat(5)

	wt := c.WoundThreshold()
	if wt < 8+0+4 || wt > 12+1+4 {
		t.Errorf("WoundThreshold() = %d, out of expected range", wt)
	}
	if got := c.WoundThreshold(); got != wt {
		t.Errorf("WoundThreshold not stable: %d then %d", wt, got)
	}

	st := c.StrainThreshold()
	if st < 8+0+0+1 || st > 8+4+1+4 {
		t.Errorf("StrainThreshold() = %d, out of expected range", st)
	}

	if got := c.Soak(); got != 4 {
		t.Errorf("Soak() = %d, want 4 for chonk 90", got)
	}
}

func TestParsePronouns(t *testing.T) {
	p, err := ParsePronouns("they, them, their, themself, true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.He != "they" || p.Him != "them" || p.His != "their" || p.Himself != "themself" {
		t.Errorf("parsed %+v", p)
	}
	if !p.Plural {
		t.Error("expected plural pronoun set")
	}

	if _, err := ParsePronouns("he,him"); err == nil {
		t.Error("expected error for short pronoun string")
	}
}

func TestGenerate(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 11))
	for i := 0; i < 50; i++ {
		c := Generate(r, i)
		if c.ID != i {
			t.Fatalf("generated cat has id %d, want %d", c.ID, i)
		}
		if c.Name == "" {
			t.Fatal("generated cat has no name")
		}
		if c.Pronouns.He == "" {
			t.Fatal("generated cat has no pronouns")
		}
		for _, stat := range []int{c.Chonk, c.Zoomies, c.Fluff, c.Spontaneity} {
			if stat < 0 || stat > 100 {
				t.Fatalf("stat out of range: %d", stat)
			}
		}
	}
}
