package text

import "testing"

func TestPlural(t *testing.T) {
	tests := []struct {
		word string
		n    int
		want string
	}{
		{"wound", 1, "wound"},
		{"wound", 2, "wounds"},
		{"wound", 0, "wounds"},
		{"die", 1, "die"},
		{"die", 3, "dice"},
		{"Success", 2, "Successes"},
		{"Triumph", 1, "Triumph"},
		{"bandit", 3, "bandits"},
		{"time", -1, "time"},
	}
	for _, tt := range tests {
		if got := Plural(tt.word, tt.n); got != tt.want {
			t.Errorf("Plural(%q, %d) = %q, want %q", tt.word, tt.n, got, tt.want)
		}
	}
}

func TestPluralVerb(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
	}{
		{"meets", "meet"},
		{"passes", "pass"},
		{"reaches", "reach"},
		{"is travelling through", "are travelling through"},
		{"has", "have"},
		{"gets lost", "get lost"},
		{"stumbles aimlessly", "stumble aimlessly"},
		{"gets in a minor argument with", "get in a minor argument with"},
		{"exchanges rumours with", "exchange rumours with"},
	}
	for _, tt := range tests {
		if got := PluralVerb(tt.phrase); got != tt.want {
			t.Errorf("PluralVerb(%q) = %q, want %q", tt.phrase, got, tt.want)
		}
	}
}

func TestA(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"bandit", "a bandit"},
		{"orc", "an orc"},
		{"ancient city", "an ancient city"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := A(tt.word); got != tt.want {
			t.Errorf("A(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestCapFirst(t *testing.T) {
	if got := CapFirst("a bandit"); got != "A bandit" {
		t.Errorf("CapFirst = %q", got)
	}
	if got := CapFirst(""); got != "" {
		t.Errorf("CapFirst(\"\") = %q", got)
	}
}

func TestNumberWord(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{12, "twelve"},
		{13, "13"},
		{42, "42"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		if got := NumberWord(tt.n); got != tt.want {
			t.Errorf("NumberWord(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestJoinAnd(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b, and c"},
	}
	for _, tt := range tests {
		if got := JoinAnd(tt.items); got != tt.want {
			t.Errorf("JoinAnd(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}
