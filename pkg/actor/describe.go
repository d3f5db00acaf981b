package actor

import (
	"sort"

	"github.com/whiskerworks/adventure-engine/pkg/text"
)

// DescribeCats lists the cats participating in an event. An empty list
// reads as the whole party.
func DescribeCats(cats []*Cat) string {
	if len(cats) == 0 {
		return "The party"
	}
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return text.JoinAnd(names)
}

// DescribeNPCs enumerates NPCs, grouping repeated generics into plural
// counts ("three bandits and a bandit leader"), most numerous first.
func DescribeNPCs(npcs []NPC) string {
	if len(npcs) == 0 {
		return "no one"
	}
	if len(npcs) == 1 {
		return npcs[0].String()
	}

	type group struct {
		name    string
		generic bool
		count   int
	}
	counts := make(map[string]*group)
	var order []string
	for i := range npcs {
		key := npcs[i].Name
		if g, ok := counts[key]; ok {
			g.count++
			continue
		}
		counts[key] = &group{name: npcs[i].Name, generic: npcs[i].Generic, count: 1}
		order = append(order, key)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]].count > counts[order[j]].count
	})

	var parts []string
	for _, key := range order {
		g := counts[key]
		switch {
		case g.count == 1 && g.generic:
			parts = append(parts, text.A(g.name))
		case g.count == 1:
			parts = append(parts, g.name)
		case g.generic:
			parts = append(parts, text.NumberWord(g.count)+" "+text.Plural(g.name, g.count))
		default:
			for i := 0; i < g.count; i++ {
				parts = append(parts, g.name)
			}
		}
	}
	return text.JoinAnd(parts)
}
