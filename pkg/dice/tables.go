package dice

// Face is one side of a die: the symbols it shows when rolled.
type Face struct {
	Successes  int
	Advantages int
	Triumphs   int
	Despairs   int
}

// The outcome tables for the six die types. A table's length is the die's
// face count; rolling a die selects one entry uniformly.

var boostTable = []Face{
	{0, 0, 0, 0},
	{0, 0, 0, 0},
	{1, 0, 0, 0},
	{1, 1, 0, 0},
	{0, 2, 0, 0},
	{0, 1, 0, 0},
}

var setbackTable = []Face{
	{0, 0, 0, 0},
	{0, 0, 0, 0},
	{-1, 0, 0, 0},
	{-1, 0, 0, 0},
	{0, -1, 0, 0},
	{0, -1, 0, 0},
}

var abilityTable = []Face{
	{0, 0, 0, 0},
	{1, 0, 0, 0},
	{1, 0, 0, 0},
	{2, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 1, 0, 0},
	{1, 1, 0, 0},
	{0, 2, 0, 0},
}

var difficultyTable = []Face{
	{0, 0, 0, 0},
	{-1, 0, 0, 0},
	{-2, 0, 0, 0},
	{0, -1, 0, 0},
	{0, -1, 0, 0},
	{0, -1, 0, 0},
	{0, -2, 0, 0},
	{-1, -1, 0, 0},
}

var proficiencyTable = []Face{
	{0, 0, 0, 0},
	{1, 0, 0, 0},
	{1, 0, 0, 0},
	{2, 0, 0, 0},
	{2, 0, 0, 0},
	{0, 1, 0, 0},
	{1, 1, 0, 0},
	{1, 1, 0, 0},
	{1, 1, 0, 0},
	{0, 2, 0, 0},
	{0, 2, 0, 0},
	{0, 0, 1, 0},
}

var challengeTable = []Face{
	{0, 0, 0, 0},
	{-1, 0, 0, 0},
	{-1, 0, 0, 0},
	{-2, 0, 0, 0},
	{-2, 0, 0, 0},
	{0, -1, 0, 0},
	{0, -1, 0, 0},
	{-1, -1, 0, 0},
	{-1, -1, 0, 0},
	{0, -2, 0, 0},
	{0, -2, 0, 0},
	{0, 0, 0, 1},
}
