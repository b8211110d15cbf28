package vector

// Sign is the sign applied to an operand during a sign sweep.
type Sign int

// Signs.
const (
	Plus  Sign = 1
	Minus Sign = -1
)

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}

	return "+"
}

// Signs is the pair of signs applied to (a, b).
type Signs struct {
	A Sign
	B Sign
}

// Pair is a pair of decimal literals.
type Pair struct {
	A string
	B string
}

// SignSweep is the order in which sign combinations are applied to a pair.
var SignSweep = []Signs{
	{Plus, Plus},
	{Minus, Plus},
	{Plus, Minus},
	{Minus, Minus},
}

// FractionOffsets are added to each operand before a sign sweep. The outer
// loop runs over the offset of a and the inner loop over the offset of b.
// The last offset is 2^-13.
var FractionOffsets = []string{
	"0",
	"0.5",
	"0.0001220703125",
}

// BasePairs are the roots of the corpus, in output order.
var BasePairs = []Pair{
	{"0", "1"},
	{"1", "1"},
	{"1", "1234567890"},
}

// Line counts of each level of the corpus.
const (
	LinesPerAddSub        = 4
	LinesPerSignSweep     = 16  // 4 sign combinations
	LinesPerFractionSweep = 144 // 3 * 3 offset combinations
	CorpusLines           = 432 // 3 base pairs
)
