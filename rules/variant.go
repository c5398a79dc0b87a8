// Per-variant configuration: board size, initial placement, and the
// capture-assist parameters that differ across the three games.
//
// A single abstract rule engine is parameterized by these tables
// instead of duplicating the move/capture logic once per variant.
package rules

import "go-tafl"

// Variant is the immutable configuration for one of the three games.
type Variant struct {
	Name tafl.VariantName
	Size int

	Attackers []Coord
	Defenders []Coord
	King      Coord
	Corners   []Coord
	Throne    Coord

	// AssistIncludesKing controls whether the King counts as a
	// friendly assist when an Attacker sandwiches a Defender
	// against it. See DESIGN.md for the per-variant decision.
	AssistIncludesKing bool

	// EdgeHostileToKing controls whether the board edge itself
	// counts as a hostile side when checking whether the King is
	// surrounded.
	EdgeHostileToKing bool
}

// NewBoard constructs the initial Board for v.
func NewBoard(v Variant) *Board {
	b := &Board{
		Size:   v.Size,
		Cells:  make([][]Cell, v.Size),
		Throne: v.Throne,
	}
	for r := range b.Cells {
		b.Cells[r] = make([]Cell, v.Size)
	}

	b.At(v.Throne).IsThrone = true
	for _, c := range v.Corners {
		b.At(c).IsCorner = true
	}
	for _, c := range v.Attackers {
		b.At(c).Piece = tafl.AttackerPiece
	}
	for _, c := range v.Defenders {
		b.At(c).Piece = tafl.DefenderPiece
	}
	b.At(v.King).Piece = tafl.King

	return b
}

func corners(size int) []Coord {
	return []Coord{
		{0, 0}, {0, size - 1},
		{size - 1, 0}, {size - 1, size - 1},
	}
}

// BrandubhVariant is the 7x7 game: 8 attackers, 4 defenders, king on
// the central throne.
var BrandubhVariant = Variant{
	Name: tafl.Brandubh,
	Size: 7,
	Attackers: []Coord{
		{0, 3}, {1, 3},
		{3, 0}, {3, 1}, {3, 5}, {3, 6},
		{5, 3}, {6, 3},
	},
	Defenders: []Coord{
		{2, 3}, {3, 2}, {3, 4}, {4, 3},
	},
	King:               Coord{3, 3},
	Corners:            corners(7),
	Throne:             Coord{3, 3},
	AssistIncludesKing: true,
	EdgeHostileToKing:  true,
}

// TablutVariant is the 9x9 game: 16 attackers in T-clusters on each
// edge, 8 defenders in a diamond around the throne.
var TablutVariant = Variant{
	Name: tafl.Tablut,
	Size: 9,
	Attackers: []Coord{
		{0, 3}, {0, 4}, {0, 5},
		{1, 4},
		{3, 0}, {3, 8},
		{4, 0}, {4, 1}, {4, 7}, {4, 8},
		{5, 0}, {5, 8},
		{7, 4},
		{8, 3}, {8, 4}, {8, 5},
	},
	Defenders: []Coord{
		{2, 4},
		{3, 4},
		{4, 2}, {4, 3}, {4, 5}, {4, 6},
		{5, 4},
		{6, 4},
	},
	King:    Coord{4, 4},
	Corners: corners(9),
	Throne:  Coord{4, 4},
	// Tablut's refuge squares are not modeled as additional hostile
	// cells; the King is treated as neutral rather than an assist
	// for Attacker sandwich captures.
	AssistIncludesKing: false,
	EdgeHostileToKing:  true,
}

// HnefataflVariant is the 11x11 game: 24 attackers in large T-clusters
// on each edge, 12 defenders in a cross around the throne.
var HnefataflVariant = Variant{
	Name: tafl.Hnefatafl,
	Size: 11,
	Attackers: []Coord{
		{0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7},
		{1, 5},
		{3, 0}, {3, 10},
		{4, 0}, {4, 10},
		{5, 0}, {5, 1}, {5, 9}, {5, 10},
		{6, 0}, {6, 10},
		{7, 0}, {7, 10},
		{9, 5},
		{10, 3}, {10, 4}, {10, 5}, {10, 6}, {10, 7},
	},
	Defenders: []Coord{
		{3, 5},
		{4, 4}, {4, 5}, {4, 6},
		{5, 3}, {5, 4}, {5, 6}, {5, 7},
		{6, 4}, {6, 5}, {6, 6},
		{7, 5},
	},
	King:    Coord{5, 5},
	Corners: corners(11),
	Throne:  Coord{5, 5},
	// Hnefatafl's capture rules treat the King as a valid assist
	// against Defenders; kept as-is since no authoritative ruleset
	// was found to override it. See DESIGN.md.
	AssistIncludesKing: true,
	EdgeHostileToKing:  true,
}

// ByName looks up a Variant's configuration by its VariantName.
func ByName(n tafl.VariantName) Variant {
	switch n {
	case tafl.Brandubh:
		return BrandubhVariant
	case tafl.Tablut:
		return TablutVariant
	case tafl.Hnefatafl:
		return HnefataflVariant
	default:
		panic("rules: unknown variant")
	}
}
