// Movement: rook-like sliding, blocked by any occupied cell, with the
// throne and corners impassable to every piece but the King.
package rules

import "go-tafl"

// LegalDestinations returns every cell the piece at from may move to
// in a straight line, stopping at the first obstruction in each of
// the four directions. Corners and the throne block and are
// unreachable for non-king pieces; the King may pass through and land
// on either.
func LegalDestinations(b *Board, from Coord) []Coord {
	piece := b.At(from).Piece
	var dests []Coord

	for _, dir := range Directions {
		for step := 1; ; step++ {
			to := Coord{from.Row + dir.Row*step, from.Col + dir.Col*step}
			if !b.InBounds(to) {
				break
			}

			cell := b.At(to)
			restricted := (cell.IsCorner || cell.IsThrone) && piece != tafl.King
			if cell.Piece != tafl.Empty || restricted {
				break
			}
			dests = append(dests, to)
		}
	}

	return dests
}

// IsLegalDestination reports whether to is among from's legal
// destinations, by searching the slice LegalDestinations returns.
func IsLegalDestination(b *Board, from, to Coord) bool {
	for _, d := range LegalDestinations(b, from) {
		if d == to {
			return true
		}
	}
	return false
}

// Orthogonal reports whether two coordinates differ along exactly one
// axis — the basic shape every tafl move must have.
func Orthogonal(a, b Coord) bool {
	return (a.Row == b.Row) != (a.Col == b.Col)
}

// ApplyMove relocates the piece at from to to. Callers must already
// have validated legality; ApplyMove only performs the grid mutation.
func ApplyMove(b *Board, from, to Coord) {
	piece := b.At(from).Piece
	b.At(from).Piece = tafl.Empty
	b.At(to).Piece = piece
}
