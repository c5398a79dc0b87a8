// Capture resolution: ordinary sandwich captures and the King's
// surround capture, both parameterized by Variant so that each
// variant's capture-assist rules stay data rather than branching code.
package rules

import "go-tafl"

// hostileFeature reports whether a cell is a positional hostile
// feature for sandwich-capture purposes: a corner (always), or the
// throne when it is not occupied by the King.
func hostileFeature(cell *Cell) bool {
	if cell.IsCorner {
		return true
	}
	if cell.IsThrone && cell.Piece != tafl.King {
		return true
	}
	return false
}

// friendlyPiece reports whether kind belongs to mover for the purpose
// of acting as the far side of a sandwich.
func friendlyPiece(kind tafl.PieceKind, mover tafl.Role) bool {
	switch mover {
	case tafl.Attacker:
		return kind == tafl.AttackerPiece
	case tafl.Defender:
		return kind == tafl.DefenderPiece
	default:
		return false
	}
}

// ResolveCaptures checks the four orthogonal neighbors of to (the
// cell a piece just moved to) and removes any enemy piece that is
// immediately sandwiched against a friendly piece or a hostile
// feature. Only cells adjacent to to may be captured this move — no
// chain captures. The King is never captured by this function; see
// KingCaptured.
func ResolveCaptures(b *Board, v Variant, mover tafl.Role, to Coord) []Coord {
	var captured []Coord

	for _, dir := range Directions {
		n := to.Add(dir)
		if !b.InBounds(n) {
			continue
		}
		ncell := b.At(n)
		if ncell.Piece == tafl.Empty || ncell.Piece == tafl.King {
			continue
		}
		if friendlyPiece(ncell.Piece, mover) {
			continue // not an enemy piece
		}

		f := n.Add(dir)
		if !b.InBounds(f) {
			continue
		}
		fcell := b.At(f)

		assisted := false
		switch {
		case friendlyPiece(fcell.Piece, mover):
			assisted = true
		case fcell.Piece == tafl.King:
			if mover == tafl.Defender {
				assisted = true // King is always a friend of Defenders
			} else {
				assisted = v.AssistIncludesKing
			}
		case hostileFeature(fcell):
			assisted = true
		}

		if assisted {
			ncell.Piece = tafl.Empty
			captured = append(captured, n)
		}
	}

	return captured
}

// kingSideHostile reports whether the side of the King in direction
// dir is hostile: an Attacker piece, a hostile feature, or — when the
// variant treats the edge as hostile — the board boundary itself.
func kingSideHostile(b *Board, v Variant, king Coord, dir Coord) bool {
	n := king.Add(dir)
	if !b.InBounds(n) {
		return v.EdgeHostileToKing
	}
	cell := b.At(n)
	if cell.Piece == tafl.AttackerPiece {
		return true
	}
	return hostileFeature(cell)
}

// KingCaptured reports whether the King at position king is
// surrounded on all four orthogonal sides by Attackers or hostile
// features (corner, empty throne, or — per variant — the board edge).
// This is what lets a King standing next to the throne or against the
// edge be captured with only three Attackers.
func KingCaptured(b *Board, v Variant, king Coord) bool {
	for _, dir := range Directions {
		if !kingSideHostile(b, v, king, dir) {
			return false
		}
	}
	return true
}

// Escaped reports whether the King at pos stands on a corner square.
func Escaped(b *Board, pos Coord) bool {
	return b.At(pos).IsCorner
}
