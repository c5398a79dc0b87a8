// MakeMove: the programmatic move API used by tests and by the click
// interpreter.
package state

import (
	"fmt"

	"go-tafl"
	"go-tafl/rules"
)

// MakeMove validates and applies a move from from to to, resolves
// captures, updates win status, and flips the turn on success.
// MoveDone is set to true only when a move was actually committed.
func (g *Game) MakeMove(from, to rules.Coord) error {
	g.MoveDone = false

	if g.GameOver {
		return newError(GameOver)
	}
	if !g.Board.InBounds(from) || !g.Board.InBounds(to) {
		return newError(InvalidCoordinate)
	}

	piece := g.Board.At(from).Piece
	if piece == tafl.Empty {
		return newError(NoPieceToMove)
	}
	if !piece.BelongsTo(g.CurrentTurn) {
		return newError(NotYourPiece)
	}
	if !rules.Orthogonal(from, to) {
		return newError(NonOrthogonalMove)
	}

	dest := g.Board.At(to)
	if dest.Piece != tafl.Empty {
		return newError(OccupiedDestination)
	}
	if (dest.IsCorner || dest.IsThrone) && piece != tafl.King {
		return newError(ForbiddenDestination)
	}
	if !rules.IsLegalDestination(g.Board, from, to) {
		return newError(BlockedPath)
	}

	rules.ApplyMove(g.Board, from, to)
	rules.ResolveCaptures(g.Board, g.Variant, g.CurrentTurn, to)

	if piece == tafl.King && rules.Escaped(g.Board, to) {
		g.GameOver = true
		g.Winner = tafl.KingEscaped
	}

	if !g.GameOver {
		king, ok := g.Board.King()
		if !ok {
			panic("state: king missing from board after a non-king move")
		}
		if rules.KingCaptured(g.Board, g.Variant, king) {
			g.Board.At(king).Piece = tafl.Empty
			g.GameOver = true
			g.Winner = tafl.AttackerWins
		}
	}

	switch kings := g.Board.CountKings(); {
	case kings > 1:
		panic(fmt.Sprintf("state: invariant violated, %d kings on board", kings))
	case kings == 0 && !(g.GameOver && g.Winner == tafl.AttackerWins):
		panic("state: invariant violated, king missing without a capture")
	}

	g.MoveCount++
	g.MoveDone = true
	if g.GameOver {
		g.Message = winMessage(g.Winner)
	} else {
		g.CurrentTurn = g.CurrentTurn.Opponent()
		g.Message = turnMessage(g)
	}

	return nil
}
