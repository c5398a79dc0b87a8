// Click Interpreter: the two-phase state machine turning a stream of
// (row, column) clicks into selections then moves. ProcessClick never
// leaves the board in an inconsistent state: every rejected click either
// stays put with an error or clears the overlay and returns to
// AwaitSource.
package state

import (
	"go-tafl"
	"go-tafl/rules"
)

// ProcessClick advances the interaction state machine by one click.
// On a rule violation it returns a *RuleError and the Game remains in
// a consistent state: the click is recovered locally, never a
// transport failure.
func (g *Game) ProcessClick(row, col int) error {
	g.MoveDone = false

	if g.GameOver {
		return newError(GameOver)
	}

	c := rules.Coord{Row: row, Col: col}
	if !g.Board.InBounds(c) {
		return newError(InvalidCoordinate)
	}

	if g.ClickPhase == AwaitSource {
		return g.processSource(c)
	}
	return g.processTarget(c)
}

func (g *Game) processSource(c rules.Coord) error {
	cell := g.Board.At(c)
	if !cell.Piece.BelongsTo(g.CurrentTurn) {
		if cell.Piece == tafl.Empty {
			return newError(NoPieceToMove)
		}
		return newError(NotYourPiece)
	}

	cell.IsSelected = true
	for _, d := range rules.LegalDestinations(g.Board, c) {
		g.Board.At(d).IsPossibleMove = true
	}
	g.Source = c
	g.ClickPhase = AwaitTarget
	g.Message = selectionMessage(g)
	return nil
}

func (g *Game) processTarget(c rules.Coord) error {
	if c == g.Source {
		g.Board.ClearOverlay()
		g.ClickPhase = AwaitSource
		g.Message = turnMessage(g)
		return nil // silent deselect
	}

	piece := g.Board.At(g.Source).Piece
	cell := g.Board.At(c)
	forbidden := (cell.IsCorner || cell.IsThrone) && piece != tafl.King

	if cell.Piece != tafl.Empty || forbidden {
		g.Board.ClearOverlay()
		g.ClickPhase = AwaitSource
		if cell.Piece != tafl.Empty {
			g.Message = turnMessage(g)
			return newError(OccupiedDestination)
		}
		g.Message = turnMessage(g)
		return newError(ForbiddenDestination)
	}

	err := g.MakeMove(g.Source, c)
	g.Board.ClearOverlay()
	g.ClickPhase = AwaitSource
	if err != nil {
		g.Message = turnMessage(g)
	}
	return err
}
