// Human-readable status messages, grounded on the original source's
// per-phase strings (original_source/src/hnefatafl.rs) rather than a
// single generic "ok"/"error" pair.
package state

import (
	"fmt"

	"go-tafl"
)

func turnMessage(g *Game) string {
	return fmt.Sprintf("%s's turn", g.CurrentTurn)
}

func selectionMessage(g *Game) string {
	return fmt.Sprintf("%s selected a piece, choose a destination", g.CurrentTurn)
}

func winMessage(w tafl.Winner) string {
	if w == tafl.KingEscaped {
		return "The King has escaped! Defender wins!"
	}
	role, _ := w.Role()
	return fmt.Sprintf("%s wins!", role)
}
