// Game State: the mutable per-match board and interaction-phase
// flags, grounded on go-kgp's game.go for shape (a single struct
// holding the authoritative board plus a handful of bookkeeping
// fields, exported for reading, no interfaces).
package state

import (
	"math/rand"

	"go-tafl"
	"go-tafl/rules"
)

// Phase is the click interpreter's state.
type Phase uint8

const (
	AwaitSource Phase = iota
	AwaitTarget
)

func (p Phase) String() string {
	if p == AwaitSource {
		return "AwaitSource"
	}
	return "AwaitTarget"
}

// Game is one match's authoritative state: the board, whose turn it
// is, where the click interpreter is, and whether the match has
// ended. NewGame, ProcessClick (click.go) and MakeMove (move.go) are
// its public contract; its fields are exported for callers to read.
type Game struct {
	Id      uint32
	Title   string
	Variant rules.Variant
	Board   *rules.Board

	CurrentTurn tafl.Role
	ClickPhase  Phase
	Source      rules.Coord // valid only when ClickPhase == AwaitTarget

	GameOver bool
	Winner   tafl.Winner
	Message  string

	// MoveDone flips to true for one transition whenever a move (not
	// just a selection) was committed; consumed by the match
	// coordinator to decide its fan-out strategy.
	MoveDone bool

	// MoveCount is the number of moves successfully applied so far,
	// tracked for the status line the way the original tracker does.
	MoveCount uint
}

// NewGame constructs a Game for a freshly created match of the given
// variant. id must already be validated as an 8-digit match id; title
// is the human-readable variant name.
func NewGame(id uint32, title string, v rules.Variant) *Game {
	g := &Game{
		Id:          id,
		Title:       title,
		Variant:     v,
		Board:       rules.NewBoard(v),
		CurrentTurn: tafl.Attacker,
		ClickPhase:  AwaitSource,
		Winner:      tafl.NoWinner,
	}
	g.Message = turnMessage(g)
	return g
}

// RandomMatchID returns a uniformly random 8-digit match identifier in
// [10_000_000, 99_999_999].
func RandomMatchID() uint32 {
	const lo, hi = 10_000_000, 99_999_999
	return uint32(lo + rand.Intn(hi-lo+1))
}

// Clone returns a deep copy of g, including its board.
func (g *Game) Clone() *Game {
	c := *g
	c.Board = g.Board.Clone()
	return &c
}
