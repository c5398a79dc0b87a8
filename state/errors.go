// Error taxonomy surfaced to users. Each is a short human-readable
// string, recovered locally by the click interpreter: the Game is
// always left in a consistent state, never failed open.
package state

// RuleCode names one of the user-facing rule violations.
type RuleCode uint8

const (
	InvalidCoordinate RuleCode = iota
	NoPieceToMove
	NotYourPiece
	ForbiddenDestination
	OccupiedDestination
	BlockedPath
	NonOrthogonalMove
	GameOver
	NotYourTurn
	UnknownMatch
	MatchFull
)

var codeMessages = map[RuleCode]string{
	InvalidCoordinate:    "That square is off the board.",
	NoPieceToMove:        "Select a piece to move.",
	NotYourPiece:         "You may not move that piece.",
	ForbiddenDestination: "Only the king may enter the throne or a corner.",
	OccupiedDestination:  "Select an empty cell to move to.",
	BlockedPath:          "The path to that cell is blocked.",
	NonOrthogonalMove:    "Pieces may only move in a straight line.",
	GameOver:             "The game is already over.",
	NotYourTurn:          "It is not your turn.",
	UnknownMatch:         "No such match exists.",
	MatchFull:            "This match already has two players.",
}

// RuleError is returned by ProcessClick/MakeMove for any outcome that
// is a rule violation rather than a programmer error. It is a plain
// value, not a panic: only invariant violations (e.g. two kings after
// a move) are fatal to the match.
type RuleError struct {
	Code    RuleCode
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func newError(code RuleCode) *RuleError {
	return &RuleError{Code: code, Message: codeMessages[code]}
}

// NewRuleError constructs a RuleError for the given code. Exported so
// that the match coordinator and registry can surface NotYourTurn,
// UnknownMatch and MatchFull, none of which originate inside a Game.
func NewRuleError(code RuleCode) *RuleError {
	return newError(code)
}
