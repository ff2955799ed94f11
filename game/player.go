package game

import "github.com/lox/liarspoker/liars"

// Result is a single player's outcome for one round.
type Result int

const (
	Loss Result = iota
	Win
	Tie
)

func (r Result) String() string {
	return [...]string{"loss", "win", "tie"}[r]
}

// NoWinner is the winner index reported for a round that ends in a tie.
const NoWinner = -1

// Player is the capability the engine calls into for each participant.
// Players never mutate game state: they receive copies of the move log and
// return exactly one claim per turn.
type Player interface {
	// Setup initialises the player once, before any rounds. Errors abort
	// the simulation setup phase.
	Setup() error

	// StartGame tells the player its secret number, seat index and the
	// player count for a new round. Nothing else is revealed.
	StartGame(number liars.SecretNumber, playerIdx, numPlayers int)

	// MakeMove returns the player's claim given the moves so far. The
	// state slice is empty for the round's first mover.
	MakeMove(state []MoveRecord) (liars.Claim, error)

	// EndGame reports the player's result along with the full move log and
	// every player's now-revealed number.
	EndGame(result Result, state []MoveRecord, numbers []liars.SecretNumber)
}
