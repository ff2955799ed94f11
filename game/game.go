package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/liarspoker/internal/randutil"
	"github.com/lox/liarspoker/liars"
)

var (
	// ErrFirstMoveNotBet indicates a round opened with Exact or Bullshit.
	ErrFirstMoveNotBet = errors.New("first move must be a bet")

	// ErrNotEnoughPlayers indicates fewer than two players were supplied.
	ErrNotEnoughPlayers = errors.New("need at least two players")
)

// Game runs rounds of Liar's Poker for a fixed set of players. It owns the
// secret numbers and move log for the duration of each round; players only
// ever see their own number and read-only copies of the log.
type Game struct {
	players  []Player
	rng      *rand.Rand
	clock    quartz.Clock
	logger   *log.Logger
	observer MoveObserver
	numbers  []liars.SecretNumber
}

// NewGame creates a game for the given players.
func NewGame(players []Player, opts ...Option) *Game {
	g := &Game{
		players:  players,
		rng:      randutil.NewRandom(),
		clock:    quartz.NewReal(),
		logger:   log.New(io.Discard),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NumPlayers returns the number of players seated at the game.
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// Setup initialises every player once, before any rounds are played.
// Player errors propagate; a player that cannot set up aborts the whole
// simulation.
func (g *Game) Setup() error {
	g.logger.Info("initializing players", "count", len(g.players))
	for idx, player := range g.players {
		start := g.clock.Now()
		if err := player.Setup(); err != nil {
			return fmt.Errorf("player %d setup: %w", idx, err)
		}
		g.logger.Debug("player ready", "player", idx, "elapsed", g.clock.Since(start))
	}
	return nil
}

// PlayRound plays a single round with a uniformly drawn first mover and
// returns the winner's index, or NoWinner on a tie.
func (g *Game) PlayRound() (int, error) {
	if len(g.players) < 2 {
		return NoWinner, ErrNotEnoughPlayers
	}
	return g.playRound(g.rng.IntN(len(g.players)))
}

// PlayRoundFrom plays a single round opened by the given player.
func (g *Game) PlayRoundFrom(firstMove int) (int, error) {
	if len(g.players) < 2 {
		return NoWinner, ErrNotEnoughPlayers
	}
	if firstMove < 0 || firstMove >= len(g.players) {
		return NoWinner, fmt.Errorf("first move index %d out of range [0, %d)", firstMove, len(g.players))
	}
	return g.playRound(firstMove)
}

// PlayMany plays rounds back to back. The winner of each round opens the
// next; after a tie the opener is drawn uniformly again. Returns the winner
// index (or NoWinner) for every round in order.
func (g *Game) PlayMany(rounds int) ([]int, error) {
	g.logger.Info("running simulation", "rounds", rounds)

	winners := make([]int, 0, rounds)
	last := NoWinner
	for i := 0; i < rounds; i++ {
		var winner int
		var err error
		if last == NoWinner {
			winner, err = g.PlayRound()
		} else {
			winner, err = g.PlayRoundFrom(last)
		}
		if err != nil {
			return winners, fmt.Errorf("round %d: %w", i+1, err)
		}
		winners = append(winners, winner)
		last = winner
	}
	return winners, nil
}

// playRound runs the round state machine: deal numbers, cycle turns from
// the first mover, apply each claim, resolve on the terminal call and
// notify every player.
func (g *Game) playRound(firstMove int) (int, error) {
	n := len(g.players)

	numbers := g.numbers
	if numbers == nil {
		var err error
		numbers, err = liars.GenerateUniqueNumbers(g.rng, n)
		if err != nil {
			return NoWinner, err
		}
	} else if len(numbers) != n {
		return NoWinner, fmt.Errorf("fixed numbers: have %d, need %d", len(numbers), n)
	}

	for idx, player := range g.players {
		player.StartGame(numbers[idx], idx, n)
	}
	total := liars.TotalDigitCounts(numbers)

	g.logger.Debug("starting round", "firstMove", firstMove)

	var moveLog []MoveRecord
	prevIdx := NoWinner
	var prevBet *liars.Claim
	winner := NoWinner

	for turn := firstMove; ; turn = (turn + 1) % n {
		player := g.players[turn]

		g.observer.BeforeMove(turn)
		start := g.clock.Now()
		claim, err := player.MakeMove(slices.Clone(moveLog))
		elapsed := g.clock.Since(start)
		if err != nil {
			return NoWinner, fmt.Errorf("player %d move: %w", turn, err)
		}
		if err := claim.Validate(); err != nil {
			return NoWinner, fmt.Errorf("player %d: %w", turn, err)
		}

		record := MoveRecord{Player: turn, Elapsed: elapsed, Claim: claim}
		moveLog = append(moveLog, record)
		g.observer.AfterMove(record)
		g.logger.Debug("player moved", "player", turn, "claim", claim, "elapsed", elapsed)

		if claim.Kind == liars.Bet {
			if err := liars.EnsureValidRaise(claim, prevBet); err != nil {
				return NoWinner, fmt.Errorf("player %d: %w", turn, err)
			}
			bet := claim
			prevIdx, prevBet = turn, &bet
			continue
		}

		if prevBet == nil {
			return NoWinner, fmt.Errorf("%w: player %d opened with %s", ErrFirstMoveNotBet, turn, claim)
		}

		actual := total[prevBet.Digit]
		switch claim.Kind {
		case liars.Exact:
			// Exactly right ties the round; otherwise the bettor's
			// claim stood and the bettor wins.
			if prevBet.Count != actual {
				winner = prevIdx
			}
		case liars.Bullshit:
			// A correct challenge wins; a failed one hands the round
			// to the bettor.
			if prevBet.Count > actual {
				winner = turn
			} else {
				winner = prevIdx
			}
		}

		g.logger.Debug("round resolved",
			"claim", claim,
			"previousBet", prevBet,
			"actual", actual,
			"winner", winner)
		break
	}

	for idx, player := range g.players {
		result := Loss
		switch {
		case winner == NoWinner:
			result = Tie
		case winner == idx:
			result = Win
		}
		player.EndGame(result, slices.Clone(moveLog), slices.Clone(numbers))
	}

	return winner, nil
}
