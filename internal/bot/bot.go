// Package bot provides the bundled Liar's Poker strategies. Each strategy
// implements game.Player; constructors take an RNG and a logger so
// simulations stay reproducible.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/liars"
)

// New creates a player for the named strategy.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.Player, error) {
	switch strategy {
	case "naive":
		return NewNaiveBot(rng, logger), nil
	case "counting":
		return NewCountingBot(rng, logger), nil
	case "aggressive":
		return NewAggressiveBot(rng, logger), nil
	case "challenger":
		return NewChallengerBot(rng, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// Strategies returns the names accepted by New, in display order.
func Strategies() []string {
	return []string{"aggressive", "challenger", "counting", "naive"}
}

// randomOwnDigit samples a digit from the player's own zero-padded number,
// weighting digits by how often they occur in it.
func randomOwnDigit(rng *rand.Rand, number liars.SecretNumber) int {
	digits := number.String()
	return int(digits[rng.IntN(len(digits))] - '0')
}

// favoriteDigit returns the digit the player holds most of, preferring the
// highest digit on ties since higher digits leave more room to raise.
func favoriteDigit(counts liars.Counts) int {
	best := 9
	for d := 9; d >= 0; d-- {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

// lastBet returns the most recent claim in the log, which is always a bet
// while the round is live.
func lastBet(state []game.MoveRecord) (liars.Claim, error) {
	claim := state[len(state)-1].Claim
	if claim.Kind != liars.Bet {
		return liars.Claim{}, fmt.Errorf("asked to move after terminal claim %s", claim)
	}
	return claim, nil
}
