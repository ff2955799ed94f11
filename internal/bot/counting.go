package bot

import (
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/liars"
)

// CountingBot estimates the round total for a digit as its own count plus
// the expected contribution of the other players (uniform digits). It
// challenges bets that exceed the estimate, occasionally calls Exact when
// the bet sits right on it, and otherwise raises toward its strongest digit.
type CountingBot struct {
	rng    *rand.Rand
	logger *log.Logger

	counts     liars.Counts
	playerIdx  int
	numPlayers int
}

// pExact is how often the bot calls Exact when the last bet matches its
// estimate. Exact is high variance, so it stays rare.
const pExact = 0.15

func NewCountingBot(rng *rand.Rand, logger *log.Logger) *CountingBot {
	return &CountingBot{
		rng:    rng,
		logger: logger.WithPrefix("counting"),
	}
}

func (b *CountingBot) Setup() error {
	return nil
}

func (b *CountingBot) StartGame(number liars.SecretNumber, playerIdx, numPlayers int) {
	b.counts = liars.DigitCounts(number)
	b.playerIdx = playerIdx
	b.numPlayers = numPlayers
}

// estimate returns the expected round-wide count of a digit given what the
// bot holds.
func (b *CountingBot) estimate(digit int) float64 {
	others := float64((b.numPlayers - 1) * liars.NumDigits)
	return float64(b.counts[digit]) + others/10
}

func (b *CountingBot) MakeMove(state []game.MoveRecord) (liars.Claim, error) {
	favorite := favoriteDigit(b.counts)

	if len(state) == 0 {
		return liars.NewBet(b.counts[favorite], favorite)
	}

	last, err := lastBet(state)
	if err != nil {
		return liars.Claim{}, err
	}

	est := b.estimate(last.Digit)
	switch {
	case float64(last.Count) > est+1:
		return liars.NewBullshit(), nil
	case last.Count == int(math.Round(est)) && b.rng.Float64() < pExact:
		return liars.NewExact(), nil
	}

	// Steer the bet toward our strongest digit. Raising the digit lets the
	// count stand; otherwise the count has to go up.
	if favorite > last.Digit {
		return liars.NewBet(last.Count, favorite)
	}
	return liars.NewBet(last.Count+1, favorite)
}

func (b *CountingBot) EndGame(result game.Result, state []game.MoveRecord, numbers []liars.SecretNumber) {
	b.logger.Debug("round over", "player", b.playerIdx, "result", result, "moves", len(state))
}

var _ game.Player = (*CountingBot)(nil)
