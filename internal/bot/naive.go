package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/liars"
)

// NaiveBot is a memoryless baseline: it opens with a single digit from its
// own number, raises the count by one each turn, and challenges with a
// probability that grows with the count on the table.
type NaiveBot struct {
	rng    *rand.Rand
	logger *log.Logger

	number     liars.SecretNumber
	playerIdx  int
	numPlayers int
}

func NewNaiveBot(rng *rand.Rand, logger *log.Logger) *NaiveBot {
	return &NaiveBot{
		rng:    rng,
		logger: logger.WithPrefix("naive"),
	}
}

func (b *NaiveBot) Setup() error {
	return nil
}

func (b *NaiveBot) StartGame(number liars.SecretNumber, playerIdx, numPlayers int) {
	b.number = number
	b.playerIdx = playerIdx
	b.numPlayers = numPlayers
}

func (b *NaiveBot) MakeMove(state []game.MoveRecord) (liars.Claim, error) {
	if len(state) == 0 {
		return liars.NewBet(1, randomOwnDigit(b.rng, b.number))
	}

	last, err := lastBet(state)
	if err != nil {
		return liars.Claim{}, err
	}

	// The higher the count, the more likely the last bet is a lie.
	pBullshit := 0.2 * float64(last.Count)
	if b.rng.Float64() < pBullshit {
		return liars.NewBullshit(), nil
	}
	return liars.NewBet(last.Count+1, randomOwnDigit(b.rng, b.number))
}

func (b *NaiveBot) EndGame(result game.Result, state []game.MoveRecord, numbers []liars.SecretNumber) {
	b.logger.Debug("round over", "player", b.playerIdx, "result", result, "moves", len(state))
}

var _ game.Player = (*NaiveBot)(nil)
