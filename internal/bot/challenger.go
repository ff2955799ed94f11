package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/liars"
)

// ChallengerBot never raises: it opens with the smallest possible bet when
// forced to and challenges everything else. Useful as a stress test for the
// other strategies' opening bets.
type ChallengerBot struct {
	rng    *rand.Rand
	logger *log.Logger

	number    liars.SecretNumber
	playerIdx int
}

func NewChallengerBot(rng *rand.Rand, logger *log.Logger) *ChallengerBot {
	return &ChallengerBot{
		rng:    rng,
		logger: logger.WithPrefix("challenger"),
	}
}

func (b *ChallengerBot) Setup() error {
	return nil
}

func (b *ChallengerBot) StartGame(number liars.SecretNumber, playerIdx, numPlayers int) {
	b.number = number
	b.playerIdx = playerIdx
}

func (b *ChallengerBot) MakeMove(state []game.MoveRecord) (liars.Claim, error) {
	if len(state) == 0 {
		return liars.NewBet(1, randomOwnDigit(b.rng, b.number))
	}
	return liars.NewBullshit(), nil
}

func (b *ChallengerBot) EndGame(result game.Result, state []game.MoveRecord, numbers []liars.SecretNumber) {
	b.logger.Debug("round over", "player", b.playerIdx, "result", result, "moves", len(state))
}

var _ game.Player = (*ChallengerBot)(nil)
