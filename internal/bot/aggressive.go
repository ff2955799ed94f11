package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/liars"
)

// AggressiveBot keeps raising toward its favorite digit and only challenges
// once the count on the table approaches a third of all digits in play.
type AggressiveBot struct {
	rng    *rand.Rand
	logger *log.Logger

	counts     liars.Counts
	playerIdx  int
	numPlayers int
}

func NewAggressiveBot(rng *rand.Rand, logger *log.Logger) *AggressiveBot {
	return &AggressiveBot{
		rng:    rng,
		logger: logger.WithPrefix("aggressive"),
	}
}

func (b *AggressiveBot) Setup() error {
	return nil
}

func (b *AggressiveBot) StartGame(number liars.SecretNumber, playerIdx, numPlayers int) {
	b.counts = liars.DigitCounts(number)
	b.playerIdx = playerIdx
	b.numPlayers = numPlayers
}

func (b *AggressiveBot) MakeMove(state []game.MoveRecord) (liars.Claim, error) {
	favorite := favoriteDigit(b.counts)

	if len(state) == 0 {
		return liars.NewBet(2, favorite)
	}

	last, err := lastBet(state)
	if err != nil {
		return liars.Claim{}, err
	}

	if last.Count > b.numPlayers*liars.NumDigits/3 {
		return liars.NewBullshit(), nil
	}
	if favorite > last.Digit {
		return liars.NewBet(last.Count, favorite)
	}
	return liars.NewBet(last.Count+1, favorite)
}

func (b *AggressiveBot) EndGame(result game.Result, state []game.MoveRecord, numbers []liars.SecretNumber) {
	b.logger.Debug("round over", "player", b.playerIdx, "result", result, "moves", len(state))
}

var _ game.Player = (*AggressiveBot)(nil)
