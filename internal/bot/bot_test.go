package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/internal/randutil"
	"github.com/lox/liarspoker/liars"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewKnownStrategies(t *testing.T) {
	for _, strategy := range Strategies() {
		t.Run(strategy, func(t *testing.T) {
			player, err := New(strategy, randutil.New(1), testLogger())
			require.NoError(t, err)
			require.NotNil(t, player)
		})
	}
}

func TestNewUnknownStrategy(t *testing.T) {
	_, err := New("gto", randutil.New(1), testLogger())
	assert.ErrorContains(t, err, "unknown strategy")
}

func TestFavoriteDigit(t *testing.T) {
	tests := []struct {
		name     string
		number   liars.SecretNumber
		expected int
	}{
		{name: "clear majority", number: 55551234, expected: 5},
		{name: "tie prefers higher digit", number: 11223344, expected: 4},
		{name: "all zeros", number: 0, expected: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, favoriteDigit(liars.DigitCounts(test.number)))
		})
	}
}

func TestRandomOwnDigitComesFromNumber(t *testing.T) {
	rng := randutil.New(2)
	number := liars.SecretNumber(57575757)
	for i := 0; i < 50; i++ {
		digit := randomOwnDigit(rng, number)
		assert.Contains(t, []int{5, 7}, digit)
	}
}

func TestNaiveBotOpensWithSingleBet(t *testing.T) {
	b := NewNaiveBot(randutil.New(3), testLogger())
	b.StartGame(12345678, 0, 2)

	claim, err := b.MakeMove(nil)
	require.NoError(t, err)
	assert.Equal(t, liars.Bet, claim.Kind)
	assert.Equal(t, 1, claim.Count)
}

func TestNaiveBotRaisesCount(t *testing.T) {
	// With a count of 1 the challenge probability is 0.2; a raise, when it
	// happens, must bump the count by exactly one.
	b := NewNaiveBot(randutil.New(4), testLogger())
	b.StartGame(12345678, 1, 2)

	prev, err := liars.NewBet(2, 3)
	require.NoError(t, err)
	state := []game.MoveRecord{{Player: 0, Claim: prev}}

	raises := 0
	for i := 0; i < 100; i++ {
		claim, err := b.MakeMove(state)
		require.NoError(t, err)
		if claim.Kind == liars.Bet {
			raises++
			assert.Equal(t, 3, claim.Count)
		} else {
			assert.Equal(t, liars.Bullshit, claim.Kind)
		}
	}
	assert.Positive(t, raises, "naive bot should raise at least sometimes")
}

func TestCountingBotChallengesOverstatement(t *testing.T) {
	// Holding zero 9s in a two-player round, the estimate for 9s is 0.8;
	// a bet of eight 9s is far beyond it.
	b := NewCountingBot(randutil.New(5), testLogger())
	b.StartGame(11111111, 0, 2)

	prev, err := liars.NewBet(8, 9)
	require.NoError(t, err)
	claim, err := b.MakeMove([]game.MoveRecord{{Player: 1, Claim: prev}})
	require.NoError(t, err)
	assert.Equal(t, liars.Bullshit, claim.Kind)
}

func TestCountingBotOpensOnStrongestDigit(t *testing.T) {
	b := NewCountingBot(randutil.New(6), testLogger())
	b.StartGame(77777712, 0, 3)

	claim, err := b.MakeMove(nil)
	require.NoError(t, err)
	assert.Equal(t, liars.Bet, claim.Kind)
	assert.Equal(t, 7, claim.Digit)
	assert.Equal(t, 6, claim.Count)
}

func TestCountingBotRaisesAreLegal(t *testing.T) {
	b := NewCountingBot(randutil.New(7), testLogger())
	b.StartGame(33333333, 0, 4)

	prev, err := liars.NewBet(2, 1)
	require.NoError(t, err)
	claim, err := b.MakeMove([]game.MoveRecord{{Player: 1, Claim: prev}})
	require.NoError(t, err)
	if claim.Kind == liars.Bet {
		assert.NoError(t, liars.EnsureValidRaise(claim, &prev))
	}
}

func TestAggressiveBotChallengesHugeCounts(t *testing.T) {
	b := NewAggressiveBot(randutil.New(8), testLogger())
	b.StartGame(12345678, 0, 2)

	// 2 players hold 16 digits; a count over 5 trips the threshold.
	prev, err := liars.NewBet(6, 1)
	require.NoError(t, err)
	claim, err := b.MakeMove([]game.MoveRecord{{Player: 1, Claim: prev}})
	require.NoError(t, err)
	assert.Equal(t, liars.Bullshit, claim.Kind)
}

func TestChallengerBotAlwaysChallenges(t *testing.T) {
	b := NewChallengerBot(randutil.New(9), testLogger())
	b.StartGame(12345678, 0, 2)

	opening, err := b.MakeMove(nil)
	require.NoError(t, err)
	assert.Equal(t, liars.Bet, opening.Kind)
	assert.Equal(t, 1, opening.Count)

	prev, err := liars.NewBet(1, 0)
	require.NoError(t, err)
	claim, err := b.MakeMove([]game.MoveRecord{{Player: 1, Claim: prev}})
	require.NoError(t, err)
	assert.Equal(t, liars.Bullshit, claim.Kind)
}

func TestBotsRefuseToMoveAfterTerminalClaim(t *testing.T) {
	state := []game.MoveRecord{{Player: 0, Claim: liars.NewBullshit()}}
	for _, strategy := range Strategies() {
		t.Run(strategy, func(t *testing.T) {
			player, err := New(strategy, randutil.New(10), testLogger())
			require.NoError(t, err)
			player.StartGame(12345678, 1, 2)

			_, err = player.MakeMove(state)
			assert.Error(t, err)
		})
	}
}

func TestBotsPlayFullRoundsAgainstEachOther(t *testing.T) {
	// Every pairing must terminate and produce a well-formed outcome.
	for _, a := range Strategies() {
		for _, b := range Strategies() {
			t.Run(a+"_vs_"+b, func(t *testing.T) {
				rng := randutil.New(11)
				p1, err := New(a, rng, testLogger())
				require.NoError(t, err)
				p2, err := New(b, rng, testLogger())
				require.NoError(t, err)

				g := game.NewGame([]game.Player{p1, p2}, game.WithRNG(rng))
				require.NoError(t, g.Setup())

				winners, err := g.PlayMany(20)
				require.NoError(t, err)
				require.Len(t, winners, 20)
				for _, w := range winners {
					assert.True(t, w == game.NoWinner || (w >= 0 && w < 2), "winner %d", w)
				}
			})
		}
	}
}
