package game

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/liarspoker/liars"
)

// Option configures a Game.
type Option func(*Game)

// WithRNG sets the random source used for secret numbers and first-mover
// draws. Defaults to a wall-clock seeded source.
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithClock sets the clock used to time decision calls. Defaults to the
// real clock; tests inject a quartz mock.
func WithClock(clock quartz.Clock) Option {
	return func(g *Game) {
		g.clock = clock
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithObserver sets a MoveObserver invoked around every decision call.
func WithObserver(observer MoveObserver) Option {
	return func(g *Game) {
		g.observer = observer
	}
}

// WithNumbers fixes the secret numbers dealt each round instead of drawing
// fresh ones, giving tests complete control over the digit totals.
func WithNumbers(numbers []liars.SecretNumber) Option {
	return func(g *Game) {
		g.numbers = numbers
	}
}
