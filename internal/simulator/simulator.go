// Package simulator runs batches of Liar's Poker rounds between configured
// strategies and aggregates the outcomes.
package simulator

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/liarspoker/game"
	"github.com/lox/liarspoker/internal/bot"
	"github.com/lox/liarspoker/internal/randutil"
	"github.com/lox/liarspoker/internal/statistics"
)

// Config holds configuration for running simulations.
type Config struct {
	Rounds     int
	Seed       int64
	Timeout    time.Duration // per-round bound on misbehaving players; 0 disables
	Strategies []string
	Logger     *log.Logger
}

// Simulator plays rounds between the configured strategies, carrying each
// round's winner into the next round's opening seat.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregate statistics.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	rng := randutil.New(s.config.Seed)

	players := make([]game.Player, len(s.config.Strategies))
	for i, strategy := range s.config.Strategies {
		player, err := bot.New(strategy, rng, s.config.Logger)
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i, err)
		}
		players[i] = player
	}

	recorder := &moveRecorder{}
	g := game.NewGame(players,
		game.WithRNG(rng),
		game.WithLogger(s.config.Logger),
		game.WithObserver(recorder),
	)
	if err := g.Setup(); err != nil {
		return nil, err
	}

	stats := statistics.New(len(players))
	opener := game.NoWinner
	for round := 0; round < s.config.Rounds; round++ {
		recorder.reset()

		winner, err := s.playRoundWithTimeout(g, opener)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round+1, err)
		}

		stats.Add(statistics.RoundResult{
			Winner:  winner,
			Opener:  recorder.opener,
			Moves:   recorder.moves,
			Elapsed: recorder.elapsed,
			Seed:    s.config.Seed,
		})
		opener = winner
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}
	return stats, nil
}

// playRoundWithTimeout bounds a single round. The timeout protects the
// batch from a stalled player; adjudication never sees it.
func (s *Simulator) playRoundWithTimeout(g *game.Game, opener int) (int, error) {
	if s.config.Timeout <= 0 {
		return playRound(g, opener)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	type roundResult struct {
		winner int
		err    error
	}
	resultCh := make(chan roundResult, 1)

	go func() {
		winner, err := playRound(g, opener)
		resultCh <- roundResult{winner, err}
	}()

	select {
	case result := <-resultCh:
		return result.winner, result.err
	case <-ctx.Done():
		return game.NoWinner, fmt.Errorf("round timed out after %v (seed: %d)", s.config.Timeout, s.config.Seed)
	}
}

func playRound(g *game.Game, opener int) (int, error) {
	if opener == game.NoWinner {
		return g.PlayRound()
	}
	return g.PlayRoundFrom(opener)
}

// RunBatches fans independent simulations across workers, one derived seed
// per batch. Batches share nothing, so results are reproducible regardless
// of scheduling.
func RunBatches(config Config, batches int) ([]*statistics.Statistics, error) {
	eg, ctx := errgroup.WithContext(context.Background())
	results := make([]*statistics.Statistics, batches)

	for i := 0; i < batches; i++ {
		batchConfig := config
		batchConfig.Seed = config.Seed + int64(i)

		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			stats, err := New(batchConfig).Run()
			if err != nil {
				return fmt.Errorf("batch %d: %w", i+1, err)
			}
			results[i] = stats
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// moveRecorder is the simulator's MoveObserver: it tracks the opener, move
// count and total decision time for the round in flight.
type moveRecorder struct {
	opener  int
	moves   int
	elapsed time.Duration
}

func (r *moveRecorder) reset() {
	r.opener = game.NoWinner
	r.moves = 0
	r.elapsed = 0
}

func (r *moveRecorder) BeforeMove(playerIdx int) {
	if r.moves == 0 {
		r.opener = playerIdx
	}
}

func (r *moveRecorder) AfterMove(record game.MoveRecord) {
	r.moves++
	r.elapsed += record.Elapsed
}
