// Package statistics aggregates results across many Liar's Poker rounds.
package statistics

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/liarspoker/game"
)

// RoundResult captures one finished round for aggregation.
type RoundResult struct {
	Winner  int // game.NoWinner for a tie
	Opener  int // player who made the first move
	Moves   int
	Elapsed time.Duration // total decision time across all moves
	Seed    int64         // simulation seed, for replaying the batch
}

// PlayerStats tracks one seat's results.
type PlayerStats struct {
	Wins   int
	Opened int
}

// Statistics tracks aggregate outcomes for a fixed set of players. Move
// counts keep a sum of squares so variance needs no second pass.
type Statistics struct {
	Rounds int
	Ties   int

	Players []PlayerStats

	MoveSum   float64
	MoveSum2  float64
	MaxMoves  int
	TotalTime time.Duration
}

// New creates statistics for the given player count.
func New(numPlayers int) *Statistics {
	return &Statistics{
		Players: make([]PlayerStats, numPlayers),
	}
}

// Add records one round.
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++
	if result.Winner == game.NoWinner {
		s.Ties++
	} else if result.Winner >= 0 && result.Winner < len(s.Players) {
		s.Players[result.Winner].Wins++
	}
	if result.Opener >= 0 && result.Opener < len(s.Players) {
		s.Players[result.Opener].Opened++
	}

	moves := float64(result.Moves)
	s.MoveSum += moves
	s.MoveSum2 += moves * moves
	if result.Moves > s.MaxMoves {
		s.MaxMoves = result.Moves
	}
	s.TotalTime += result.Elapsed
}

// WinRate returns the fraction of rounds won by a player.
func (s *Statistics) WinRate(player int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Players[player].Wins) / float64(s.Rounds)
}

// TieRate returns the fraction of rounds that ended in a tie.
func (s *Statistics) TieRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Ties) / float64(s.Rounds)
}

// MeanMoves returns the average round length in moves.
func (s *Statistics) MeanMoves() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.MoveSum / float64(s.Rounds)
}

// MoveVariance returns the sample variance of the round length.
func (s *Statistics) MoveVariance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.MeanMoves()
	return (s.MoveSum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// MoveStdDev returns the sample standard deviation of the round length.
func (s *Statistics) MoveStdDev() float64 {
	return math.Sqrt(s.MoveVariance())
}

// Merge folds another batch's results into this one. Both must cover the
// same players.
func (s *Statistics) Merge(other *Statistics) error {
	if len(other.Players) != len(s.Players) {
		return fmt.Errorf("cannot merge statistics for %d players into %d", len(other.Players), len(s.Players))
	}
	s.Rounds += other.Rounds
	s.Ties += other.Ties
	for i := range s.Players {
		s.Players[i].Wins += other.Players[i].Wins
		s.Players[i].Opened += other.Players[i].Opened
	}
	s.MoveSum += other.MoveSum
	s.MoveSum2 += other.MoveSum2
	if other.MaxMoves > s.MaxMoves {
		s.MaxMoves = other.MaxMoves
	}
	s.TotalTime += other.TotalTime
	return nil
}

// Validate checks internal consistency: wins and ties must partition the
// rounds played.
func (s *Statistics) Validate() error {
	wins := 0
	for _, p := range s.Players {
		wins += p.Wins
	}
	if wins+s.Ties != s.Rounds {
		return fmt.Errorf("inconsistent statistics: %d wins + %d ties != %d rounds", wins, s.Ties, s.Rounds)
	}
	return nil
}
