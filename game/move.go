package game

import (
	"time"

	"github.com/lox/liarspoker/liars"
)

// MoveRecord is one entry in a round's append-only move log.
type MoveRecord struct {
	Player  int
	Elapsed time.Duration
	Claim   liars.Claim
}

// MoveObserver receives callbacks around each decision call. Observers are
// for timing and diagnostics only and take no part in adjudication.
type MoveObserver interface {
	BeforeMove(playerIdx int)
	AfterMove(record MoveRecord)
}

type nopObserver struct{}

func (nopObserver) BeforeMove(int)       {}
func (nopObserver) AfterMove(MoveRecord) {}
