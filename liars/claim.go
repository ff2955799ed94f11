package liars

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidClaim indicates a bet with an out-of-range count or digit.
	ErrInvalidClaim = errors.New("invalid claim")

	// ErrInvalidRaise indicates a bet that does not raise the previous bet.
	ErrInvalidRaise = errors.New("invalid raise")

	// ErrActionAfterTerminal indicates a claim made after an Exact or
	// Bullshit call, which ends the round.
	ErrActionAfterTerminal = errors.New("action after terminal claim")

	// ErrInsufficientUniqueNumbers indicates the generator could not produce
	// the requested count of distinct numbers.
	ErrInsufficientUniqueNumbers = errors.New("insufficient unique numbers")
)

// ClaimKind identifies which of the three claim variants a Claim is.
type ClaimKind int

const (
	// Bet claims there are at least Count occurrences of Digit across all
	// players' numbers.
	Bet ClaimKind = iota
	// Exact claims the previous bet's count is exactly correct.
	Exact
	// Bullshit claims the previous bet's count is an overstatement.
	Bullshit
)

func (k ClaimKind) String() string {
	return [...]string{"bet", "exact", "bullshit"}[k]
}

// Claim is a single player action. Claims are built with NewBet, NewExact
// and NewBullshit; Count and Digit are meaningful only when Kind is Bet.
type Claim struct {
	Kind  ClaimKind
	Count int
	Digit int
}

func (c Claim) String() string {
	if c.Kind == Bet {
		return fmt.Sprintf("bet(%d %ds)", c.Count, c.Digit)
	}
	return c.Kind.String()
}

// IsTerminal reports whether the claim ends the round.
func (c Claim) IsTerminal() bool {
	return c.Kind != Bet
}

// NewBet builds a bet claim, rejecting counts below 1 and digits outside
// [0, 9].
func NewBet(count, digit int) (Claim, error) {
	if count < 1 {
		return Claim{}, fmt.Errorf("%w: bet count must be at least 1, got %d", ErrInvalidClaim, count)
	}
	if digit < 0 || digit > 9 {
		return Claim{}, fmt.Errorf("%w: bet digit must be in [0, 9], got %d", ErrInvalidClaim, digit)
	}
	return Claim{Kind: Bet, Count: count, Digit: digit}, nil
}

// NewExact builds an Exact claim.
func NewExact() Claim {
	return Claim{Kind: Exact}
}

// NewBullshit builds a Bullshit claim.
func NewBullshit() Claim {
	return Claim{Kind: Bullshit}
}

// Validate checks a claim that may have been built without the
// constructors. The engine calls this on every claim a player returns.
func (c Claim) Validate() error {
	switch c.Kind {
	case Bet:
		_, err := NewBet(c.Count, c.Digit)
		return err
	case Exact, Bullshit:
		return nil
	}
	return fmt.Errorf("%w: unknown claim kind %d", ErrInvalidClaim, int(c.Kind))
}

// EnsureValidRaise checks that bet is a legal raise over previous. A nil
// previous means this is the round's first bet, which is always legal. The
// raise rule is asymmetric on purpose: the digit or the count must strictly
// increase, and the other component may decrease.
func EnsureValidRaise(bet Claim, previous *Claim) error {
	if previous == nil {
		return nil
	}
	if previous.Kind != Bet {
		return fmt.Errorf("%w: previous action was %s", ErrActionAfterTerminal, previous)
	}
	if bet.Digit > previous.Digit || bet.Count > previous.Count {
		return nil
	}
	return fmt.Errorf("%w: %s does not raise %s", ErrInvalidRaise, bet, previous)
}
