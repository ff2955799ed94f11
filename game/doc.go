// Package game runs rounds of Liar's Poker between pluggable players.
//
// The main type is Game, which owns the secret numbers and move log for a
// round, sequences turns, validates claims against the rules in the liars
// package, and resolves the terminal Exact or Bullshit call.
//
// # Basic Usage
//
//	g := game.NewGame(players)
//	if err := g.Setup(); err != nil {
//	    return err
//	}
//	winner, err := g.PlayRound()
//
// # Deterministic Testing
//
// All randomness and timing is injectable. Use a seeded RNG and fixed
// numbers for complete control:
//
//	g := game.NewGame(players,
//	    game.WithRNG(randutil.New(42)),
//	    game.WithNumbers([]liars.SecretNumber{11111111, 22222222}),
//	)
package game
