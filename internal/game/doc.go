// Package game implements the core grid-poker engine: a 5x5 board of
// cards from which the player selects mutually-adjacent groups to form
// poker-style hands.
//
// The main type is Engine, which owns the Board, the active Selection and
// the derived connection layout, and exposes the command surface consumed
// by a presentation layer:
//
//	eng := game.New(42, logger)
//	eng.SelectCard(id)
//	result := eng.Play()
//	if result.GameOver {
//	    // ...
//	}
//
// Every public operation runs synchronously to completion; a Play is one
// atomic transaction (score, remove, per-column gravity, refill, game-over
// sweep) and callers observe only before/after snapshots. Any animated
// sequencing belongs to the caller.
//
// # Deterministic Testing
//
// All randomness flows through the RNG injected at construction, so a
// fixed seed replays an identical game:
//
//	eng := game.New(1234, logger)
//
// Board, Selection and the connection layout are single-session state and
// are never shared across goroutines.
package game
