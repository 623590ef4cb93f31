// Package ledger implements an append-only, hash-chained log of the events
// produced by a cribbage game.
//
// # Core Components
//
// Blockchain: An in-memory chain of blocks with cryptographic hash chaining
// for tamper detection.
//
// Block: A single game event (points, GO, show step, round boundary) with
// the round it belongs to and a link to the previous block.
//
// # Usage
//
// Create a blockchain, then record the events returned by every game
// operation. Verify checks the chain at any time, and Totals replays the
// scoring events to recompute both players' scores.
package ledger
