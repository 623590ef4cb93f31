// Package cribbage implements the domain logic for two-player cribbage,
// including show and pegging scoring, the pegging turn protocol, and round flow.
//
// # Core Types
//
// Session: The complete state of a game: both players, the crib, the starter,
// the pegging pile and running count, whose turn it is, and the scores.
//
// Game: Owns a Session and a CardSource and exposes the operations a client
// drives: StartRound, Discard and Play. Every operation returns the events it
// produced, in order.
//
// Scorer: A single scoring rule (fifteens, pairs, runs) applied to a slice of
// cards, returning a Result with points and a description.
//
// # Game Flow
//
// A round moves through Discard → Pegging → Show. Pegging ends when both hands
// are empty; the show then counts the non-dealer's hand, the dealer's hand and
// the dealer's crib, in that order. The game ends the instant a player reaches
// the winning score, and no further points are awarded after that.
package cribbage
