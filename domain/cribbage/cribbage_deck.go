package cribbage

import (
	"fmt"

	"github.com/luca-patrignani/cribbage/domain/deck"
)

// CardSource supplies cards for a round. Shuffle gathers and shuffles the
// whole pack, Draw deals the top card and Cut cuts the pack and turns up the
// starter.
type CardSource interface {
	Shuffle() error
	Draw() (Card, error)
	Cut() (Card, error)
}

// CribbageDeck wraps a raw 52-card deck and converts its card numbers to Cards.
type CribbageDeck struct {
	*deck.Deck
}

// NewCribbageDeck creates a 52-card deck with unpredictable shuffles.
func NewCribbageDeck() CribbageDeck {
	return CribbageDeck{Deck: deck.NewDeck(52)}
}

// NewSeededCribbageDeck creates a 52-card deck whose shuffles replay
// identically for the same seed.
func NewSeededCribbageDeck(seed []byte) CribbageDeck {
	return CribbageDeck{Deck: deck.NewSeededDeck(52, seed)}
}

// Shuffle gathers all 52 cards and shuffles them.
func (d CribbageDeck) Shuffle() error {
	d.Deck.Reset()
	return d.Deck.Shuffle()
}

// Draw deals the top card of the pack.
func (d CribbageDeck) Draw() (Card, error) {
	raw, err := d.Deck.Draw()
	if err != nil {
		return Card{}, err
	}
	return IntToCard(raw)
}

// Cut cuts the pack at a random point and turns up the new top card.
func (d CribbageDeck) Cut() (Card, error) {
	if err := d.Deck.Cut(); err != nil {
		return Card{}, fmt.Errorf("cut: %w", err)
	}
	return d.Draw()
}
