package deck

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left.
var ErrEmptyDeck = errors.New("deck is empty")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered pack of raw card numbers in the range 1..DeckSize.
// The top of the pack is the last element, so Draw pops from the end.
type Deck struct {
	DeckSize int
	cards    []int
	stream   cipher.Stream
}

// NewDeck creates an ordered deck of size cards whose shuffles draw their
// randomness from the Ed25519 suite random stream.
func NewDeck(size int) *Deck {
	d := &Deck{
		DeckSize: size,
		stream:   suite.RandomStream(),
	}
	d.Reset()
	return d
}

// NewSeededDeck creates a deck whose shuffles and cuts are fully determined by
// seed. Two decks built with the same seed produce the same sequence of cards.
func NewSeededDeck(size int, seed []byte) *Deck {
	d := &Deck{
		DeckSize: size,
		stream:   suite.XOF(seed),
	}
	d.Reset()
	return d
}

// Reset puts every card back in the pack in ascending order.
func (d *Deck) Reset() {
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
}

// Draw removes and returns the top card of the deck.
func (d *Deck) Draw() (int, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// CutAt moves the first at cards of the pack below the rest, keeping their
// relative order (a cyclic rotation).
func (d *Deck) CutAt(at int) error {
	if at < 0 || at > len(d.cards) {
		return fmt.Errorf("cut point %d outside deck of %d cards", at, len(d.cards))
	}
	rotated := make([]int, 0, len(d.cards))
	rotated = append(rotated, d.cards[at:]...)
	d.cards = append(rotated, d.cards[:at]...)
	return nil
}

// Cut rotates the pack at a random point.
func (d *Deck) Cut() error {
	if len(d.cards) == 0 {
		return ErrEmptyDeck
	}
	return d.CutAt(d.randomIndex(len(d.cards)))
}

// Size returns the number of cards still in the pack.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []int {
	return append([]int(nil), d.cards...)
}
