package deck

import (
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle permutes the remaining cards in place (Fisher-Yates), taking every
// swap index from the deck's cipher stream.
func (d *Deck) Shuffle() error {
	if len(d.cards) == 0 {
		return ErrEmptyDeck
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.randomIndex(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return nil
}

// randomIndex returns a uniformly distributed value in [0, n).
func (d *Deck) randomIndex(n int) int {
	return int(random.Int(big.NewInt(int64(n)), d.stream).Int64())
}
