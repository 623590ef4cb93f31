package cribbage

import (
	"errors"
	"testing"
)

func cards(t *testing.T, codes ...string) []Card {
	t.Helper()
	out := make([]Card, len(codes))
	for i, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = c
	}
	return out
}

func card(t *testing.T, code string) Card {
	t.Helper()
	return cards(t, code)[0]
}

// stackedDeck deals cards in a fixed order and always turns up the same starter.
type stackedDeck struct {
	cards    []Card
	starter  Card
	shuffles int
}

func (d *stackedDeck) Shuffle() error {
	d.shuffles++
	return nil
}

func (d *stackedDeck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, errEmptyStack
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

func (d *stackedDeck) Cut() (Card, error) {
	return d.starter, nil
}

var errEmptyStack = errors.New("stacked deck is empty")

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
