package cribbage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Ace   = 1
	Jack  = 11
	Queen = 12
	King  = 13
)

// FaceDown is the display character for hidden cards
const FaceDown = "▓"

const suitCodes = "CDHS"

// Card represents a playing card with suit and rank.
// Rank 0 indicates a face-down or unrevealed card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king (0 = face down)
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank ordinal of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// Value returns the counting value of the Card: face cards count 10, every
// other card counts its rank.
func (c Card) Value() int {
	if c.rank > 10 {
		return 10
	}
	return int(c.rank)
}

// IsFaceDown reports whether the card has not been revealed.
func (c Card) IsFaceDown() bool {
	return c.rank == 0
}

// Symbol returns the rank abbreviation (A, 2-10, J, Q, K).
func (c Card) Symbol() string {
	switch c.rank {
	case 0:
		return FaceDown
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(int(c.rank))
	}
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations.
func (c Card) String() string {
	if c.rank == 0 {
		return FaceDown
	}
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Gray("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Gray("♠")
	default:
		suit = "?"
	}
	return c.Symbol() + suit
}

// Code returns the plain text form of the card, e.g. "10H" or "QS".
func (c Card) Code() string {
	if c.rank == 0 || c.suit > 3 {
		return FaceDown
	}
	return c.Symbol() + string(suitCodes[c.suit])
}

// ParseCard parses the text form produced by Code. Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card code %q", s)
	}
	suit := strings.IndexByte(suitCodes, s[len(s)-1])
	if suit < 0 {
		return Card{}, fmt.Errorf("invalid suit in card code %q", s)
	}
	var rank int
	switch r := s[:len(s)-1]; r {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(r)
		if err != nil || n < 2 || n > 10 {
			return Card{}, fmt.Errorf("invalid rank in card code %q", s)
		}
		rank = n
	}
	return NewCard(uint8(suit), uint8(rank))
}

// MarshalText encodes the card as its code.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalText decodes a card code. The face-down marker decodes to the zero Card.
func (c *Card) UnmarshalText(text []byte) error {
	if string(text) == FaceDown {
		*c = Card{}
		return nil
	}
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, fmt.Errorf("the card to convert has an invalid value: %d", rawCard)
	}
	suit := uint8((rawCard - 1) / 13)
	rank := uint8((rawCard-1)%13 + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

func sumValues(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value()
	}
	return total
}

func indexOf(cards []Card, card Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}

func codes(cards []Card) string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return strings.Join(out, " ")
}
