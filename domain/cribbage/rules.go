package cribbage

import "fmt"

// checkDiscard verifies that player may lay cards away to the crib.
func checkDiscard(s *Session, player int, cards []Card) error {
	if s.IsOver() {
		return ErrGameOver
	}
	if s.Phase != PhaseDiscard {
		return fmt.Errorf("%w: cannot discard during %s", ErrWrongPhase, s.Phase)
	}
	if !validPlayer(player) {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, player)
	}
	if s.Players[player].Discarded {
		return ErrAlreadyDiscarded
	}
	if len(cards) != DiscardCount {
		return fmt.Errorf("%w: got %d", ErrInvalidDiscardCount, len(cards))
	}
	if cards[0] == cards[1] {
		return fmt.Errorf("%w: %s selected twice", ErrInvalidDiscardCount, cards[0].Code())
	}
	for _, c := range cards {
		if indexOf(s.Players[player].Hand, c) < 0 {
			return fmt.Errorf("%w: %s", ErrCardNotInHand, c.Code())
		}
	}
	return nil
}

// checkPlay verifies that player may lay card on the pegging pile.
func checkPlay(s *Session, player int, card Card) error {
	if s.IsOver() {
		return ErrGameOver
	}
	if s.Phase != PhasePegging {
		return fmt.Errorf("%w: cannot play during %s", ErrWrongPhase, s.Phase)
	}
	if player != s.CurrentTurn || indexOf(s.Players[player].Hand, card) < 0 {
		return fmt.Errorf("%w: %s", ErrNotYourCard, card.Code())
	}
	if s.Total+card.Value() > MaxCount {
		return fmt.Errorf("%w: %s on %d", ErrOverThirtyOne, card.Code(), s.Total)
	}
	return nil
}
