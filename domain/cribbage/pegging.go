package cribbage

import "slices"

// beginPegging opens the pegging phase with the non-dealer to lead.
func (s *Session) beginPegging() {
	s.Phase = PhasePegging
	s.Pile = nil
	s.Total = 0
	s.Passes = 0
	s.LastPlayer = NoPlayer
	s.CurrentTurn = s.NonDealer()
	s.emit(Event{Kind: EventPeggingStarted, Player: s.CurrentTurn})
	s.autoPass()
}

// play lays card from the current player's hand on the pile and scores it.
// An illegal play changes nothing except for the forced GOs of a current
// player who holds no playable card.
func (s *Session) play(card Card) error {
	p := s.CurrentTurn
	if err := checkPlay(s, p, card); err != nil {
		if s.Phase == PhasePegging {
			s.autoPass()
		}
		return err
	}

	hand := s.Players[p].Hand
	s.Players[p].Hand = slices.Delete(hand, indexOf(hand, card), indexOf(hand, card)+1)
	s.Pile = append(s.Pile, card)
	s.Total += card.Value()
	s.LastPlayer = p
	s.Passes = 0

	for _, scorer := range peggingScorers {
		if r := scorer.Check(s.Pile); r.Points > 0 {
			s.award(p, r.Points, r.Description)
			if s.IsOver() {
				return nil
			}
		}
	}

	if s.Total == MaxCount {
		s.award(p, 2, "31")
		if s.IsOver() {
			return nil
		}
		s.resetCount()
	}
	s.CurrentTurn = other(p)
	s.autoPass()
	s.checkPeggingComplete()
	return nil
}

// autoPass records a GO for every current player that cannot play. When both
// players have passed in a row the last player to lay a card pegs one and
// leads the next count.
func (s *Session) autoPass() {
	for step := 0; step < maxPassSteps; step++ {
		if s.IsOver() || s.Phase != PhasePegging || s.handsEmpty() {
			return
		}
		if s.canPlay(s.CurrentTurn) {
			return
		}
		s.Passes++
		s.emit(Event{Kind: EventGo, Player: s.CurrentTurn, Description: "GO"})
		s.CurrentTurn = other(s.CurrentTurn)

		if s.Passes < 2 {
			continue
		}
		leader := s.CurrentTurn
		if s.LastPlayer != NoPlayer {
			leader = s.LastPlayer
			if s.Total > 0 {
				s.award(s.LastPlayer, 1, "last card (GO)")
				if s.IsOver() {
					return
				}
			}
		}
		s.resetCount()
		s.CurrentTurn = leader
	}
}

// resetCount starts a new count after 31 or a double GO.
func (s *Session) resetCount() {
	s.Pile = nil
	s.Total = 0
	s.Passes = 0
	s.LastPlayer = NoPlayer
	s.emit(Event{Kind: EventCountReset, Player: NoPlayer})
}

// checkPeggingComplete ends pegging once both hands are empty and runs the
// show. It acts at most once per round.
func (s *Session) checkPeggingComplete() {
	if s.IsOver() || s.Phase != PhasePegging || s.showScored || !s.handsEmpty() {
		return
	}
	s.showScored = true
	if s.Total > 0 && s.LastPlayer != NoPlayer {
		s.award(s.LastPlayer, 1, "last card")
		if s.IsOver() {
			return
		}
	}
	s.Pile = nil
	s.Total = 0
	s.Passes = 0
	s.LastPlayer = NoPlayer
	s.emit(Event{Kind: EventPeggingComplete, Player: NoPlayer})
	s.scoreShow()
}
