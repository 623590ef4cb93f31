package cribbage

import "fmt"

// ShowScore is the breakdown of a hand or crib counted with the starter.
type ShowScore struct {
	Fifteens int
	Runs     int
	Pairs    int
	Total    int
}

// ScoreShow counts fifteens, runs and pairs over hand plus the starter.
func ScoreShow(hand []Card, starter Card) ShowScore {
	cards := make([]Card, 0, len(hand)+1)
	cards = append(cards, hand...)
	cards = append(cards, starter)

	sc := ShowScore{
		Fifteens: CountCombinations{N: 15}.Check(cards).Points,
		Runs:     HandRuns{}.Check(cards).Points,
		Pairs:    RankTally{}.Check(cards).Points,
	}
	sc.Total = sc.Fifteens + sc.Runs + sc.Pairs
	return sc
}

func (sc ShowScore) String() string {
	return fmt.Sprintf("15s=%d, runs=%d, pairs=%d", sc.Fifteens, sc.Runs, sc.Pairs)
}

// scoreShow counts the non-dealer's hand, the dealer's hand and the crib, in
// that order, stopping as soon as someone wins.
func (s *Session) scoreShow() {
	s.Phase = PhaseShow
	nonDealer := s.NonDealer()
	steps := []struct {
		player int
		cards  []Card
		label  string
	}{
		{nonDealer, s.Players[nonDealer].Kept, "hand"},
		{s.Dealer, s.Players[s.Dealer].Kept, "hand"},
		{s.Dealer, s.Crib, "crib"},
	}
	for _, step := range steps {
		sc := ScoreShow(step.cards, s.Starter)
		s.credit(step.player, sc.Total, EventShow, fmt.Sprintf("%s (%s)", step.label, sc))
		if s.IsOver() {
			return
		}
	}
	s.emit(Event{Kind: EventRoundComplete, Player: s.Dealer})
	s.Dealer = other(s.Dealer)
	s.Phase = PhaseDeal
}
