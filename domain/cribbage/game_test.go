package cribbage

import (
	"errors"
	"slices"
	"testing"
)

// firstRoundDeck deals the hands used by the round tests, followed by a
// second round.
func firstRoundDeck(t *testing.T) *stackedDeck {
	t.Helper()
	return &stackedDeck{
		cards: cards(t,
			"KS", "QD", "5C", "6H", "2H", "3C", "9D", "8S", "AC", "7C", "4D", "10H",
			"2C", "2D", "3D", "3H", "5D", "5H", "6C", "6D", "7D", "7H", "8C", "8D",
		),
		starter: card(t, "4S"),
	}
}

func newTestGame(t *testing.T, src CardSource, opts ...Option) *Game {
	t.Helper()
	g, err := NewGame([2]string{"Alice", "Bob"}, src, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGameOptions(t *testing.T) {
	if _, err := NewGame([2]string{"a", "b"}, nil); err == nil {
		t.Fatal("expected an error without a card source")
	}
	if _, err := NewGame([2]string{"a", "b"}, &stackedDeck{}, WithDealer(2)); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected ErrUnknownPlayer, got %v", err)
	}
	if _, err := NewGame([2]string{"a", "b"}, &stackedDeck{}, WithWinningScore(0)); err == nil {
		t.Fatal("expected an error for a zero winning score")
	}
	g := newTestGame(t, &stackedDeck{}, WithDealer(1), WithWinningScore(61))
	s := g.Session()
	if s.Dealer != 1 || s.WinningScore != 61 || g.Phase() != PhaseDeal || g.Winner() != NoPlayer {
		t.Fatalf("unexpected initial state: %+v", s)
	}
	if s.Players[0].Name != "Alice" || s.Players[1].Id != 1 {
		t.Fatalf("unexpected players: %+v", s.Players)
	}
}

func TestStartRoundDealsAlternately(t *testing.T) {
	src := firstRoundDeck(t)
	g := newTestGame(t, src, WithDealer(0))

	events, err := g.StartRound()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Kind != EventRoundStarted || events[0].Round != 1 {
		t.Fatalf("expected round_started, got %+v", events)
	}
	if !slices.Equal(g.Hand(1), cards(t, "KS", "5C", "2H", "9D", "AC", "4D")) {
		t.Fatalf("unexpected non-dealer hand %v", g.Hand(1))
	}
	if !slices.Equal(g.Hand(0), cards(t, "QD", "6H", "3C", "8S", "7C", "10H")) {
		t.Fatalf("unexpected dealer hand %v", g.Hand(0))
	}
	if g.Phase() != PhaseDiscard || g.CurrentPlayer() != 1 || src.shuffles != 1 {
		t.Fatalf("unexpected state after deal: phase=%s turn=%d", g.Phase(), g.CurrentPlayer())
	}
	if _, err := g.StartRound(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
	if g.Hand(5) != nil {
		t.Fatal("expected no hand for an unknown player")
	}
}

func TestDiscardErrors(t *testing.T) {
	g := newTestGame(t, firstRoundDeck(t), WithDealer(0))
	if _, err := g.Discard(1, cards(t, "AC", "4D")); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase before the deal, got %v", err)
	}
	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		player int
		cards  []string
		want   error
	}{
		{"one card", 1, []string{"AC"}, ErrInvalidDiscardCount},
		{"three cards", 1, []string{"AC", "4D", "KS"}, ErrInvalidDiscardCount},
		{"same card twice", 1, []string{"AC", "AC"}, ErrInvalidDiscardCount},
		{"card of the opponent", 1, []string{"AC", "QD"}, ErrCardNotInHand},
		{"unknown player", 2, []string{"AC", "4D"}, ErrUnknownPlayer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Discard(tt.player, cards(t, tt.cards...))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(g.Hand(1)) != HandSize || len(g.Session().Crib) != 0 {
				t.Fatal("rejected discard changed the hands")
			}
		})
	}

	if _, err := g.Discard(1, cards(t, "AC", "4D")); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Discard(1, cards(t, "KS", "5C")); !errors.Is(err, ErrAlreadyDiscarded) {
		t.Fatalf("expected ErrAlreadyDiscarded, got %v", err)
	}
	if g.CurrentPlayer() != 0 {
		t.Fatalf("expected dealer to discard next, got %d", g.CurrentPlayer())
	}
}

func TestPlayBeforePeggingIsRejected(t *testing.T) {
	g := newTestGame(t, firstRoundDeck(t), WithDealer(0))
	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Play(card(t, "KS")); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

func TestFullRound(t *testing.T) {
	src := firstRoundDeck(t)
	var heard []Event
	g := newTestGame(t, src, WithDealer(0), WithListener(func(e Event) { heard = append(heard, e) }))

	var all []Event
	collect := func(events []Event, err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		all = append(all, events...)
	}

	collect(g.StartRound())
	collect(g.Discard(1, cards(t, "AC", "4D")))
	collect(g.Discard(0, cards(t, "7C", "10H")))

	s := g.Session()
	if s.Phase != PhasePegging || s.Starter != card(t, "4S") || g.CurrentPlayer() != 1 {
		t.Fatalf("expected pegging led by the non-dealer, got phase=%s turn=%d", s.Phase, g.CurrentPlayer())
	}
	if !slices.Equal(s.Crib, cards(t, "AC", "4D", "7C", "10H")) {
		t.Fatalf("unexpected crib %v", s.Crib)
	}
	if !slices.Equal(s.Players[0].Kept, cards(t, "QD", "6H", "3C", "8S")) {
		t.Fatalf("unexpected kept hand %v", s.Players[0].Kept)
	}

	for _, code := range []string{"KS", "QD", "5C", "6H"} {
		collect(g.Play(card(t, code)))
	}
	if s := g.Session(); s.Total != 0 || s.Players[0].Score != 2 || g.CurrentPlayer() != 1 {
		t.Fatalf("expected 31 for the dealer and a reset, got total=%d score=%d turn=%d", s.Total, s.Players[0].Score, g.CurrentPlayer())
	}
	if got := g.PlayableCards(); !slices.Equal(got, cards(t, "2H", "9D")) {
		t.Fatalf("unexpected playable cards %v", got)
	}

	for _, code := range []string{"2H", "3C", "9D", "8S"} {
		collect(g.Play(card(t, code)))
	}

	shows := eventsOf(all, EventShow)
	if len(shows) != 3 {
		t.Fatalf("expected 3 show steps, got %+v", shows)
	}
	for i, want := range []struct {
		player, points int
		label          string
	}{{1, 4, "hand"}, {0, 2, "hand"}, {0, 8, "crib"}} {
		if shows[i].Player != want.player || shows[i].Points != want.points || shows[i].Description[:len(want.label)] != want.label {
			t.Fatalf("show step %d: expected %+v, got %+v", i, want, shows[i])
		}
	}

	s = g.Session()
	if s.Scores() != [2]int{13, 4} {
		t.Fatalf("expected scores [13 4], got %v", s.Scores())
	}
	if s.Round != 2 || s.Dealer != 1 || s.Phase != PhaseDiscard || g.CurrentPlayer() != 0 {
		t.Fatalf("expected round 2 dealt by player 1, got round=%d dealer=%d phase=%s", s.Round, s.Dealer, s.Phase)
	}
	if len(eventsOf(all, EventRoundComplete)) != 1 || len(eventsOf(all, EventRoundStarted)) != 2 {
		t.Fatalf("expected one completed and two started rounds, got %+v", all)
	}
	if !slices.Equal(heard, all) {
		t.Fatal("listener events differ from returned events")
	}
}

func TestGameFinishesWithSeededDeck(t *testing.T) {
	totals := [2]int{}
	g := newTestGame(t, NewSeededCribbageDeck([]byte("fifteen two")), WithListener(func(e Event) {
		if e.Scoring() {
			totals[e.Player] += e.Points
		}
	}))
	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}

	for step := 0; g.Phase() != PhaseOver; step++ {
		if step > 10000 {
			t.Fatal("game did not finish")
		}
		switch g.Phase() {
		case PhaseDiscard:
			p := g.CurrentPlayer()
			if _, err := g.Discard(p, g.Hand(p)[:DiscardCount]); err != nil {
				t.Fatal(err)
			}
		case PhasePegging:
			playable := g.PlayableCards()
			if len(playable) == 0 {
				t.Fatalf("player %d is stuck with %v", g.CurrentPlayer(), g.Hand(g.CurrentPlayer()))
			}
			if _, err := g.Play(playable[0]); err != nil {
				t.Fatal(err)
			}
		default:
			t.Fatalf("unexpected phase %s between operations", g.Phase())
		}
	}

	s := g.Session()
	if s.Winner == NoPlayer || s.Players[s.Winner].Score < WinningScore {
		t.Fatalf("expected a winner with at least %d, got %+v", WinningScore, s.Scores())
	}
	if s.Scores() != totals {
		t.Fatalf("event points %v do not add up to scores %v", totals, s.Scores())
	}
	if _, err := g.Play(card(t, "AS")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if _, err := g.StartRound(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}
