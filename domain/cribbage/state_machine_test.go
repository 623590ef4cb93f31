package cribbage

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestStateMachineValidate(t *testing.T) {
	g := newTestGame(t, firstRoundDeck(t), WithDealer(0))
	sm := NewStateMachine(g)
	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		action  Action
		wantErr error
		anyErr  bool
	}{
		{"valid discard", sm.Discard(1, cards(t, "AC", "4D")...), nil, false},
		{"wrong round", Action{Round: 7, PlayerID: 1, Type: ActionDiscard, Cards: cards(t, "AC", "4D")}, nil, true},
		{"unknown player", sm.Discard(3, cards(t, "AC", "4D")...), ErrUnknownPlayer, true},
		{"single card", sm.Discard(1, card(t, "AC")), ErrInvalidDiscardCount, true},
		{"play during discard", sm.Play(card(t, "KS")), ErrWrongPhase, true},
		{"unknown type", Action{Round: 1, PlayerID: 0, Type: "cut"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sm.Validate(tt.action)
			if !tt.anyErr {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
	if len(g.Hand(1)) != HandSize {
		t.Fatal("Validate changed the game")
	}
}

func TestStateMachineApply(t *testing.T) {
	g := newTestGame(t, firstRoundDeck(t), WithDealer(0))
	sm := NewStateMachine(g)
	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}

	if _, err := sm.Apply(sm.Discard(1, cards(t, "AC", "4D")...)); err != nil {
		t.Fatal(err)
	}
	events, err := sm.Apply(sm.Discard(0, cards(t, "7C", "10H")...))
	if err != nil {
		t.Fatal(err)
	}
	if len(eventsOf(events, EventPeggingStarted)) != 1 || sm.GetCurrentPlayer() != 1 {
		t.Fatalf("expected pegging led by player 1, got %+v", events)
	}

	if _, err := sm.Apply(Action{Round: 1, PlayerID: 1, Type: ActionPlay}); !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("expected ErrIllegalPlay for an empty play, got %v", err)
	}
	if _, err := sm.Apply(Action{Round: 1, PlayerID: 0, Type: ActionPlay, Cards: cards(t, "QD")}); !errors.Is(err, ErrNotYourCard) {
		t.Fatalf("expected ErrNotYourCard out of turn, got %v", err)
	}
	if _, err := sm.Apply(sm.Play(card(t, "KS"))); err != nil {
		t.Fatal(err)
	}
	if sm.GetCurrentPlayer() != 0 || g.Session().Total != 10 {
		t.Fatalf("expected player 0 to act on 10, got %d on %d", sm.GetCurrentPlayer(), g.Session().Total)
	}
}

func TestActionPayload(t *testing.T) {
	a := Action{Round: 3, PlayerID: 1, Type: ActionDiscard, Cards: cards(t, "10H", "JS")}
	data, err := a.ToPayload()
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["type"] != "discard" || raw["player_id"] != float64(1) {
		t.Fatalf("unexpected payload %s", data)
	}
	if cs, ok := raw["cards"].([]any); !ok || len(cs) != 2 || cs[0] != "10H" || cs[1] != "JS" {
		t.Fatalf("expected card codes in payload, got %s", data)
	}

	got, err := FromPayload(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Round != a.Round || got.PlayerID != a.PlayerID || got.Type != a.Type || !slices.Equal(got.Cards, a.Cards) {
		t.Fatalf("expected %+v, got %+v", a, got)
	}

	if _, err := FromPayload([]byte(`{"type":"play","cards":["1Z"]}`)); err == nil {
		t.Fatal("expected an error for an invalid card code")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, firstRoundDeck(t), WithDealer(0))
	sm := NewStateMachine(g)
	if _, err := g.StartRound(); err != nil {
		t.Fatal(err)
	}
	data, err := sm.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	var snap struct {
		Phase   Phase
		Round   int
		Starter Card
		Players [2]Player
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatal(err)
	}
	if snap.Phase != PhaseDiscard || snap.Round != 1 || !snap.Starter.IsFaceDown() {
		t.Fatalf("unexpected snapshot %s", data)
	}
	if !slices.Equal(snap.Players[1].Hand, g.Hand(1)) {
		t.Fatalf("expected hand %v in snapshot, got %v", g.Hand(1), snap.Players[1].Hand)
	}
}
