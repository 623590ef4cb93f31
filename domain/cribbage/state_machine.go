package cribbage

import (
	"encoding/json"
	"fmt"
)

type ActionType string

const (
	ActionDiscard ActionType = "discard"
	ActionPlay    ActionType = "play"
)

// Action is a player's move as submitted by a client.
type Action struct {
	Round    int        `json:"round"`
	PlayerID int        `json:"player_id"`
	Type     ActionType `json:"type"`
	Cards    []Card     `json:"cards"`
}

// StateMachine validates and applies Actions against a Game.
type StateMachine struct {
	game *Game
}

func NewStateMachine(game *Game) *StateMachine {
	return &StateMachine{game: game}
}

// Validate checks whether an action is legal in the current state without
// changing anything.
func (sm *StateMachine) Validate(a Action) error {
	s := sm.game.session
	if a.Round != s.Round {
		return fmt.Errorf("wrong round: expected %d, got %d", s.Round, a.Round)
	}
	if !validPlayer(a.PlayerID) {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, a.PlayerID)
	}
	switch a.Type {
	case ActionDiscard:
		return checkDiscard(s, a.PlayerID, a.Cards)
	case ActionPlay:
		if len(a.Cards) != 1 {
			return fmt.Errorf("%w: play exactly one card, got %d", ErrIllegalPlay, len(a.Cards))
		}
		return checkPlay(s, a.PlayerID, a.Cards[0])
	default:
		return fmt.Errorf("unknown action %q", a.Type)
	}
}

// Apply validates the action and executes it, returning the resulting events.
func (sm *StateMachine) Apply(a Action) ([]Event, error) {
	if err := sm.Validate(a); err != nil {
		return nil, err
	}
	if a.Type == ActionDiscard {
		return sm.game.Discard(a.PlayerID, a.Cards)
	}
	return sm.game.Play(a.Cards[0])
}

// GetCurrentPlayer returns the index of the player who must act.
func (sm *StateMachine) GetCurrentPlayer() int {
	return sm.game.CurrentPlayer()
}

// Discard builds a discard action for player in the current round.
func (sm *StateMachine) Discard(player int, cards ...Card) Action {
	return Action{Round: sm.game.session.Round, PlayerID: player, Type: ActionDiscard, Cards: cards}
}

// Play builds a play action for the current player in the current round.
func (sm *StateMachine) Play(card Card) Action {
	return Action{Round: sm.game.session.Round, PlayerID: sm.game.CurrentPlayer(), Type: ActionPlay, Cards: []Card{card}}
}

// Snapshot serializes the current state.
func (sm *StateMachine) Snapshot() ([]byte, error) {
	return json.Marshal(sm.game.Session())
}

// ToPayload serializes the action.
func (a Action) ToPayload() ([]byte, error) {
	return json.Marshal(a)
}

// FromPayload deserializes an action.
func FromPayload(data []byte) (Action, error) {
	var a Action
	err := json.Unmarshal(data, &a)
	return a, err
}
