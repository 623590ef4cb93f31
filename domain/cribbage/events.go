package cribbage

// EventKind identifies what happened in a game.
type EventKind string

const (
	EventRoundStarted    EventKind = "round_started"
	EventPeggingStarted  EventKind = "pegging_started"
	EventPoints          EventKind = "points"
	EventGo              EventKind = "go"
	EventCountReset      EventKind = "count_reset"
	EventPeggingComplete EventKind = "pegging_complete"
	EventShow            EventKind = "show"
	EventRoundComplete   EventKind = "round_complete"
	EventGameOver        EventKind = "game_over"
)

// Event is a notification produced by a game operation. Scores holds both
// players' scores right after the event.
type Event struct {
	Kind        EventKind `json:"kind"`
	Round       int       `json:"round"`
	Player      int       `json:"player"`
	Points      int       `json:"points,omitempty"`
	Description string    `json:"description,omitempty"`
	Scores      [2]int    `json:"scores"`
}

// Scoring reports whether the event credits points to a player.
func (e Event) Scoring() bool {
	return e.Kind == EventPoints || e.Kind == EventShow
}

func (s *Session) emit(e Event) {
	e.Round = s.Round
	e.Scores = s.Scores()
	s.events = append(s.events, e)
}

// drain returns and clears the pending events.
func (s *Session) drain() []Event {
	out := s.events
	s.events = nil
	return out
}

// award credits points to player unless the game is already over. Reaching
// the winning score freezes the session.
func (s *Session) award(player, points int, description string) {
	if points <= 0 {
		return
	}
	s.credit(player, points, EventPoints, description)
}

func (s *Session) credit(player, points int, kind EventKind, description string) {
	if s.IsOver() {
		return
	}
	s.Players[player].Score += points
	s.emit(Event{Kind: kind, Player: player, Points: points, Description: description})
	if s.Players[player].Score >= s.WinningScore {
		s.Phase = PhaseOver
		s.Winner = player
		s.emit(Event{Kind: EventGameOver, Player: player})
	}
}
