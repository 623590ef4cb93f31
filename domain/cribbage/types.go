package cribbage

// Phase is the stage of the current round.
type Phase string

const (
	PhaseDeal    Phase = "deal" // waiting for the next deal
	PhaseDiscard Phase = "discard"
	PhasePegging Phase = "pegging"
	PhaseShow    Phase = "show"
	PhaseOver    Phase = "over"
)

const (
	// NoPlayer marks the absence of a player, e.g. no card played yet in the count.
	NoPlayer = -1
	// WinningScore is the default target score of a game.
	WinningScore = 121
	// MaxCount is the highest running total allowed during pegging.
	MaxCount = 31
	// HandSize is the number of cards dealt to each player.
	HandSize = 6
	// DiscardCount is the number of cards each player lays away to the crib.
	DiscardCount = 2
)

// maxPassSteps bounds a single auto-pass sweep.
const maxPassSteps = 4

type Player struct {
	Name      string
	Id        int
	Hand      []Card // cards still held; shrinks during pegging
	Kept      []Card // the 4 cards counted in the show
	Score     int
	Discarded bool // has laid away to the crib this round
}

// Session is the representation of a game: every mutable piece of state is
// owned here and changed only through Game operations.
type Session struct {
	Players      [2]Player
	Crib         []Card
	Starter      Card // face down until both players discarded
	Pile         []Card
	Total        int
	Dealer       int
	CurrentTurn  int // index into Players for who must act
	Passes       int // consecutive GOs in the current count
	LastPlayer   int // last player to lay a card in the current count
	Phase        Phase
	Round        int
	WinningScore int
	Winner       int

	showScored bool
	events     []Event
}

func other(p int) int {
	return 1 - p
}

// Scores returns both players' scores.
func (s *Session) Scores() [2]int {
	return [2]int{s.Players[0].Score, s.Players[1].Score}
}

// NonDealer returns the index of the player who is not dealing this round.
func (s *Session) NonDealer() int {
	return other(s.Dealer)
}

// IsOver reports whether a player has reached the winning score.
func (s *Session) IsOver() bool {
	return s.Phase == PhaseOver
}

// Clone returns a deep copy of the session without pending events.
func (s *Session) Clone() Session {
	c := *s
	for i := range c.Players {
		c.Players[i].Hand = append([]Card(nil), s.Players[i].Hand...)
		c.Players[i].Kept = append([]Card(nil), s.Players[i].Kept...)
	}
	c.Crib = append([]Card(nil), s.Crib...)
	c.Pile = append([]Card(nil), s.Pile...)
	c.events = nil
	return c
}

func (s *Session) handsEmpty() bool {
	return len(s.Players[0].Hand) == 0 && len(s.Players[1].Hand) == 0
}

// canPlay reports whether player holds a card that fits under the count limit.
func (s *Session) canPlay(player int) bool {
	for _, c := range s.Players[player].Hand {
		if s.Total+c.Value() <= MaxCount {
			return true
		}
	}
	return false
}

func validPlayer(p int) bool {
	return p == 0 || p == 1
}
