package cribbage

import (
	"fmt"
	"io"
	"log/slog"
)

// Game drives a Session through deals, discards and plays. All operations are
// processed to completion, including every forced GO, reset and show step they
// trigger, before returning.
type Game struct {
	session  *Session
	src      CardSource
	log      *slog.Logger
	listener func(Event)
}

// Option configures a Game.
type Option func(*Game)

// WithDealer sets who deals the first round (0 or 1).
func WithDealer(dealer int) Option {
	return func(g *Game) {
		g.session.Dealer = dealer
	}
}

// WithWinningScore sets the score that ends the game.
func WithWinningScore(score int) Option {
	return func(g *Game) {
		g.session.WinningScore = score
	}
}

// WithLogger sets the logger used for game progress.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithListener registers a function called with every event, in order.
func WithListener(fn func(Event)) Option {
	return func(g *Game) {
		g.listener = fn
	}
}

// NewGame creates a two-player game. The first round is dealt by StartRound.
func NewGame(names [2]string, src CardSource, opts ...Option) (*Game, error) {
	if src == nil {
		return nil, fmt.Errorf("a card source is required")
	}
	g := &Game{
		session: &Session{
			Phase:        PhaseDeal,
			WinningScore: WinningScore,
			LastPlayer:   NoPlayer,
			Winner:       NoPlayer,
		},
		src: src,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for i, name := range names {
		g.session.Players[i] = Player{Name: name, Id: i}
	}
	for _, opt := range opts {
		opt(g)
	}
	if !validPlayer(g.session.Dealer) {
		return nil, fmt.Errorf("%w: dealer %d", ErrUnknownPlayer, g.session.Dealer)
	}
	if g.session.WinningScore <= 0 {
		return nil, fmt.Errorf("winning score must be positive, got %d", g.session.WinningScore)
	}
	return g, nil
}

// StartRound shuffles and deals six cards to each player, non-dealer first.
func (g *Game) StartRound() ([]Event, error) {
	s := g.session
	if s.IsOver() {
		return nil, ErrGameOver
	}
	if s.Phase != PhaseDeal {
		return nil, fmt.Errorf("%w: cannot deal during %s", ErrWrongPhase, s.Phase)
	}
	err := g.deal()
	return g.flush(), err
}

// Discard lays two cards from player's hand away to the dealer's crib. Once
// both players have discarded the starter is cut and pegging begins.
func (g *Game) Discard(player int, cards []Card) ([]Event, error) {
	s := g.session
	if err := checkDiscard(s, player, cards); err != nil {
		return nil, err
	}
	for _, c := range cards {
		i := indexOf(s.Players[player].Hand, c)
		s.Players[player].Hand = append(s.Players[player].Hand[:i:i], s.Players[player].Hand[i+1:]...)
		s.Crib = append(s.Crib, c)
	}
	s.Players[player].Discarded = true
	g.log.Debug("discarded", "player", s.Players[player].Name, "cards", codes(cards))

	if !s.Players[0].Discarded || !s.Players[1].Discarded {
		s.CurrentTurn = other(player)
		return g.flush(), nil
	}

	for i := range s.Players {
		s.Players[i].Kept = append([]Card(nil), s.Players[i].Hand...)
	}
	starter, err := g.src.Cut()
	if err != nil {
		return g.flush(), fmt.Errorf("cut starter: %w", err)
	}
	s.Starter = starter
	g.log.Info("starter turned", "card", starter.Code())
	s.beginPegging()
	return g.flush(), nil
}

// Play lays card from the current player's hand. When the play ends the round
// without a winner the next round is dealt immediately.
func (g *Game) Play(card Card) ([]Event, error) {
	s := g.session
	player := s.CurrentTurn
	if err := s.play(card); err != nil {
		g.log.Debug("play rejected", "player", player, "card", card.Code(), "error", err)
		return g.flush(), err
	}
	g.log.Debug("played", "player", s.Players[player].Name, "card", card.Code(), "count", s.Total)
	if s.Phase == PhaseDeal {
		if err := g.deal(); err != nil {
			return g.flush(), err
		}
	}
	return g.flush(), nil
}

// Session returns a copy of the current state.
func (g *Game) Session() Session {
	return g.session.Clone()
}

// Phase returns the phase of the current round.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// CurrentPlayer returns the index of the player who must act.
func (g *Game) CurrentPlayer() int {
	return g.session.CurrentTurn
}

// Winner returns the index of the winning player, or NoPlayer.
func (g *Game) Winner() int {
	return g.session.Winner
}

// Hand returns a copy of player's current hand.
func (g *Game) Hand(player int) []Card {
	if !validPlayer(player) {
		return nil
	}
	return append([]Card(nil), g.session.Players[player].Hand...)
}

// PlayableCards returns the current player's cards that fit under 31.
func (g *Game) PlayableCards() []Card {
	s := g.session
	var out []Card
	for _, c := range s.Players[s.CurrentTurn].Hand {
		if s.Total+c.Value() <= MaxCount {
			out = append(out, c)
		}
	}
	return out
}

func (g *Game) deal() error {
	s := g.session
	if err := g.src.Shuffle(); err != nil {
		return fmt.Errorf("shuffle: %w", err)
	}
	s.Round++
	for i := range s.Players {
		s.Players[i].Hand = make([]Card, 0, HandSize)
		s.Players[i].Kept = nil
		s.Players[i].Discarded = false
	}
	s.Crib = nil
	s.Starter = Card{}
	s.Pile = nil
	s.Total = 0
	s.Passes = 0
	s.LastPlayer = NoPlayer
	s.showScored = false

	first := s.NonDealer()
	for range HandSize {
		for _, p := range [2]int{first, s.Dealer} {
			c, err := g.src.Draw()
			if err != nil {
				return fmt.Errorf("deal: %w", err)
			}
			s.Players[p].Hand = append(s.Players[p].Hand, c)
		}
	}
	s.Phase = PhaseDiscard
	s.CurrentTurn = first
	s.emit(Event{Kind: EventRoundStarted, Player: s.Dealer})
	g.log.Info("round dealt", "round", s.Round, "dealer", s.Players[s.Dealer].Name)
	return nil
}

// flush hands pending events to the listener and returns them.
func (g *Game) flush() []Event {
	events := g.session.drain()
	for _, e := range events {
		switch e.Kind {
		case EventRoundComplete, EventGameOver:
			g.log.Info(string(e.Kind), "round", e.Round, "scores", e.Scores)
		case EventPoints, EventShow:
			g.log.Debug("points", "player", e.Player, "points", e.Points, "reason", e.Description)
		}
		if g.listener != nil {
			g.listener(e)
		}
	}
	return events
}
