package cribbage

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDiscardCount = errors.New("exactly two cards must be discarded")
	ErrAlreadyDiscarded    = errors.New("player already discarded this round")
	ErrCardNotInHand       = errors.New("card not in hand")
	ErrIllegalPlay         = errors.New("illegal play")
	ErrOverThirtyOne       = fmt.Errorf("%w: count would exceed 31", ErrIllegalPlay)
	ErrNotYourCard         = fmt.Errorf("%w: card does not belong to the current player", ErrIllegalPlay)
	ErrWrongPhase          = errors.New("action not allowed in this phase")
	ErrUnknownPlayer       = errors.New("unknown player")
	ErrGameOver            = errors.New("game is over")
)
