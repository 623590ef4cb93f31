package ledger

import "github.com/luca-patrignani/cribbage/domain/cribbage"

// Block is a single recorded game event chained to its predecessor.
type Block struct {
	Index     int            `json:"index"`
	Timestamp int64          `json:"timestamp"`
	PrevHash  string         `json:"prev_hash"`
	Hash      string         `json:"hash"`
	Event     cribbage.Event `json:"event"`
	Metadata  Metadata       `json:"metadata"`
}

type Metadata struct {
	Round int               `json:"round"`
	Extra map[string]string `json:"extra,omitempty"`
}
