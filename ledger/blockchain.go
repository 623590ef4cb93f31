package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/luca-patrignani/cribbage/domain/cribbage"
)

// Blockchain is an append-only, hash-chained log of game events.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewBlockchain creates a new blockchain holding only the genesis block.
// The genesis block has index 0 and previous hash "0".
func NewBlockchain() *Blockchain {
	bc := &Blockchain{
		blocks: make([]Block, 0),
	}

	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Event:     cribbage.Event{Kind: "genesis", Player: cribbage.NoPlayer},
	}
	genesis.Hash = bc.calculateHash(genesis)
	bc.blocks = append(bc.blocks, genesis)

	return bc
}

// Append records an event as a new block linked to the latest one. The extra
// parameter can optionally carry additional metadata.
func (bc *Blockchain) Append(event cribbage.Event, extra ...map[string]string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = maps.Clone(extra[0])
	}
	latest := bc.blocks[len(bc.blocks)-1]

	newBlock := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Event:     event,
		Metadata: Metadata{
			Round: event.Round,
			Extra: extraMsg,
		},
	}
	newBlock.Hash = bc.calculateHash(newBlock)

	if err := bc.validateBlock(newBlock, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	bc.blocks = append(bc.blocks, newBlock)
	return nil
}

// Record appends every event in order, stopping at the first failure.
func (bc *Blockchain) Record(events []cribbage.Event) error {
	for _, e := range events {
		if err := bc.Append(e); err != nil {
			return err
		}
	}
	return nil
}

// GetLatest returns the most recently added block.
func (bc *Blockchain) GetLatest() (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return Block{}, fmt.Errorf("blockchain is empty")
	}

	return bc.blocks[len(bc.blocks)-1], nil
}

// GetByIndex retrieves a copy of the block at index.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("index out of range: %d", index)
	}

	return bc.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.blocks)
}

// Blocks returns a copy of the chain.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return slices.Clone(bc.blocks)
}

// Totals replays the recorded scoring events and returns both players' points.
func (bc *Blockchain) Totals() [2]int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	var totals [2]int
	for _, b := range bc.blocks[1:] {
		if b.Event.Scoring() && (b.Event.Player == 0 || b.Event.Player == 1) {
			totals[b.Event.Player] += b.Event.Points
		}
	}
	return totals
}

// Verify validates the integrity of the entire chain: the genesis block, then
// each block's index continuity, previous hash linkage and own hash.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if len(bc.blocks) == 0 {
		return fmt.Errorf("empty blockchain")
	}

	if bc.blocks[0].PrevHash != "0" || bc.blocks[0].Hash != bc.calculateHash(bc.blocks[0]) {
		return fmt.Errorf("invalid genesis block")
	}

	for i := 1; i < len(bc.blocks); i++ {
		if err := bc.validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateBlock verifies that a block follows previous.
func (bc *Blockchain) validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := bc.calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.Metadata.Round != current.Event.Round {
		return fmt.Errorf("round mismatch: metadata %d, event %d", current.Metadata.Round, current.Event.Round)
	}

	return nil
}

// calculateHash computes the SHA256 hash of a block from its index, timestamp,
// previous hash, JSON encoded event and metadata.
func (bc *Blockchain) calculateHash(block Block) string {
	eventBytes, _ := json.Marshal(block.Event)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(eventBytes),
		string(metaBytes),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
