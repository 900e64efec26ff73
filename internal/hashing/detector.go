package hashing

import (
	"github.com/lgbarn/cheese-go/internal/engine"
)

// GameSignature identifies a replayed game by where it ended.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position.
	Hash uint64
	// WeakHash is the material signature of the final position.
	WeakHash uint64
	// Plies is the number of moves played.
	Plies int
}

// Sign builds the signature of a game that ended in final after plies moves.
func Sign(final *engine.Position, plies int) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(final),
		WeakHash: WeakHash(final),
		Plies:    plies,
	}
}

// DuplicateDetector tracks seen signatures for duplicate game detection.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// exactMatch also requires equal move counts.
	exactMatch     bool
	maxCapacity    int
	size           int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means unlimited.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]GameSignature),
		exactMatch:  exactMatch,
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether a game with this signature was seen before
// and records it otherwise. Once the detector is full new signatures are
// still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.exactMatch || a.Plies == b.Plies
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored signatures.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the table and the duplicate count.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
