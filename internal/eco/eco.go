// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
package eco

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/hashing"
	"github.com/lgbarn/cheese-go/internal/parser"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

// Tags written by AddTags, in order.
var Tags = []string{"ECO", "Opening", "Variation", "SubVariation"}

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	SubVariation   string
	RequiredHash   uint64 // Position hash for matching
	CumulativeHash uint64 // XOR of the hashes of every position on the way
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// tagValues returns the entry's values in Tags order.
func (e *ECOEntry) tagValues() []string {
	return []string{e.ECOCode, e.Opening, e.Variation, e.SubVariation}
}

// ECOClassifier classifies games by the positions they pass through.
// It is read-only once loaded and safe for concurrent use.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// LoadFromFile loads ECO lines from a move script file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	return ec.load(file, filename)
}

// LoadFromReader loads ECO lines from a reader. Each script needs an ECO
// tag; its moves are played from the initial position.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	return ec.load(r, "eco")
}

func (ec *ECOClassifier) load(r io.Reader, name string) error {
	scripts, err := parser.NewParser(r, name).ParseAllScripts()
	if err != nil {
		return fmt.Errorf("error parsing ECO file: %w", err)
	}
	for _, script := range scripts {
		ec.addECOEntry(script)
	}
	return nil
}

// addECOEntry replays one ECO line and adds its final position to the
// table. A line stops at its first unplayable move.
func (ec *ECOClassifier) addECOEntry(script *parser.Script) {
	ecoCode := script.Tag("ECO")
	if ecoCode == "" {
		return
	}

	p := engine.NewPosition()
	var cumulativeHash uint64
	halfMoves := 0
	for _, mt := range script.Moves {
		res, err := parser.Apply(p, mt.Text)
		if err != nil || !res.Completed() {
			break
		}
		halfMoves++
		cumulativeHash ^= hashing.GenerateZobristHash(p)
	}
	if halfMoves == 0 {
		return
	}

	entry := &ECOEntry{
		ECOCode:        ecoCode,
		Opening:        script.Tag("Opening"),
		Variation:      script.Tag("Variation"),
		SubVariation:   script.Tag("SubVariation"),
		RequiredHash:   hashing.GenerateZobristHash(p),
		CumulativeHash: cumulativeHash,
		HalfMoves:      halfMoves,
	}

	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			return // first line wins
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if halfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = halfMoves + ECOHalfMoveLimit
	}
}

// Classify finds the deepest ECO match among positions, the positions
// after each move of a game from the initial position. It returns nil if
// nothing matches.
func (ec *ECOClassifier) Classify(positions []*engine.Position) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64
	for i, p := range positions {
		halfMoves := i + 1
		if halfMoves > ec.maxHalfMoves {
			break
		}
		posHash := hashing.GenerateZobristHash(p)
		cumulativeHash ^= posHash

		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}
	return bestMatch
}

// findMatch looks up a position in the ECO table. An exact line wins over
// a transposition reached within ECOHalfMoveLimit plies of the line.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash != posHash {
			continue
		}
		if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
			return entry
		}
		if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
			possible = entry
		}
	}
	return possible
}

// AddTags classifies positions and calls set for every non-empty tag of
// the match. It reports whether a match was found.
func (ec *ECOClassifier) AddTags(positions []*engine.Position, set func(name, value string)) bool {
	match := ec.Classify(positions)
	if match == nil {
		return false
	}
	for i, value := range match.tagValues() {
		if value != "" {
			set(Tags[i], value)
		}
	}
	return true
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
