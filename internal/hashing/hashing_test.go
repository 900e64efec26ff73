package hashing

import (
	"testing"

	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/testutil"
)

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(engine.NewPosition())
	hash2 := GenerateZobristHash(testutil.MustPosition(t, engine.InitialFEN))

	if hash1 != hash2 {
		t.Errorf("identical positions produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHash(t *testing.T) {
	initial := GenerateZobristHash(engine.NewPosition())

	tests := []struct {
		name  string
		moves []string
		same  bool
	}{
		{"knights out and back", []string{"g1f3", "g8f6", "f3g1", "f6g8"}, true},
		{"one move", []string{"e2e4"}, false},
		{"knight left out", []string{"g1f3", "g8f6", "f3g1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := engine.NewPosition()
			testutil.Play(t, p, tt.moves...)
			if got := GenerateZobristHash(p) == initial; got != tt.same {
				t.Errorf("hash equal to initial = %v, want %v", got, tt.same)
			}
		})
	}
}

func TestZobristHash_Transposition(t *testing.T) {
	a := engine.NewPosition()
	testutil.Play(t, a, "e2e4", "e7e5", "g1f3")
	b := engine.NewPosition()
	testutil.Play(t, b, "g1f3", "e7e5", "e2e4")

	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("transposed move orders produced different hashes")
	}
}

func TestZobristHash_CastlingRights(t *testing.T) {
	// Same placement; only the king's moved flag differs.
	withRights := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	without := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")

	if GenerateZobristHash(withRights) == GenerateZobristHash(without) {
		t.Error("castling rights did not change the hash")
	}
}

func TestWeakHash(t *testing.T) {
	initial := WeakHash(engine.NewPosition())

	quiet := engine.NewPosition()
	testutil.Play(t, quiet, "e2e4", "e7e5")
	if WeakHash(quiet) != initial {
		t.Error("non-capturing moves changed the material signature")
	}

	capture := engine.NewPosition()
	testutil.Play(t, capture, "e2e4", "d7d5", "e4d5")
	if WeakHash(capture) == initial {
		t.Error("a capture left the material signature unchanged")
	}

	if WeakHash(nil) != 0 || GenerateZobristHash(nil) != 0 {
		t.Error("nil position should hash to zero")
	}
}

func TestDuplicateDetector(t *testing.T) {
	final := engine.NewPosition()
	testutil.Play(t, final, "e2e4", "e7e5")

	detector := NewDuplicateDetector(false, 0)

	if detector.CheckAndAdd(Sign(final, 2)) {
		t.Error("first game reported as duplicate")
	}
	if !detector.CheckAndAdd(Sign(final, 2)) {
		t.Error("second game not reported as duplicate")
	}
	if !detector.CheckAndAdd(Sign(final, 6)) {
		t.Error("same final position with more moves should match without exact matching")
	}
	if detector.CheckAndAdd(Sign(engine.NewPosition(), 0)) {
		t.Error("different position reported as duplicate")
	}

	if detector.DuplicateCount() != 2 {
		t.Errorf("DuplicateCount() = %d, want 2", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", detector.UniqueCount())
	}

	detector.Reset()
	if detector.DuplicateCount() != 0 || detector.UniqueCount() != 0 {
		t.Error("Reset() left entries behind")
	}
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	final := engine.NewPosition()
	testutil.Play(t, final, "g1f3", "g8f6", "f3g1", "f6g8")

	detector := NewDuplicateDetector(true, 0)
	detector.CheckAndAdd(Sign(engine.NewPosition(), 0))

	if detector.CheckAndAdd(Sign(final, 4)) {
		t.Error("different move counts matched with exact matching")
	}
	if !detector.CheckAndAdd(Sign(final, 4)) {
		t.Error("equal move counts did not match")
	}
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)
	first := engine.NewPosition()
	second := engine.NewPosition()
	testutil.Play(t, second, "e2e4")

	detector.CheckAndAdd(Sign(first, 0))
	if !detector.IsFull() {
		t.Fatal("IsFull() = false after reaching capacity")
	}
	if detector.CheckAndAdd(Sign(second, 1)) {
		t.Error("unseen game reported as duplicate")
	}
	if detector.CheckAndAdd(Sign(second, 1)) {
		t.Error("signature stored past capacity")
	}
	if !detector.CheckAndAdd(Sign(first, 0)) {
		t.Error("stored signature no longer detected")
	}
}
