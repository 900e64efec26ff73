package notation

import (
	"testing"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/testutil"
)

func TestRecorder_Napoleon(t *testing.T) {
	p := testutil.MustPosition(t, "")
	rec := NewRecorder(config.SAN)

	for _, res := range testutil.Play(t, p, "e2e4", "e7e5", "d1f3", "b8c6", "f1c4", "d7d6", "f3f7") {
		rec.Record(res)
	}

	testutil.AssertEqual(t, rec.Len(), 7)
	testutil.AssertEqual(t, rec.Result(), WhiteWins)
	testutil.AssertEqual(t, rec.String(), "1. e4 e5 2. Qf3 Nc6 3. Bc4 d6 4. Qxf7# 1-0")
	testutil.AssertEqual(t, rec.Tokens(false), []string{"e4", "e5", "Qf3", "Nc6", "Bc4", "d6", "Qxf7#"})
}

func TestRecorder_BlackToMoveFirst(t *testing.T) {
	p := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	rec := NewRecorder(config.Coordinate)

	for _, res := range testutil.Play(t, p, "e8d7", "a1a7", "d7c6") {
		rec.Record(res)
	}

	testutil.AssertEqual(t, rec.String(), "1... e8d7 2. a1a7 d7c6 *")
	entries := rec.Entries()
	testutil.AssertEqual(t, entries[0].Side, chess.Black)
	testutil.AssertEqual(t, entries[2].Number, 2)
}

func TestRecorder_SkipsIncomplete(t *testing.T) {
	p := testutil.MustPosition(t, testutil.PromotionFEN)
	rec := NewRecorder(config.SAN)

	res, err := p.MoveAlgebraic("a7", "a8", chess.Empty)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Record(res), "")
	testutil.AssertEqual(t, rec.Len(), 0)
	testutil.AssertEqual(t, rec.Result(), Unfinished)

	res, err = p.MoveAlgebraic("a7", "a8", chess.Rook)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Record(res), "a8=R")
	testutil.AssertEqual(t, rec.String(), "1. a8=R *")
}

func TestRecorder_Stalemate(t *testing.T) {
	p := testutil.MustPosition(t, testutil.StalemateFEN)
	rec := NewRecorder(config.Figurine)

	rec.Record(testutil.Play(t, p, "a7f7")[0])

	testutil.AssertEqual(t, rec.String(), "1. ♕f7 1/2-1/2")
}
