package notation

import (
	"strconv"
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
)

// Entry is one recorded move.
type Entry struct {
	Number int // full-move number
	Side   chess.Side
	Text   string
	Result engine.MoveResult
}

// Recorder accumulates completed moves into a numbered move list.
type Recorder struct {
	style   config.NotationStyle
	number  int
	entries []Entry
}

// NewRecorder creates a recorder whose first move is numbered 1.
func NewRecorder(style config.NotationStyle) *Recorder {
	return &Recorder{style: style, number: 1}
}

// Record appends a move and returns its text. Incomplete moves are not
// recorded and return "".
func (r *Recorder) Record(res engine.MoveResult) string {
	if !res.Completed() {
		return ""
	}
	text := Encode(res, r.style)
	r.entries = append(r.entries, Entry{Number: r.number, Side: res.Player, Text: text, Result: res})
	if res.Player == chess.Black {
		r.number++
	}
	return text
}

// Entries returns the recorded moves.
func (r *Recorder) Entries() []Entry {
	return r.entries
}

// Len returns the number of recorded plies.
func (r *Recorder) Len() int {
	return len(r.entries)
}

// Result returns the result token after the last recorded move.
func (r *Recorder) Result() string {
	if len(r.entries) == 0 {
		return Unfinished
	}
	return ResultToken(r.entries[len(r.entries)-1].Result)
}

// Tokens returns the move list as separate tokens: move numbers ("1.",
// or "1..." when a list opens with Black) followed by the moves.
func (r *Recorder) Tokens(withNumbers bool) []string {
	tokens := make([]string, 0, len(r.entries)*3/2+1)
	for i, e := range r.entries {
		if withNumbers {
			switch {
			case e.Side == chess.White:
				tokens = append(tokens, strconv.Itoa(e.Number)+".")
			case i == 0:
				tokens = append(tokens, strconv.Itoa(e.Number)+"...")
			}
		}
		tokens = append(tokens, e.Text)
	}
	return tokens
}

// String returns the numbered move list followed by the result token.
func (r *Recorder) String() string {
	return strings.Join(append(r.Tokens(true), r.Result()), " ")
}
