// Package output renders boards and writes finished games as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/notation"
)

// Game is a played game ready for output.
type Game struct {
	ID       string
	Tags     map[string]string
	StartFEN string // empty for the standard starting position
	Moves    []engine.MoveResult
	Final    *engine.Position
}

// SevenTagRoster lists the PGN tags written first, in order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Result returns the result token after the last move.
func (g *Game) Result() string {
	if len(g.Moves) == 0 {
		return notation.Unfinished
	}
	return notation.ResultToken(g.Moves[len(g.Moves)-1])
}

// Recorder replays the moves into a notation recorder.
func (g *Game) Recorder(style config.NotationStyle) *notation.Recorder {
	rec := notation.NewRecorder(style)
	for _, m := range g.Moves {
		rec.Record(m)
	}
	return rec
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of 0
// disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break.
// Widths are counted in runes so figurine moves wrap like letters.
func (o *OutputWriter) Write(s string) {
	n := utf8.RuneCountInString(s)
	if o.needsSpace && n > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+n > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += n
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game as PGN: tags, a blank line, the wrapped move
// list with its result, and a trailing blank line.
func OutputGame(w io.Writer, game *Game, cfg *config.Config) {
	outputTags(w, game)
	fmt.Fprintln(w)

	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	rec := game.Recorder(cfg.Output.Notation)
	for _, tok := range rec.Tokens(cfg.Output.KeepMoveNumbers) {
		if !cfg.Output.KeepChecks {
			tok = strings.TrimRight(tok, "+#")
		}
		ow.Write(tok)
	}
	if cfg.Output.KeepResults {
		ow.Write(game.Result())
	}
	ow.NewLine()
	fmt.Fprintln(w)
}

// outputTags writes the seven tag roster, then SetUp/FEN for games that
// start from a custom position, then any other tags sorted by name.
func outputTags(w io.Writer, game *Game) {
	tags := completeTags(game)

	for _, name := range SevenTagRoster {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(tags[name]))
	}
	if game.StartFEN != "" {
		fmt.Fprintf(w, "[SetUp \"1\"]\n[FEN \"%s\"]\n", escapeTagValue(game.StartFEN))
	}

	var extra []string
	for name := range tags {
		if !isRosterTag(name) && name != "SetUp" && name != "FEN" {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(tags[name]))
	}
}

// completeTags copies the game tags, filling roster gaps with "?" and the
// Result tag from the final state.
func completeTags(game *Game) map[string]string {
	tags := make(map[string]string, len(game.Tags)+len(SevenTagRoster))
	for k, v := range game.Tags {
		tags[k] = v
	}
	for _, name := range SevenTagRoster {
		if tags[name] == "" {
			tags[name] = "?"
		}
	}
	tags["Result"] = game.Result()
	return tags
}

func isRosterTag(name string) bool {
	for _, r := range SevenTagRoster {
		if r == name {
			return true
		}
	}
	return false
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		if r == '\\' || r == '"' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
