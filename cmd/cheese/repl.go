package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/errors"
	"github.com/lgbarn/cheese-go/internal/notation"
	"github.com/lgbarn/cheese-go/internal/output"
	"github.com/lgbarn/cheese-go/internal/session"
)

// commandHelp lists the interactive commands for usage and "help".
var commandHelp = [][2]string{
	{"<move>", "play a move: e2e4, e2-e4, a7a8=Q, Nf3, O-O"},
	{"move <from> <to> [piece]", "play a move by squares"},
	{"inspect <square>", "show the legal moves of a piece"},
	{"board", "draw the board"},
	{"moves", "show the move list"},
	{"fen", "show the position as FEN"},
	{"snapshot", "show the position as snapshot JSON"},
	{"save <file>", "write the snapshot to a file"},
	{"load <file>", "start a new game from a snapshot file"},
	{"new [fen]", "start a new game"},
	{"undo", "take back the last move"},
	{"pgn", "show the game as PGN"},
	{"help", "show this list"},
	{"quit", "leave"},
}

// REPL reads commands and applies them to one session game at a time.
type REPL struct {
	cfg     *config.Config
	manager *session.Manager
	game    *session.Game
	out     io.Writer
}

// NewREPL creates a REPL writing to cfg.OutputFile.
func NewREPL(cfg *config.Config, manager *session.Manager, game *session.Game) *REPL {
	return &REPL{
		cfg:     cfg,
		manager: manager,
		game:    game,
		out:     cfg.OutputFile,
	}
}

// Game returns the current game.
func (r *REPL) Game() *session.Game {
	return r.game
}

// Run executes commands line by line until "quit" or end of input.
// Command errors are reported and do not stop the loop.
func (r *REPL) Run(in io.Reader) error {
	if r.cfg.Output.ShowBoard {
		r.printBoard(nil)
	}
	r.prompt()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := r.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		r.prompt()
	}
	return scanner.Err()
}

func (r *REPL) prompt() {
	if r.cfg.Verbosity >= config.Summary {
		fmt.Fprintf(r.out, "%s> ", r.game.Turn())
	}
}

// Execute runs one command line. It reports whether the loop should end.
func (r *REPL) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		for _, c := range commandHelp {
			fmt.Fprintf(r.out, "  %-26s %s\n", c[0], c[1])
		}
	case "move":
		return false, r.moveBySquares(args)
	case "inspect":
		return false, r.inspect(args)
	case "board":
		r.printBoard(nil)
	case "moves":
		fmt.Fprintln(r.out, r.game.Export().Recorder(r.cfg.Output.Notation).String())
	case "fen":
		fmt.Fprintln(r.out, r.game.FEN())
	case "snapshot":
		return false, output.WriteSnapshot(r.out, r.game.Position(), true)
	case "save":
		if len(args) != 1 {
			return false, usageError("save <file>")
		}
		if err := saveSnapshotFile(args[0], r.game); err != nil {
			return false, err
		}
		r.cfg.Logf(config.Commentary, "snapshot written to %s", args[0])
	case "load":
		if len(args) != 1 {
			return false, usageError("load <file>")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return false, err
		}
		return false, r.replaceGame(session.WithSnapshot(data))
	case "new":
		if len(args) == 0 {
			return false, r.replaceGame()
		}
		return false, r.replaceGame(session.WithFEN(strings.Join(args, " ")))
	case "undo":
		if !r.game.Undo() {
			fmt.Fprintln(r.out, "nothing to undo")
			return false, nil
		}
		r.printBoard(nil)
	case "pgn":
		output.OutputGame(r.out, r.game.Export(), r.cfg)
	default:
		res, err := r.game.MoveText(fields[0])
		if err != nil {
			return false, err
		}
		r.report(res)
	}
	return false, nil
}

func usageError(syntax string) error {
	return errors.Wrapf(errors.ErrParseFailure, "usage: %s", syntax)
}

// replaceGame swaps in a new game and drops the old one.
func (r *REPL) replaceGame(opts ...session.GameOption) error {
	g, err := r.manager.Create(opts...)
	if err != nil {
		return err
	}
	r.manager.Remove(r.game.ID) //nolint:errcheck // the old game is registered
	r.game = g
	r.cfg.Logf(config.Commentary, "new game %s", g.ID)
	r.printBoard(nil)
	return nil
}

func (r *REPL) moveBySquares(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError("move <from> <to> [piece]")
	}
	src, err := chess.ParseCoord(args[0])
	if err != nil {
		return err
	}
	dst, err := chess.ParseCoord(args[1])
	if err != nil {
		return err
	}
	promotion := chess.Empty
	if len(args) == 3 {
		kind, ok := chess.ParseKind(args[2])
		if !ok {
			return errors.Wrapf(errors.ErrInvalidPromotionChoice, "%q", args[2])
		}
		promotion = kind
	}

	res, err := r.game.Move(src, dst, promotion)
	if err != nil {
		return err
	}
	r.report(res)
	return nil
}

func (r *REPL) inspect(args []string) error {
	if len(args) != 1 {
		return usageError("inspect <square>")
	}
	c, err := chess.ParseCoord(args[0])
	if err != nil {
		return err
	}
	in, err := r.game.Inspect(c)
	if err != nil {
		return err
	}

	squares := make([]string, len(in.Moves))
	for i, m := range in.Moves {
		squares[i] = m.String()
	}
	fmt.Fprintf(r.out, "%s %s on %s: %s\n", in.Player, strings.ToLower(in.Piece.String()), in.Coord, strings.Join(squares, " "))
	if in.Pinned && in.Pinner != nil {
		fmt.Fprintf(r.out, "pinned by %s\n", in.Pinner)
	}
	r.printBoard(in.Moves)
	return nil
}

// report prints the outcome of a move request.
func (r *REPL) report(res engine.MoveResult) {
	if !res.Completed() {
		fmt.Fprintf(r.out, "promotion required: repeat the move with q, r, b or n\n")
		return
	}

	fmt.Fprintf(r.out, "%s\n", notation.Encode(res, r.cfg.Output.Notation))
	if r.cfg.Output.ShowBoard {
		r.printBoard(nil)
	}
	switch res.State {
	case engine.Check:
		fmt.Fprintf(r.out, "%s is in check\n", r.game.Turn())
	case engine.Checkmate, engine.Stalemate, engine.Draw:
		fmt.Fprintf(r.out, "%s %s\n", res.State, notation.ResultToken(res))
	}
	r.cfg.Logf(config.Commentary, "%s %s %s-%s", res.Player, res.Piece, res.Source, res.Target)
}

func (r *REPL) printBoard(marks []chess.Coord) {
	if r.cfg.Output.JSONFormat {
		output.WriteSnapshot(r.out, r.game.Position(), false) //nolint:errcheck // interactive echo
		return
	}
	output.RenderBoard(r.out, r.game.Position(), r.cfg.Output, marks) //nolint:errcheck // interactive echo
}
