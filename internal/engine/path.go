package engine

import "github.com/lgbarn/cheese-go/internal/chess"

// rayOptions walks every movement vector of a non-pawn piece.
// Sliders repeat the vector until blocked; knights and kings take one step.
func (p *Position) rayOptions(sq *chess.Square, attacking bool) []chess.Coord {
	tmpl := chess.TemplateOf(sq.Kind)
	moves := []chess.Coord{}

	for _, v := range tmpl.Vectors {
		dir := chess.Oriented(v, sq.Side)
		for to := sq.Coord.Add(dir); to.InBounds(); to = to.Add(dir) {
			target := p.grid.At(to)
			if target.IsFriendOf(sq.Side) {
				if attacking {
					moves = append(moves, to)
				}
				break
			}
			moves = append(moves, to)
			if target.IsPiece() {
				if tmpl.Sliding && target.Kind != chess.King {
					p.markPin(sq, target, dir)
				}
				break
			}
			if !tmpl.Sliding {
				break
			}
		}
	}
	return moves
}

// markPin scans past target along dir. If the first piece beyond it is the
// enemy king, target is pinned by slider.
func (p *Position) markPin(slider, target *chess.Square, dir chess.Vector) {
	for c := target.Coord.Add(dir); c.InBounds(); c = c.Add(dir) {
		beyond := p.grid.At(c)
		if beyond.IsEmpty() {
			continue
		}
		if beyond.Kind == chess.King && beyond.IsEnemyOf(slider.Side) {
			target.Pinned = true
			target.Pinner = slider.Coord
		}
		return
	}
}

// pinLine returns the squares a pinned piece may still occupy: the path to
// its pinner (inclusive) and the empty squares back towards its king.
func (p *Position) pinLine(sq *chess.Square) []chess.Coord {
	dir := chess.Delta(sq.Coord, sq.Pinner).Normalize()
	var line []chess.Coord
	for c := sq.Coord.Add(dir); c.InBounds(); c = c.Add(dir) {
		line = append(line, c)
		if c == sq.Pinner {
			break
		}
	}

	back := chess.Vector{DX: -dir.DX, DY: -dir.DY}
	for c := sq.Coord.Add(back); c.InBounds() && p.grid.At(c).IsEmpty(); c = c.Add(back) {
		line = append(line, c)
	}
	return line
}
