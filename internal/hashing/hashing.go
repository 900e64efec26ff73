// Package hashing provides position hashes and duplicate detection for
// replayed games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/cheese-go/internal/chess"
	"github.com/lgbarn/cheese-go/internal/engine"
)

const squares = chess.BoardSize * chess.BoardSize

// Zobrist keys, indexed by side, kind and square. A fixed seed keeps
// hashes stable between runs.
var (
	pieceKeys [2][chess.NumKinds][squares]uint64
	movedKeys [squares]uint64
	blackKey  uint64
)

func init() {
	r := rand.New(rand.NewSource(0x5eed_c4e5e)) //nolint:gosec // not used for security
	for side := range pieceKeys {
		for kind := range pieceKeys[side] {
			for sq := range pieceKeys[side][kind] {
				pieceKeys[side][kind][sq] = r.Uint64()
			}
		}
	}
	for sq := range movedKeys {
		movedKeys[sq] = r.Uint64()
	}
	blackKey = r.Uint64()
}

func index(c chess.Coord) int {
	return c.Y*chess.BoardSize + c.X
}

// GenerateZobristHash hashes the placement, the side to move and the
// moved flags of kings and rooks. Positions with equal hashes are the same
// for every rule the engine applies, barring collisions.
func GenerateZobristHash(p *engine.Position) uint64 {
	if p == nil {
		return 0
	}
	grid := p.Grid()
	var hash uint64

	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			sq := grid[y][x]
			if sq.IsEmpty() {
				continue
			}
			i := index(sq.Coord)
			hash ^= pieceKeys[sq.Side][sq.Kind][i]
			if sq.Moved && (sq.Kind == chess.King || sq.Kind == chess.Rook) {
				hash ^= movedKeys[i]
			}
		}
	}
	if p.Turn() == chess.Black {
		hash ^= blackKey
	}
	return hash
}

// pieceWeight gives every kind its own bit range so WeakHash separates
// material balances that sum alike.
var pieceWeight = [chess.NumKinds]uint32{0, 1, 1 << 4, 1 << 8, 1 << 12, 1 << 16, 1 << 20}

// WeakHash is a material signature: the piece counts of both sides.
func WeakHash(p *engine.Position) uint64 {
	if p == nil {
		return 0
	}
	var white, black uint32
	for _, sq := range p.PlayerPieces(chess.White) {
		white += pieceWeight[sq.Kind]
	}
	for _, sq := range p.PlayerPieces(chess.Black) {
		black += pieceWeight[sq.Kind]
	}
	return uint64(white)<<32 | uint64(black)
}
