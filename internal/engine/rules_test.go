package engine

import (
	"testing"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+B+B same color vs K", "4k3/8/8/8/8/8/1B6/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "4kb2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"K+N vs K+N", "4k1n1/8/8/8/8/8/8/1N2K3 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := mustFEN(t, tt.fen)

			got := HasInsufficientMaterial(&p.grid)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
			if tt.want && p.State() != Draw {
				t.Errorf("State() = %v, want draw", p.State())
			}
		})
	}
}

func TestDraw_AfterCapture(t *testing.T) {
	// Kxd2 leaves K vs K+B.
	p := mustFEN(t, "4k3/8/8/8/8/5b2/3r4/4K3 w - - 0 1")

	result := play(t, p, "e1d2")
	if result.Event.Type != EventCaptures {
		t.Errorf("Event = %+v, want captures", result.Event)
	}
	if result.State != Draw {
		t.Errorf("State = %v, want draw", result.State)
	}
}
