package eco

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/cheese-go/internal/engine"
	"github.com/lgbarn/cheese-go/internal/parser"
	"github.com/lgbarn/cheese-go/internal/testutil"
)

const testECOData = `
[ECO "B90"]
[Opening "Sicilian"]
[Variation "Najdorf"]

1. e4 c5 2. Nf3 d6 3. d4 cxd4 4. Nxd4 Nf6 5. Nc3 a6 *

[ECO "C50"]
[Opening "Giuoco Piano"]

1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 *

[ECO "D35"]
[Opening "QGD"]
[Variation "exchange variation"]

1. d4 d5 2. c4 e6 3. Nc3 Nf6 4. cxd5 exd5 *

[Opening "No code"]

1. a4 *
`

func newTestClassifier(t *testing.T) *ECOClassifier {
	t.Helper()
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
		t.Fatalf("LoadFromReader() error: %v", err)
	}
	return ec
}

// positions plays SAN moves from the initial position and returns the
// position after each.
func positions(t *testing.T, moves string) []*engine.Position {
	t.Helper()
	p := engine.NewPosition()
	var out []*engine.Position
	for _, m := range strings.Fields(moves) {
		if _, err := parser.Apply(p, m); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
		out = append(out, p.Clone())
	}
	return out
}

func TestLoadFromReader(t *testing.T) {
	ec := newTestClassifier(t)
	if ec.EntriesLoaded() != 3 {
		t.Errorf("EntriesLoaded() = %d, want 3", ec.EntriesLoaded())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eco.pgn")
	if err := os.WriteFile(path, []byte(testECOData), 0644); err != nil {
		t.Fatal(err)
	}
	ec := NewECOClassifier()
	if err := ec.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if ec.EntriesLoaded() != 3 {
		t.Errorf("EntriesLoaded() = %d, want 3", ec.EntriesLoaded())
	}

	if err := ec.LoadFromFile(filepath.Join(t.TempDir(), "missing.pgn")); err == nil {
		t.Error("LoadFromFile() accepted a missing file")
	}
}

func TestLoad_ParseError(t *testing.T) {
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader("[ECO \"A00\"]\n1. e4 @@ *\n")); err == nil {
		t.Error("LoadFromReader() accepted a broken script")
	}
}

func TestClassify(t *testing.T) {
	ec := newTestClassifier(t)

	tests := []struct {
		name  string
		moves string
		want  string
	}{
		{"exact Najdorf", "e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6", "B90"},
		{"Najdorf continued", "e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6 Be2 e5 Nb3", "B90"},
		{"Giuoco Piano", "e4 e5 Nf3 Nc6 Bc4 Bc5", "C50"},
		{"transposed Giuoco Piano", "Nf3 Nc6 e4 e5 Bc4 Bc5", "C50"},
		{"QGD exchange", "d4 d5 c4 e6 Nc3 Nf6 cxd5 exd5", "D35"},
		{"no match", "a3", ""},
		{"short of any line", "e4 e5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ec.Classify(positions(t, tt.moves))
			if tt.want == "" {
				if got != nil {
					t.Errorf("Classify() = %s, want no match", got.ECOCode)
				}
				return
			}
			if got == nil || got.ECOCode != tt.want {
				t.Errorf("Classify() = %+v, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_Empty(t *testing.T) {
	ec := NewECOClassifier()
	if ec.Classify(positions(t, "e4 c5")) != nil {
		t.Error("empty classifier matched")
	}
}

func TestAddTags(t *testing.T) {
	ec := newTestClassifier(t)
	tags := map[string]string{}
	set := func(name, value string) { tags[name] = value }

	if !ec.AddTags(positions(t, "e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6"), set) {
		t.Fatal("AddTags() = false")
	}
	want := map[string]string{"ECO": "B90", "Opening": "Sicilian", "Variation": "Najdorf"}
	testutil.AssertEqual(t, tags, want)

	if ec.AddTags(positions(t, "a3"), set) {
		t.Error("AddTags() = true without a match")
	}
}
