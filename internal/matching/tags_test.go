package matching

import (
	"testing"

	"github.com/lgbarn/cheese-go/internal/errors"
)

var morphy = map[string]string{
	"Event":    "Paris Opera",
	"Date":     "1858.11.02",
	"White":    "Paul Morphy",
	"Black":    "Duke Karl / Count Isouard",
	"Result":   "1-0",
	"WhiteElo": "2690",
}

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{`White = "Paul Morphy"`, true},
		{`White = "paul morphy"`, true},
		{`White="Paul Morphy"`, true},
		{`Result != "0-1"`, true},
		{`Result <> "1-0"`, false},
		{`Date >= "1858.01.01"`, true},
		{`Date < 1858.11.01`, false},
		{`Date <= 1858.11.02`, true},
		{`WhiteElo > 2600`, true},
		{`WhiteElo < 900`, false},
		{`Event ~ ^Paris`, true},
		{`Event ~ Berlin$`, false},
		{`Round = "1"`, false},
		{`Round != "1"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tm := NewTagMatcher()
			if err := tm.ParseCriterion(tt.line); err != nil {
				t.Fatalf("ParseCriterion() error: %v", err)
			}
			if tm.CriteriaCount() != 1 {
				t.Fatalf("CriteriaCount() = %d, want 1", tm.CriteriaCount())
			}
			if got := tm.Match(morphy); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCriterion_Skipped(t *testing.T) {
	tm := NewTagMatcher()
	for _, line := range []string{"", "   ", "# a comment"} {
		if err := tm.ParseCriterion(line); err != nil {
			t.Errorf("ParseCriterion(%q) error: %v", line, err)
		}
	}
	if tm.CriteriaCount() != 0 {
		t.Errorf("CriteriaCount() = %d, want 0", tm.CriteriaCount())
	}
	if !tm.Match(morphy) {
		t.Error("no criteria should match everything")
	}
}

func TestParseCriterion_Errors(t *testing.T) {
	tests := []string{
		`White`,
		`= "Morphy"`,
		`Event ~ [unclosed`,
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			err := NewTagMatcher().ParseCriterion(line)
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("ParseCriterion(%q) error = %v, want ErrInvalidConfig", line, err)
			}
		})
	}
}

func TestTagMatcher_MatchAll(t *testing.T) {
	tests := []struct {
		name     string
		matchAll bool
		want     bool
	}{
		{"and", true, false},
		{"or", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			tm.SetMatchAll(tt.matchAll)
			tm.AddCriterion("Result", "1-0", OpEqual) //nolint:errcheck
			tm.AddCriterion("Result", "0-1", OpEqual) //nolint:errcheck
			if got := tm.Match(morphy); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagMatcher_Player(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"morphy", true},
		{"ISOUARD", true},
		{"Anderssen", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTagMatcher()
			tm.AddPlayerCriterion(tt.name)
			if got := tm.Match(morphy); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1858.11.02", 18581102},
		{"1858.??.??", 18580101},
		{"1858.11", 18581101},
		{"2690", 0},
		{"????.??.??", 0},
	}
	for _, tt := range tests {
		if got := parseDate(tt.in); got != tt.want {
			t.Errorf("parseDate(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
