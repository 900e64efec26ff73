// Package matching selects replayed games by tag criteria and by the
// material left on the board.
package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// TagOperator represents comparison operators for tag matching.
type TagOperator int

const (
	OpEqual TagOperator = iota
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains
	OpRegex
)

// PlayerTag matches either the White or the Black tag.
const PlayerTag = "_Player"

// TagCriterion is one test against a tag value.
type TagCriterion struct {
	TagName  string
	Value    string
	Operator TagOperator
	regex    *regexp.Regexp
}

// TagMatcher filters games by their tags.
type TagMatcher struct {
	criteria []*TagCriterion
	matchAll bool // true = AND all criteria, false = OR
}

// NewTagMatcher creates a tag matcher requiring every criterion.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{matchAll: true}
}

// SetMatchAll sets whether all criteria must match (AND) or any (OR).
func (tm *TagMatcher) SetMatchAll(all bool) {
	tm.matchAll = all
}

// AddCriterion adds a tag matching criterion.
func (tm *TagMatcher) AddCriterion(tagName, value string, op TagOperator) error {
	c := &TagCriterion{TagName: tagName, Value: value, Operator: op}
	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return fmt.Errorf("tag %s pattern %q: %w", tagName, value, errors.ErrInvalidConfig)
		}
		c.regex = re
	case OpContains:
		c.Value = strings.ToLower(value)
	}
	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayerCriterion matches a substring of either player's name.
func (tm *TagMatcher) AddPlayerCriterion(name string) {
	tm.AddCriterion(PlayerTag, name, OpContains) //nolint:errcheck // only regex criteria fail
}

// operators in match order; two-character forms first.
var operators = []struct {
	text string
	op   TagOperator
}{
	{"<=", OpLessOrEqual},
	{">=", OpGreaterOrEqual},
	{"<>", OpNotEqual},
	{"!=", OpNotEqual},
	{"<", OpLessThan},
	{">", OpGreaterThan},
	{"=", OpEqual},
	{"~", OpRegex},
}

// ParseCriterion parses a criterion such as `White = "Morphy"`,
// `Date >= 1858.01.01` or `Event ~ ^Paris`. Blank lines and lines starting
// with # are ignored.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	end := strings.IndexAny(line, " \t<>=!~")
	if end <= 0 {
		return fmt.Errorf("tag criterion %q: %w", line, errors.ErrInvalidConfig)
	}
	name := line[:end]
	rest := strings.TrimSpace(line[end:])

	op, found := OpEqual, false
	for _, o := range operators {
		if strings.HasPrefix(rest, o.text) {
			op, found = o.op, true
			rest = rest[len(o.text):]
			break
		}
	}
	if !found {
		return fmt.Errorf("tag criterion %q has no operator: %w", line, errors.ErrInvalidConfig)
	}

	value := strings.TrimSpace(rest)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return tm.AddCriterion(name, value, op)
}

// Match reports whether tags satisfy the criteria. No criteria match
// everything.
func (tm *TagMatcher) Match(tags map[string]string) bool {
	if len(tm.criteria) == 0 {
		return true
	}
	for _, c := range tm.criteria {
		if tm.matchCriterion(tags, c) != tm.matchAll {
			return !tm.matchAll
		}
	}
	return tm.matchAll
}

func (tm *TagMatcher) matchCriterion(tags map[string]string, c *TagCriterion) bool {
	if c.TagName == PlayerTag {
		return matchValue(tags["White"], c) || matchValue(tags["Black"], c)
	}
	value, ok := tags[c.TagName]
	if !ok {
		return c.Operator == OpNotEqual
	}
	return matchValue(value, c)
}

func matchValue(value string, c *TagCriterion) bool {
	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(value, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(value, c.Value)
	case OpContains:
		return strings.Contains(strings.ToLower(value), c.Value)
	case OpRegex:
		return c.regex.MatchString(value)
	default:
		return compareOrdered(value, c.Value, c.Operator)
	}
}

// compareOrdered compares dates (YYYY.MM.DD), then numbers, then strings.
func compareOrdered(value, want string, op TagOperator) bool {
	var cmp int
	vd, wd := parseDate(value), parseDate(want)
	vn, errV := strconv.ParseFloat(value, 64)
	wn, errW := strconv.ParseFloat(want, 64)

	switch {
	case vd > 0 && wd > 0:
		cmp = vd - wd
	case errV == nil && errW == nil:
		switch {
		case vn < wn:
			cmp = -1
		case vn > wn:
			cmp = 1
		}
	default:
		cmp = strings.Compare(strings.ToLower(value), strings.ToLower(want))
	}

	switch op {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// parseDate encodes a YYYY.MM.DD date as YYYYMMDD. Unknown month or day
// parts ("??") count as 1. It returns 0 for anything without a year.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	month, day := 1, 1
	if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	if len(parts) >= 3 {
		if d, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return year*10000 + month*100 + day
}

// CriteriaCount returns the number of criteria.
func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}
