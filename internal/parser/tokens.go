// Package parser reads move scripts: optional PGN-style tags followed by
// numbered moves in coordinate or SAN form, comments and a result token.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	MoveNumber
	MoveToken
	CheckSymbol
	Annotate
	TerminatingResult
	ErrorToken

	// Internal tokens used for identification
	Whitespace
	TagStart
	TagEnd
	DoubleQuote
	CommentStart
	CommentEnd
	Semicolon
	Dot
	Alpha
	Digit
	Star
	NoToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	MoveNumber:        "MOVE_NUMBER",
	MoveToken:         "MOVE",
	CheckSymbol:       "CHECK_SYMBOL",
	Annotate:          "ANNOTATE",
	TerminatingResult: "TERMINATING_RESULT",
	ErrorToken:        "ERROR_TOKEN",
	Whitespace:        "WHITESPACE",
	TagStart:          "TAG_START",
	TagEnd:            "TAG_END",
	DoubleQuote:       "DOUBLE_QUOTE",
	CommentStart:      "COMMENT_START",
	CommentEnd:        "COMMENT_END",
	Semicolon:         "SEMICOLON",
	Dot:               "DOT",
	Alpha:             "ALPHA",
	Digit:             "DIGIT",
	Star:              "STAR",
	NoToken:           "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text holds tag names, tag values, comments, moves and results.
	Text string

	// MoveNum holds move numbers.
	MoveNum int

	// Line and column of the first character, 1-based.
	Line   int
	Column int
}
