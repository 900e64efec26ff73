package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Lexer tokenizes move scripts.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab[';'] = Semicolon
	chTab['.'] = Dot
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['*'] = Star

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}

	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	// Piece letters, promotion suffixes, separators and castling.
	for _, c := range []byte("KQRBNqrnxX:-=Oo0") {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		l.eof = true
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) {
			if !l.readLine() {
				return &Token{Type: EOFToken, Line: l.lineNum, Column: l.pos + 1}
			}
			continue
		}
		line, col := l.lineNum, l.pos+1
		token := l.getNextSymbol()
		if token.Type != NoToken {
			if token.Line == 0 {
				token.Line, token.Column = line, col
			}
			return token
		}
	}
}

func (l *Lexer) getNextSymbol() *Token {
	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return &Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case TagEnd:
		return &Token{Type: NoToken}

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case Semicolon:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, Text: text}

	case Annotate, CheckSymbol:
		kind := chTab[ch]
		for l.pos < len(l.line) && chTab[l.currentChar()] == kind {
			l.advance()
		}
		return &Token{Type: kind, Text: l.line[symbolStart:l.pos]}

	case Dot:
		for l.pos < len(l.line) && l.currentChar() == '.' {
			l.advance()
		}
		return &Token{Type: NoToken}

	case Star:
		return &Token{Type: TerminatingResult, Text: "*"}

	case Alpha:
		return l.gatherMove(symbolStart)

	case Digit:
		return l.gatherNumeric(ch, symbolStart)
	}

	for l.pos < len(l.line) && chTab[l.currentChar()] == ErrorToken {
		l.advance()
	}
	return &Token{Type: ErrorToken, Text: l.line[symbolStart:l.pos]}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
		l.advance()
	}
	line, col := l.lineNum, l.pos+1
	start := l.pos
	for l.pos < len(l.line) {
		ch := l.currentChar()
		if chTab[ch] == Alpha || chTab[ch] == Digit || ch == '_' {
			l.advance()
			continue
		}
		break
	}
	if l.pos == start {
		return &Token{Type: ErrorToken, Text: "[", Line: line, Column: col - 1}
	}
	return &Token{Type: TagToken, Text: l.line[start:l.pos], Line: line, Column: col}
}

// gatherString gathers a quoted string on a single line.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		case ch == '\n':
			return &Token{Type: ErrorToken, Text: `"` + sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}
	return &Token{Type: ErrorToken, Text: `"` + sb.String()}
}

// gatherComment gathers a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	line, col := l.lineNum, l.pos
	var sb strings.Builder

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String()), Line: line, Column: col}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}
	return &Token{Type: ErrorToken, Text: "{", Line: line, Column: col}
}

// gatherMove gathers a run of move characters starting at a letter.
func (l *Lexer) gatherMove(symbolStart int) *Token {
	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	if !moveSeemsValid(text) {
		// Swallow the rest of the word so the error shows all of it.
		for l.pos < len(l.line) && (chTab[l.currentChar()] == Alpha || chTab[l.currentChar()] == Digit) {
			l.advance()
		}
		return &Token{Type: ErrorToken, Text: l.line[symbolStart:l.pos]}
	}
	return &Token{Type: MoveToken, Text: normalizeCastle(text)}
}

// gatherNumeric handles results, 0-0 castling and move numbers.
func (l *Lexer) gatherNumeric(initialDigit byte, symbolStart int) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "0-1"}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return &Token{Type: MoveToken, Text: "O-O-O"}
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: MoveToken, Text: "O-O"}
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "1-0"}
		}
		if strings.HasPrefix(remaining, "/2-1/2") {
			l.pos += 6
			return &Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}

	for l.pos < len(l.line) && chTab[l.currentChar()] == Digit {
		l.advance()
	}
	text := l.line[symbolStart:l.pos]
	n, err := strconv.Atoi(text)
	if err != nil || n == 0 {
		return &Token{Type: ErrorToken, Text: text}
	}
	for l.pos < len(l.line) && l.currentChar() == '.' {
		l.advance()
	}
	return &Token{Type: MoveNumber, Text: text, MoveNum: n}
}

// moveSeemsValid does a basic check if the move text looks like a move.
func moveSeemsValid(text string) bool {
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o":
		return true
	}
	if len(text) < 2 {
		return false
	}
	hasFile, hasRank := false, false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'h' {
			hasFile = true
		}
		if c >= '1' && c <= '8' {
			hasRank = true
		}
	}
	return hasFile && hasRank
}

func normalizeCastle(text string) string {
	switch text {
	case "o-o":
		return "O-O"
	case "o-o-o":
		return "O-O-O"
	}
	return text
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
