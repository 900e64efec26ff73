package parser

import (
	"io"

	"github.com/lgbarn/cheese-go/internal/errors"
)

// Script is one game read from a move script.
type Script struct {
	Tags      map[string]string
	Moves     []MoveText
	Comments  []string
	Result    string // empty when the game ran into the end of input
	StartLine int
	EndLine   int
}

// MoveText is a move as written, with its location.
type MoveText struct {
	Text   string
	Number int // the move number written before it, 0 if none
	Line   int
	Column int
}

// Tag returns the value of a tag, or "" when absent.
func (s *Script) Tag(name string) string {
	return s.Tags[name]
}

// Parser parses move scripts into Script values.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	file         string
	number       int
}

// NewParser creates a new parser for the given reader. The file name only
// labels errors.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{
		lexer: NewLexer(r),
		file:  file,
	}
}

func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

func (p *Parser) errorAt(tok *Token, err error) error {
	return &errors.ParseError{
		Err:    err,
		File:   p.file,
		Line:   tok.Line,
		Column: tok.Column,
		Got:    tok.Text,
	}
}

// ParseScript parses a single game from the input.
// Returns nil, nil if no more games are available.
func (p *Parser) ParseScript() (*Script, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	script := &Script{Tags: make(map[string]string)}
	script.Comments = p.parseOptCommentList()
	script.StartLine = p.currentToken.Line

	if err := p.parseOptTagList(script); err != nil {
		return nil, err
	}
	if err := p.parseMoveList(script); err != nil {
		return nil, err
	}
	script.Comments = append(script.Comments, p.parseOptCommentList()...)

	switch p.currentToken.Type {
	case TerminatingResult:
		script.Result = p.currentToken.Text
		script.EndLine = p.currentToken.Line
		p.nextToken()
	case EOFToken:
		script.EndLine = p.lexer.LineNumber()
		if len(script.Moves) == 0 && len(script.Tags) == 0 {
			return nil, nil
		}
	case TagToken:
		// A new game starts without a result.
		script.EndLine = p.currentToken.Line
	default:
		return nil, p.errorAt(p.currentToken, errors.ErrParseFailure)
	}

	return script, nil
}

// parseOptTagList parses zero or more [Name "Value"] pairs.
func (p *Parser) parseOptTagList(script *Script) error {
	for p.currentToken.Type == TagToken {
		name := p.currentToken.Text
		p.nextToken()

		if p.currentToken.Type != StringToken {
			return p.errorAt(p.currentToken, errors.Wrapf(errors.ErrParseFailure, "missing value for tag %s", name))
		}
		script.Tags[name] = p.currentToken.Text
		p.nextToken()
		script.Comments = append(script.Comments, p.parseOptCommentList()...)
	}
	return nil
}

// parseMoveList parses moves up to the result, a new tag or the end.
func (p *Parser) parseMoveList(script *Script) error {
	p.number = 0
	for {
		switch p.currentToken.Type {
		case MoveNumber:
			p.number = p.currentToken.MoveNum
			p.nextToken()
		case MoveToken:
			script.Moves = append(script.Moves, MoveText{
				Text:   p.currentToken.Text,
				Number: p.number,
				Line:   p.currentToken.Line,
				Column: p.currentToken.Column,
			})
			p.number = 0
			p.nextToken()
		case CheckSymbol, Annotate:
			if len(script.Moves) == 0 {
				return p.errorAt(p.currentToken, errors.ErrParseFailure)
			}
			p.nextToken()
		case CommentToken:
			script.Comments = append(script.Comments, p.currentToken.Text)
			p.nextToken()
		case ErrorToken, StringToken:
			return p.errorAt(p.currentToken, errors.ErrParseFailure)
		default:
			return nil
		}
	}
}

// parseOptCommentList parses zero or more comments.
func (p *Parser) parseOptCommentList() []string {
	var comments []string
	for p.currentToken.Type == CommentToken {
		comments = append(comments, p.currentToken.Text)
		p.nextToken()
	}
	return comments
}

// ParseAllScripts parses all games from the input.
func (p *Parser) ParseAllScripts() ([]*Script, error) {
	scripts := make([]*Script, 0, 16)

	for {
		script, err := p.ParseScript()
		if err != nil {
			return scripts, err
		}
		if script == nil {
			break
		}
		scripts = append(scripts, script)
	}

	return scripts, nil
}
