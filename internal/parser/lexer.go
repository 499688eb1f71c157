package parser

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes schema source. Newlines and comments are skipped.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	line, column := l.line, l.column
	single := func(t TokenType) Token {
		tok := Token{Type: t, Literal: string(l.ch), Line: line, Column: column}
		l.readChar()
		return tok
	}

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Line: line, Column: column}
	case '@':
		if l.peekChar() == '@' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenAtAt, Literal: "@@", Line: line, Column: column}
		}
		return single(TokenAt)
	case '(':
		return single(TokenLParen)
	case ')':
		return single(TokenRParen)
	case '{':
		return single(TokenLBrace)
	case '}':
		return single(TokenRBrace)
	case '[':
		return single(TokenLBracket)
	case ']':
		return single(TokenRBracket)
	case '=':
		return single(TokenEqual)
	case ':':
		return single(TokenColon)
	case '?':
		return single(TokenQuestion)
	case ',':
		return single(TokenComma)
	case '.':
		return single(TokenDot)
	case '"':
		lit, ok := l.readString()
		if !ok {
			return Token{Type: TokenIllegal, Literal: lit, Line: line, Column: column}
		}
		return Token{Type: TokenString, Literal: lit, Line: line, Column: column}
	case '-':
		if isDigit(l.peekChar()) {
			t, lit := l.readNumber()
			return Token{Type: t, Literal: lit, Line: line, Column: column}
		}
		return single(TokenIllegal)
	}

	if isLetter(l.ch) {
		lit := l.readIdentifier()
		return Token{Type: LookupIdent(lit), Literal: lit, Line: line, Column: column}
	}
	if isDigit(l.ch) {
		t, lit := l.readNumber()
		return Token{Type: t, Literal: lit, Line: line, Column: column}
	}
	return single(TokenIllegal)
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		switch {
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() (TokenType, string) {
	start := l.position
	tokenType := TokenInt
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		tokenType = TokenFloat
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return tokenType, l.input[start:l.position]
}

// readString consumes a double-quoted string and returns its unescaped value.
func (l *Lexer) readString() (string, bool) {
	start := l.position
	for {
		l.readChar()
		switch l.ch {
		case '\\':
			l.readChar()
		case '"':
			raw := l.input[start : l.position+1]
			l.readChar()
			s, err := strconv.Unquote(raw)
			if err != nil {
				return raw[1 : len(raw)-1], true
			}
			return s, true
		case 0, '\n':
			return l.input[start:l.position], false
		}
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || ch >= utf8.RuneSelf && unicode.IsLetter(rune(ch))
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
