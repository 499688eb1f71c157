package parser

// TokenType identifies a lexical token.
type TokenType string

const (
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"

	TokenIdent   TokenType = "IDENT"
	TokenString  TokenType = "STRING"
	TokenInt     TokenType = "INT"
	TokenFloat   TokenType = "FLOAT"
	TokenBoolean TokenType = "BOOLEAN"

	TokenAt       TokenType = "@"
	TokenAtAt     TokenType = "@@"
	TokenLParen   TokenType = "("
	TokenRParen   TokenType = ")"
	TokenLBrace   TokenType = "{"
	TokenRBrace   TokenType = "}"
	TokenLBracket TokenType = "["
	TokenRBracket TokenType = "]"
	TokenEqual    TokenType = "="
	TokenColon    TokenType = ":"
	TokenQuestion TokenType = "?"
	TokenComma    TokenType = ","
	TokenDot      TokenType = "."

	TokenModel      TokenType = "model"
	TokenEnum       TokenType = "enum"
	TokenDatasource TokenType = "datasource"
	TokenGenerator  TokenType = "generator"
	TokenTypeKeyword      TokenType = "type"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

var keywords = map[string]TokenType{
	"model":      TokenModel,
	"enum":       TokenEnum,
	"datasource": TokenDatasource,
	"generator":  TokenGenerator,
	"type":       TokenTypeKeyword,
	"true":       TokenBoolean,
	"false":      TokenBoolean,
}

// LookupIdent returns the keyword token type for ident, or TokenIdent.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}

// isNameToken reports whether t can be used as a field or argument name.
// Block keywords are valid field names ("type", "model").
func isNameToken(t TokenType) bool {
	switch t {
	case TokenIdent, TokenModel, TokenEnum, TokenDatasource, TokenGenerator, TokenTypeKeyword:
		return true
	}
	return false
}
