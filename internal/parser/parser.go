package parser

import (
	"fmt"
	"strconv"
)

// Parser builds a Schema from lexer tokens, collecting errors instead of stopping at the first one.
type Parser struct {
	lexer     *Lexer
	errors    []string
	curToken  Token
	peekToken Token
}

func NewParser(lexer *Lexer) *Parser {
	p := &Parser{lexer: lexer}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("line %d, column %d: %s", p.curToken.Line, p.curToken.Column, msg))
}

func (p *Parser) expect(t TokenType) bool {
	if p.curToken.Type == t {
		p.nextToken()
		return true
	}
	p.errorf("expected %s, found %s", t, p.describe())
	return false
}

func (p *Parser) describe() string {
	if p.curToken.Literal != "" && p.curToken.Type != TokenEOF {
		return fmt.Sprintf("%q", p.curToken.Literal)
	}
	return string(p.curToken.Type)
}

// ParseSchema parses every top-level block until EOF.
func (p *Parser) ParseSchema() *Schema {
	schema := &Schema{}

	for p.curToken.Type != TokenEOF {
		switch p.curToken.Type {
		case TokenDatasource:
			name, fields, line := p.parseKeyValueBlock()
			if name != "" {
				schema.Datasources = append(schema.Datasources, &Datasource{Name: name, Fields: fields, Line: line})
			}
		case TokenGenerator:
			name, fields, line := p.parseKeyValueBlock()
			if name != "" {
				schema.Generators = append(schema.Generators, &Generator{Name: name, Fields: fields, Line: line})
			}
		case TokenModel:
			if model := p.parseModel(); model != nil {
				schema.Models = append(schema.Models, model)
			}
		case TokenEnum:
			if enum := p.parseEnum(); enum != nil {
				schema.Enums = append(schema.Enums, enum)
			}
		default:
			p.errorf("unexpected %s at top level", p.describe())
			p.nextToken()
		}
	}

	return schema
}

// parseKeyValueBlock parses datasource and generator blocks.
func (p *Parser) parseKeyValueBlock() (string, []*Field, int) {
	kind := p.curToken.Literal
	line := p.curToken.Line
	p.nextToken()

	if p.curToken.Type != TokenIdent {
		p.errorf("expected %s name, found %s", kind, p.describe())
		p.skipBlock()
		return "", nil, line
	}
	name := p.curToken.Literal
	p.nextToken()
	if !p.expect(TokenLBrace) {
		p.skipBlock()
		return "", nil, line
	}

	var fields []*Field
	for p.curToken.Type != TokenRBrace && p.curToken.Type != TokenEOF {
		if !isNameToken(p.curToken.Type) {
			p.errorf("expected key in %s %q, found %s", kind, name, p.describe())
			p.nextToken()
			continue
		}
		key := p.curToken.Literal
		p.nextToken()
		if !p.expect(TokenEqual) {
			continue
		}
		fields = append(fields, &Field{Name: key, Value: p.parseValue()})
	}
	p.expect(TokenRBrace)
	return name, fields, line
}

// skipBlock advances past the next balanced { ... }.
func (p *Parser) skipBlock() {
	for p.curToken.Type != TokenLBrace && p.curToken.Type != TokenEOF {
		p.nextToken()
	}
	depth := 0
	for p.curToken.Type != TokenEOF {
		switch p.curToken.Type {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
			if depth == 0 {
				p.nextToken()
				return
			}
		}
		p.nextToken()
	}
}

func (p *Parser) parseModel() *Model {
	model := &Model{Line: p.curToken.Line}
	p.nextToken()

	if p.curToken.Type != TokenIdent {
		p.errorf("expected model name, found %s", p.describe())
		p.skipBlock()
		return nil
	}
	model.Name = p.curToken.Literal
	p.nextToken()
	if !p.expect(TokenLBrace) {
		p.skipBlock()
		return nil
	}

	for p.curToken.Type != TokenRBrace && p.curToken.Type != TokenEOF {
		switch {
		case p.curToken.Type == TokenAtAt:
			p.nextToken()
			if attr := p.parseAttribute(); attr != nil {
				model.Attributes = append(model.Attributes, attr)
			}
		case isNameToken(p.curToken.Type):
			if field := p.parseModelField(); field != nil {
				model.Fields = append(model.Fields, field)
			}
		default:
			p.errorf("unexpected %s in model %q", p.describe(), model.Name)
			p.nextToken()
		}
	}
	p.expect(TokenRBrace)
	return model
}

func (p *Parser) parseModelField() *ModelField {
	field := &ModelField{Name: p.curToken.Literal, Line: p.curToken.Line}
	p.nextToken()

	field.Type = p.parseFieldType()
	if field.Type == nil {
		return nil
	}
	for p.curToken.Type == TokenAt {
		p.nextToken()
		if attr := p.parseAttribute(); attr != nil {
			field.Attributes = append(field.Attributes, attr)
		}
	}
	return field
}

// parseFieldType parses Type, Type?, Type[] and Unsupported("...").
func (p *Parser) parseFieldType() *FieldType {
	if p.curToken.Type != TokenIdent {
		p.errorf("expected field type, found %s", p.describe())
		return nil
	}
	ft := &FieldType{Name: p.curToken.Literal}
	p.nextToken()

	if ft.Name == "Unsupported" && p.curToken.Type == TokenLParen {
		ft.IsUnsupported = true
		p.nextToken()
		if p.curToken.Type == TokenString {
			ft.UnsupportedValue = p.curToken.Literal
			p.nextToken()
		}
		if !p.expect(TokenRParen) {
			return nil
		}
	}

	if p.curToken.Type == TokenLBracket {
		p.nextToken()
		if !p.expect(TokenRBracket) {
			return nil
		}
		ft.IsArray = true
	}
	if p.curToken.Type == TokenQuestion {
		ft.IsOptional = true
		p.nextToken()
	}
	return ft
}

func (p *Parser) parseEnum() *Enum {
	enum := &Enum{Line: p.curToken.Line}
	p.nextToken()

	if p.curToken.Type != TokenIdent {
		p.errorf("expected enum name, found %s", p.describe())
		p.skipBlock()
		return nil
	}
	enum.Name = p.curToken.Literal
	p.nextToken()
	if !p.expect(TokenLBrace) {
		p.skipBlock()
		return nil
	}

	for p.curToken.Type != TokenRBrace && p.curToken.Type != TokenEOF {
		switch {
		case isNameToken(p.curToken.Type):
			value := &EnumValue{Name: p.curToken.Literal}
			p.nextToken()
			for p.curToken.Type == TokenAt {
				p.nextToken()
				if attr := p.parseAttribute(); attr != nil {
					value.Attributes = append(value.Attributes, attr)
				}
			}
			enum.Values = append(enum.Values, value)
		case p.curToken.Type == TokenAtAt:
			// @@map on enums is accepted and ignored.
			p.nextToken()
			p.parseAttribute()
		default:
			p.errorf("unexpected %s in enum %q", p.describe(), enum.Name)
			p.nextToken()
		}
	}
	p.expect(TokenRBrace)
	return enum
}

// parseAttribute parses the part after @ or @@: name, optional .namespace, optional (args).
func (p *Parser) parseAttribute() *Attribute {
	if !isNameToken(p.curToken.Type) {
		p.errorf("expected attribute name, found %s", p.describe())
		return nil
	}
	attr := &Attribute{Name: p.curToken.Literal, Line: p.curToken.Line}
	p.nextToken()

	for p.curToken.Type == TokenDot {
		p.nextToken()
		if !isNameToken(p.curToken.Type) {
			p.errorf("expected attribute name after '.', found %s", p.describe())
			return nil
		}
		attr.Name += "." + p.curToken.Literal
		p.nextToken()
	}

	if p.curToken.Type != TokenLParen {
		return attr
	}
	p.nextToken()
	for p.curToken.Type != TokenRParen && p.curToken.Type != TokenEOF {
		attr.Arguments = append(attr.Arguments, p.parseArgument())
		if p.curToken.Type == TokenComma {
			p.nextToken()
		} else if p.curToken.Type != TokenRParen {
			p.errorf("expected ',' or ')' in @%s, found %s", attr.Name, p.describe())
			p.nextToken()
		}
	}
	if !p.expect(TokenRParen) {
		return nil
	}
	return attr
}

func (p *Parser) parseArgument() *AttributeArgument {
	arg := &AttributeArgument{}
	if isNameToken(p.curToken.Type) && (p.peekToken.Type == TokenColon || p.peekToken.Type == TokenEqual) {
		arg.Name = p.curToken.Literal
		p.nextToken()
		p.nextToken()
	}
	arg.Value = p.parseValue()
	return arg
}

// parseValue parses a literal, identifier, list or function call.
func (p *Parser) parseValue() any {
	tok := p.curToken
	switch {
	case tok.Type == TokenString:
		p.nextToken()
		return tok.Literal
	case tok.Type == TokenInt:
		p.nextToken()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.errorf("invalid integer %s", tok.Literal)
		}
		return n
	case tok.Type == TokenFloat:
		p.nextToken()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf("invalid number %s", tok.Literal)
		}
		return f
	case tok.Type == TokenBoolean:
		p.nextToken()
		return tok.Literal == "true"
	case tok.Type == TokenLBracket:
		p.nextToken()
		values := []any{}
		for p.curToken.Type != TokenRBracket && p.curToken.Type != TokenEOF {
			values = append(values, p.parseValue())
			if p.curToken.Type == TokenComma {
				p.nextToken()
			} else if p.curToken.Type != TokenRBracket {
				p.errorf("expected ',' or ']' in list, found %s", p.describe())
				p.nextToken()
			}
		}
		p.expect(TokenRBracket)
		return values
	case isNameToken(tok.Type):
		p.nextToken()
		if p.curToken.Type != TokenLParen {
			return Ident(tok.Literal)
		}
		p.nextToken()
		call := &FunctionCall{Name: tok.Literal, Args: []any{}}
		for p.curToken.Type != TokenRParen && p.curToken.Type != TokenEOF {
			if isNameToken(p.curToken.Type) && (p.peekToken.Type == TokenColon || p.peekToken.Type == TokenEqual) {
				call.Args = append(call.Args, p.parseArgument())
			} else {
				call.Args = append(call.Args, p.parseValue())
			}
			if p.curToken.Type == TokenComma {
				p.nextToken()
			} else if p.curToken.Type != TokenRParen {
				p.errorf("expected ',' or ')' in %s(), found %s", call.Name, p.describe())
				p.nextToken()
			}
		}
		p.expect(TokenRParen)
		return call
	}
	p.errorf("expected value, found %s", p.describe())
	p.nextToken()
	return nil
}
