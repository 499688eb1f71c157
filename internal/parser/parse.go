package parser

import (
	"fmt"
	"os"
	"strings"
)

// ParseFile reads and parses a schema file.
func ParseFile(filePath string) (*Schema, []string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(string(data))
}

// Parse parses and validates input. Syntax errors skip validation.
func Parse(input string) (*Schema, []string, error) {
	p := NewParser(NewLexer(input))
	schema := p.ParseSchema()

	problems := p.Errors()
	if len(problems) == 0 {
		problems = Validate(schema)
	}
	if len(problems) > 0 {
		return schema, problems, fmt.Errorf("schema has %d error(s)", len(problems))
	}
	return schema, nil, nil
}

// ParseAndValidate is Parse with the problems folded into the error.
func ParseAndValidate(input string) (*Schema, error) {
	schema, problems, err := Parse(input)
	if err != nil {
		return schema, fmt.Errorf("%w:\n%s", err, FormatErrors(problems))
	}
	return schema, nil
}

func FormatErrors(problems []string) string {
	var b strings.Builder
	for i, p := range problems {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
	}
	return b.String()
}
