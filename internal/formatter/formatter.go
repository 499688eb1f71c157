package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/carlosnayan/prisma-go-marketplace/internal/parser"
)

// FormatSchema prints schema in canonical form: two-space indentation, aligned field
// columns, declaration order kept, blank lines between field groups kept. Comments are not preserved.
func FormatSchema(schema *parser.Schema) string {
	var blocks []string
	for _, ds := range schema.Datasources {
		blocks = append(blocks, formatKeyValueBlock("datasource", ds.Name, ds.Fields))
	}
	for _, gen := range schema.Generators {
		blocks = append(blocks, formatKeyValueBlock("generator", gen.Name, gen.Fields))
	}
	for _, e := range schema.Enums {
		blocks = append(blocks, formatEnum(e))
	}
	for _, m := range schema.Models {
		blocks = append(blocks, formatModel(m))
	}
	return strings.Join(blocks, "\n")
}

func formatKeyValueBlock(kind, name string, fields []*parser.Field) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s {\n", kind, name)
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = fmt.Sprintf("  %s\t= %s", f.Name, FormatValue(f.Value))
	}
	b.WriteString(align(lines))
	b.WriteString("}\n")
	return b.String()
}

func formatEnum(e *parser.Enum) string {
	var b strings.Builder
	fmt.Fprintf(&b, "enum %s {\n", e.Name)
	for _, v := range e.Values {
		b.WriteString("  " + v.Name)
		for _, attr := range v.Attributes {
			b.WriteString(" " + formatAttribute("@", attr))
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func formatModel(m *parser.Model) string {
	var b strings.Builder
	fmt.Fprintf(&b, "model %s {\n", m.Name)

	// Each run of consecutive lines is aligned on its own, like prisma format.
	var group []string
	flush := func() {
		b.WriteString(align(group))
		group = group[:0]
	}
	prevLine := 0
	for _, f := range m.Fields {
		if prevLine > 0 && f.Line > prevLine+1 {
			flush()
			b.WriteString("\n")
		}
		prevLine = f.Line

		attrs := make([]string, len(f.Attributes))
		for i, attr := range f.Attributes {
			attrs[i] = formatAttribute("@", attr)
		}
		group = append(group, fmt.Sprintf("  %s\t%s\t%s", f.Name, formatType(f.Type), strings.Join(attrs, " ")))
	}
	flush()

	if len(m.Attributes) > 0 {
		if len(m.Fields) > 0 {
			b.WriteString("\n")
		}
		for _, attr := range m.Attributes {
			b.WriteString("  " + formatAttribute("@@", attr) + "\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// align pads tab-separated cells into columns and trims trailing blanks.
func align(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)
	for _, l := range lines {
		fmt.Fprintln(tw, l)
	}
	tw.Flush()

	out := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, l := range out {
		out[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(out, "\n") + "\n"
}

func formatType(t *parser.FieldType) string {
	if t.IsUnsupported {
		return fmt.Sprintf("Unsupported(%s)", strconv.Quote(t.UnsupportedValue))
	}
	s := t.Name
	if t.IsArray {
		s += "[]"
	}
	if t.IsOptional {
		s += "?"
	}
	return s
}

func formatAttribute(prefix string, attr *parser.Attribute) string {
	if len(attr.Arguments) == 0 {
		return prefix + attr.Name
	}
	args := make([]string, len(attr.Arguments))
	for i, arg := range attr.Arguments {
		args[i] = formatArgument(arg)
	}
	return fmt.Sprintf("%s%s(%s)", prefix, attr.Name, strings.Join(args, ", "))
}

func formatArgument(arg *parser.AttributeArgument) string {
	if arg.Name != "" {
		return arg.Name + ": " + FormatValue(arg.Value)
	}
	return FormatValue(arg.Value)
}

// FormatValue prints an attribute or block value in schema syntax.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strconv.Quote(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case parser.Ident:
		return string(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *parser.FunctionCall:
		parts := make([]string, len(val.Args))
		for i, item := range val.Args {
			parts[i] = FormatValue(item)
		}
		return val.Name + "(" + strings.Join(parts, ", ") + ")"
	case *parser.AttributeArgument:
		return formatArgument(val)
	}
	return fmt.Sprint(v)
}
