package generator

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GUID", "HTML", "HTTP", "HTTPS", "ID",
		"IP", "JSON", "LHS", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "TCP",
		"TLS", "TTL", "UDP", "UI", "UID", "UUID", "URI", "URL", "UTF8", "VM", "XML", "XMPP",
		"XSRF", "XSS",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// words splits camelCase, PascalCase and snake_case names into lower-case words.
// A run of capitals stays one word up to the capital that starts the next
// one: HTTPServer is http, server.
func words(s string) []string {
	var out []string
	var cur []rune
	rs := []rune(s)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range rs {
		if r == '_' || r == '-' || r == ' ' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := rs[i-1]
			next := rune(0)
			if i+1 < len(rs) {
				next = rs[i+1]
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

// pascal converts a schema name to an exported Go name: "freelancerId" is
// FreelancerID, "hourly_rate" is HourlyRate.
func pascal(s string) string {
	ws := words(s)
	for i, w := range ws {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			ws[i] = upper
		} else {
			ws[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(ws, "")
}

// receiver lower-cases the leading word of a Go name: User is user, URLMap is urlMap.
func receiver(goName string) string {
	rs := []rune(goName)
	n := 0
	for n < len(rs) && unicode.IsUpper(rs[n]) {
		n++
	}
	if n > 1 && n < len(rs) {
		n--
	}
	return strings.ToLower(string(rs[:n])) + string(rs[n:])
}

// snake converts a name to snake_case, used for file names.
func snake(s string) string {
	return strings.Join(words(s), "_")
}

// enumConst names an enum member constant: ProjectStatus.IN_PROGRESS is
// ProjectStatusInProgress.
func enumConst(caser cases.Caser, enum, value string) string {
	var b strings.Builder
	b.WriteString(enum)
	for _, w := range strings.Split(value, "_") {
		b.WriteString(caser.String(strings.ToLower(w)))
	}
	return b.String()
}

// newTitleCaser returns the caser used for enum constants. Casers keep state,
// so each graph build uses its own.
func newTitleCaser() cases.Caser {
	return cases.Title(language.Und)
}
