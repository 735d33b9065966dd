package grammar

import "strings"

// Quote renders a WKT string literal. Embedded quotes are doubled.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Node renders KEYWORD[arg, arg, ...]. Arguments are inserted verbatim;
// callers quote names with Quote.
func Node(keyword string, args ...string) string {
	return keyword + "[" + strings.Join(args, ", ") + "]"
}
