package grammar

import "strings"

// ProjToken renders a single "+key=value" token.
func ProjToken(key, value string) string {
	return "+" + key + "=" + value
}

// ProjFlag renders a valueless "+key" token such as +no_defs.
func ProjFlag(key string) string {
	return "+" + key
}

// JoinProj joins PROJ fragments with single spaces. Empty fragments are
// dropped: a component with no PROJ spelling renders "" and must not leave
// a doubled separator behind.
func JoinProj(fragments ...string) string {
	var b strings.Builder
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f)
	}
	return b.String()
}
