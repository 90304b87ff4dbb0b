// services/composer.go
package services

import (
	"strings"
)

// Compose substitutes {{token}} placeholders from the context into the
// template title and body. Substitution is literal, case-sensitive and
// replaces only the first occurrence of each token; a body that repeats a
// token keeps the later occurrences verbatim. Clients depend on that, so
// this is deliberately not a global replace.
func Compose(title, body string, context map[string]string) (string, string) {
	for key, value := range context {
		token := "{{" + key + "}}"
		title = replaceFirst(title, token, value)
		body = replaceFirst(body, token, value)
	}
	return title, body
}

func replaceFirst(s, old, new string) string {
	i := strings.Index(s, old)
	if i < 0 {
		return s
	}
	return s[:i] + new + s[i+len(old):]
}
