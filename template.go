package tracelog

import (
	"strconv"
	"strings"
)

// validateTemplate rewrites a message template to positional form and checks
// that nothing else hides between braces.
//
// Every {name} whose name appears (exact, case-sensitive) in names becomes
// {i}, i being the parameter's index. Afterwards any remaining brace token
// that is not a plain {digits} marker — an undeclared name, an empty {},
// a nested or unclosed brace, a bare } — is a *TemplateError carrying the
// offending token. Contract and operation are filled in by the compiler.
func validateTemplate(template string, names []string) (string, error) {
	positional := template
	for i, name := range names {
		positional = strings.ReplaceAll(positional, "{"+name+"}", "{"+strconv.Itoa(i)+"}")
	}

	if token := scanPositional(positional); token != emptyString {
		return emptyString, &TemplateError{Template: template, Token: token}
	}
	return positional, nil
}

// scanPositional returns the first brace token that is not a valid {digits}
// marker, or "" when the template is clean.
func scanPositional(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			end := strings.IndexByte(s[i+1:], '}')
			open := strings.IndexByte(s[i+1:], '{')
			if end < 0 || (open >= 0 && open < end) {
				// unclosed, or another { before the }
				if open >= 0 && (end < 0 || open < end) {
					return s[i : i+1+open]
				}
				return s[i:]
			}
			token := s[i : i+2+end]
			if !allDigits(s[i+1 : i+1+end]) {
				return token
			}
			i += end + 1
		case '}':
			return "}"
		}
	}
	return emptyString
}

func allDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
