package utils

import (
	"strings"
	"unicode"
)

// glslReservedPrefix starts the names of the built-in GLSL variables and functions.
const glslReservedPrefix = "gl_"

func isIdentifierRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// IsIdentifier returns whether name can be used as is as a GLSL identifier (and as a
// `$name$` placeholder of the generated source).
func IsIdentifier(name string) bool {
	return name != "" && NormalizeIdentifier(name) == name
}

// NormalizeIdentifier converts name to a valid GLSL identifier: only ASCII letters, digits and
// underscores are kept, everything else becomes an underscore.
//
// Names starting with a digit or with the reserved "gl_" prefix get an extra leading underscore,
// and runs of underscores are collapsed, since GLSL ES reserves identifiers containing "__".
func NormalizeIdentifier(name string) string {
	if name == "" {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(name) + 1)
	if (name[0] >= '0' && name[0] <= '9') || strings.HasPrefix(name, glslReservedPrefix) {
		sb.WriteByte('_')
	}
	var last rune
	if sb.Len() > 0 {
		last = '_'
	}
	for _, r := range name {
		if !isIdentifierRune(r) {
			r = '_'
		}
		if r == '_' && last == '_' {
			continue
		}
		sb.WriteRune(r)
		last = r
	}
	return sb.String()
}

// ToSnakeCase converts a CamelCase name to snake_case. Acronyms are kept together:
// "ReLUActivation" becomes "re_lu_activation" but "PReLU" becomes "p_re_lu".
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			sb.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] != '_' {
			prevLower := !unicode.IsUpper(runes[i-1])
			endsAcronym := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || endsAcronym {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	return sb.String()
}
