package glshaders

import (
	"strings"

	"github.com/gomlx/glshaders/internal/utils"
	"github.com/pkg/errors"
)

// ResolveParameters substitutes the `$name$` tokens of source with the values of params, the way
// the backend does before compiling a kernel. It is a pure function.
//
// Object accessors, tokens with an index like `$input_data_0[x, y, z]$`, are left untouched:
// they are resolved by the backend against the tensors' memory layout.
//
// It returns an error if a token has no matching parameter or is not terminated.
func ResolveParameters(source string, params []Variable) (string, error) {
	values := make(map[string]string, len(params))
	for _, param := range params {
		if !utils.IsIdentifier(param.Name) {
			return "", errors.Errorf("parameter name %q is not a valid identifier, see NormalizeIdentifier", param.Name)
		}
		literal, err := param.ToGLSL()
		if err != nil {
			return "", err
		}
		values[param.Name] = literal
	}

	var resolved strings.Builder
	resolved.Grow(len(source))
	rest := source
	for {
		start := strings.IndexByte(rest, '$')
		if start < 0 {
			resolved.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+1:], '$')
		if end < 0 {
			return "", errors.Errorf("unterminated placeholder at %q", rest[start:])
		}
		end += start + 1
		name := rest[start+1 : end]
		resolved.WriteString(rest[:start])
		if strings.ContainsRune(name, '[') {
			resolved.WriteString(rest[start : end+1])
		} else {
			literal, found := values[name]
			if !found {
				return "", errors.Errorf("no parameter for placeholder $%s$", name)
			}
			resolved.WriteString(literal)
		}
		rest = rest[end+1:]
	}
	return resolved.String(), nil
}
