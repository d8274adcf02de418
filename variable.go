package glshaders

import (
	"fmt"
	"io"

	"github.com/gomlx/glshaders/internal/utils"
	"github.com/gomlx/glshaders/types"
	"github.com/pkg/errors"
)

// Variable is a named parameter substituted by the backend wherever `$Name$` appears in the
// kernel source. Value is an int, a float32 or a types.Uint3.
type Variable struct {
	Name  string
	Value any
}

// ToGLSL returns the GLSL literal of the variable's value.
func (v Variable) ToGLSL() (string, error) {
	switch value := v.Value.(type) {
	case int:
		return fmt.Sprintf("%d", value), nil
	case int32:
		return fmt.Sprintf("%d", value), nil
	case float32:
		return literalFloat(float64(value)), nil
	case types.Uint3:
		return value.ToGLSL(), nil
	default:
		return "", errors.Errorf("parameter %q has unsupported value type %T", v.Name, v.Value)
	}
}

// String implements fmt.Stringer.
func (v Variable) String() string {
	return fmt.Sprintf("%s=%v", v.Name, v.Value)
}

// SharedVariable declares an array of vec4 in workgroup shared memory. Its contents only
// live while a workgroup executes.
type SharedVariable struct {
	Name        string
	NumElements int

	// Precision qualifier of the elements. The backend must emit it in the declaration.
	Precision types.Precision
}

// Write writes the GLSL declaration of the shared variable to the given writer.
func (s SharedVariable) Write(w io.Writer, indentation string) error {
	if !utils.IsIdentifier(s.Name) {
		return errors.Errorf("shared variable name %q is not a valid identifier, see NormalizeIdentifier", s.Name)
	}
	qualifier := s.Precision.ToGLSL()
	if qualifier != "" {
		qualifier += " "
	}
	_, err := fmt.Fprintf(w, "%sshared %svec4 %s[%d];", indentation, qualifier, s.Name, s.NumElements)
	return err
}

// literalFloat formats f so that GLSL parses it as a float, always with a decimal point.
func literalFloat(f float64) string {
	s := fmt.Sprintf("%g", f)
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'n' || r == 'N' {
			return s
		}
	}
	return s + ".0"
}
