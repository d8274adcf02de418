package glshaders

import (
	"strings"
	"testing"

	"github.com/gomlx/glshaders/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParameters(t *testing.T) {
	params := []Variable{
		{Name: "h", Value: 3},
		{Name: "scale", Value: float32(2)},
		{Name: "grid", Value: types.Uint3{X: 4, Y: 2, Z: 1}},
	}
	resolved, err := ResolveParameters("int a = $h$ * $h$; float s = $scale$; uvec3 g = $grid$; vec4 v = $input_data_0[a, 0, gid.z]$;", params)
	require.NoError(t, err)
	assert.Equal(t, "int a = 3 * 3; float s = 2.0; uvec3 g = uvec3(4u, 2u, 1u); vec4 v = $input_data_0[a, 0, gid.z]$;", resolved)

	resolved, err = ResolveParameters("no placeholders", nil)
	require.NoError(t, err)
	assert.Equal(t, "no placeholders", resolved)

	_, err = ResolveParameters("int a = $w$;", params)
	assert.ErrorContains(t, err, "no parameter for placeholder $w$")

	_, err = ResolveParameters("int a = $h;", params)
	assert.ErrorContains(t, err, "unterminated")

	_, err = ResolveParameters("$h$", []Variable{{Name: "h", Value: "three"}})
	assert.Error(t, err)

	_, err = ResolveParameters("$0h$", []Variable{{Name: "0h", Value: 1}})
	assert.ErrorContains(t, err, "not a valid identifier")
	assert.Equal(t, "_0h", NormalizeIdentifier("0h"))
}

func TestVariable(t *testing.T) {
	assert.Equal(t, "x=3", Variable{Name: "x", Value: 3}.String())
	literal, err := Variable{Name: "f", Value: float32(0.5)}.ToGLSL()
	require.NoError(t, err)
	assert.Equal(t, "0.5", literal)
	literal, err = Variable{Name: "f", Value: float32(1024)}.ToGLSL()
	require.NoError(t, err)
	assert.Equal(t, "1024.0", literal)

	var sb strings.Builder
	require.NoError(t, SharedVariable{Name: "sums", NumElements: 4}.Write(&sb, "  "))
	assert.Equal(t, "  shared vec4 sums[4];", sb.String())
	assert.Error(t, SharedVariable{Name: "partial sums", NumElements: 4}.Write(&sb, ""))
}
