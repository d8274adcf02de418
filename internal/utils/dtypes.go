package utils

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

// DTypeToGLSL returns the GLSL scalar type used to hold values of dtype in a kernel.
//
// Half precision types are widened to "float": precision is controlled by qualifiers
// (highp, mediump), not by the type name.
func DTypeToGLSL(dtype dtypes.DType) string {
	switch dtype {
	case dtypes.Float32, dtypes.Float16, dtypes.BFloat16:
		return "float"
	case dtypes.Int32, dtypes.Int16, dtypes.Int8:
		return "int"
	case dtypes.Uint32, dtypes.Uint16, dtypes.Uint8:
		return "uint"
	case dtypes.Bool:
		return "bool"
	default:
		return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
	}
}

// DTypeToGLSLVec4 returns the 4-wide GLSL vector type for dtype, used for channel groups.
func DTypeToGLSLVec4(dtype dtypes.DType) string {
	switch DTypeToGLSL(dtype) {
	case "float":
		return "vec4"
	case "int":
		return "ivec4"
	case "uint":
		return "uvec4"
	case "bool":
		return "bvec4"
	default:
		return fmt.Sprintf("unknown_vec4<%s>", dtype.String())
	}
}
