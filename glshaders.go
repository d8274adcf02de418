// Package glshaders generates GLSL compute-kernel code for the operators of a model graph, to be
// compiled and dispatched by an OpenGL ES 3.1 backend.
//
// Among its features:
//
//   - One NodeShader per operator type, looked up in a Registry.
//   - Kernels are emitted as source text with $placeholder$ tokens, plus the parameters
//     to substitute, the shared memory to declare and the dispatch geometry.
//   - Written purely in Go: compiling and running the kernels is left to the backend.
//
// Currently only MEAN over the height and width axes is implemented, see NewMeanNodeShader.
package glshaders

import "github.com/gomlx/glshaders/internal/utils"

// NormalizeIdentifier converts name to a valid GLSL identifier, usable as a parameter or shared
// variable name: invalid characters become underscores, runs of underscores are collapsed and
// names starting with a digit or "gl_" are prefixed with an underscore.
func NormalizeIdentifier(name string) string {
	return utils.NormalizeIdentifier(name)
}
