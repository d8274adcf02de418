// Package optypes defines OpType and lists the operators known to the GL delegate.
package optypes

import (
	"fmt"

	"github.com/gomlx/glshaders/internal/utils"
)

// OpType is an enum of the graph operators the GL delegate knows about -- not all of them have
// a kernel generator yet, see glshaders.Registry.
type OpType int

//go:generate go tool enumer -type=OpType optypes.go

const (
	Invalid OpType = iota
	Add
	Concat
	Mean
	Mul
	Pad
	Relu
	Reshape
	Softmax

	// Last should always be kept the last, it is used as a counter/marker for .
	Last
)

// KernelName returns the name used to label generated kernels of the operation, e.g. "gl_mean".
func (op OpType) KernelName() string {
	return fmt.Sprintf("gl_%s", utils.ToSnakeCase(op.String()))
}
