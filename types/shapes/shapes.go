// Package shapes defines Shape, the dtype and dimensions of the tensors flowing through a graph.
//
// Tensors handled by the GL delegate use the BHWC layout: batch, height, width and channels.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/glshaders/types"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Shape of a tensor: its DType and Dimensions.
//
// Shapes are owned by the graph: generators only read them.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Make returns a Shape structure filled with the values given.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{Dimensions: slices.Clone(dimensions), DType: dtype}
	for _, dim := range dimensions {
		if dim < 0 {
			panic(errors.Errorf("shapes.Make(%s): cannot create a shape with a negative axis dimension", s))
		}
	}
	return s
}

// MakeBHWC returns a rank-4 Shape in BHWC layout.
func MakeBHWC(dtype dtypes.DType, batch, height, width, channels int) Shape {
	return Make(dtype, batch, height, width, channels)
}

// Invalid returns an invalid shape.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape.
func (s Shape) Ok() bool {
	return s.DType != dtypes.InvalidDType
}

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int {
	return len(s.Dimensions)
}

// IsScalar returns whether the shape represents a scalar.
func (s Shape) IsScalar() bool {
	return s.Ok() && len(s.Dimensions) == 0
}

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
//
// It panics if axis is out of range.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		panic(errors.Errorf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s))
	}
	return s.Dimensions[adjustedAxis]
}

// AxisDim returns the dimension of the logical BHWC axis.
// Missing leading axes (rank < 4) are taken to be 1, so an HWC shape has batch 1.
func (s Shape) AxisDim(axis types.Axis) int {
	var fromEnd int
	switch axis {
	case types.AxisBatch:
		fromEnd = 4
	case types.AxisHeight:
		fromEnd = 3
	case types.AxisWidth:
		fromEnd = 2
	case types.AxisChannels:
		fromEnd = 1
	default:
		panic(errors.Errorf("Shape.AxisDim(%s) not defined for BHWC shapes", axis))
	}
	if fromEnd > s.Rank() {
		return 1
	}
	return s.Dimensions[s.Rank()-fromEnd]
}

// B returns the batch dimension.
func (s Shape) B() int { return s.AxisDim(types.AxisBatch) }

// H returns the height dimension.
func (s Shape) H() int { return s.AxisDim(types.AxisHeight) }

// W returns the width dimension.
func (s Shape) W() int { return s.AxisDim(types.AxisWidth) }

// C returns the channels dimension.
func (s Shape) C() int { return s.AxisDim(types.AxisChannels) }

// Size returns the number of elements of DType needed for this shape.
func (s Shape) Size() int {
	size := 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return size
}

// Memory returns the number of bytes used to store a tensor of this shape.
func (s Shape) Memory() uintptr {
	return uintptr(s.DType.Size() * s.Size())
}

// Equal compares two shapes for equality: dtype and dimensions are compared.
func (s Shape) Equal(s2 Shape) bool {
	return s.DType == s2.DType && slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Check that the shape has the given dtype and dimensions.
func (s Shape) Check(dtype dtypes.DType, dimensions ...int) error {
	if s.DType != dtype || !slices.Equal(s.Dimensions, dimensions) {
		return errors.Errorf("shape %s doesn't match (%s)%v", s, dtype, dimensions)
	}
	return nil
}

// String implements fmt.Stringer, e.g. "(Float32)[1 2 2 4]".
func (s Shape) String() string {
	if !s.Ok() {
		return "(Invalid)"
	}
	if len(s.Dimensions) == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	parts := make([]string, len(s.Dimensions))
	for i, d := range s.Dimensions {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(parts, " "))
}
