// Package shapeinference reads the shapes of a node's inputs and calculates the shapes
// resulting from operations, validating their inputs.
package shapeinference

import (
	"github.com/gomlx/glshaders/graph"
	"github.com/gomlx/glshaders/types"
	"github.com/gomlx/glshaders/types/shapes"
	"github.com/pkg/errors"
)

// InputShape returns the shape of the single input feeding node.
//
// The graph builder guarantees the input exists: a node without inputs is a programming
// error, and InputShape panics.
func InputShape(g graph.Graph, node *graph.Node) shapes.Shape {
	inputs := g.FindInputs(node.ID)
	if len(inputs) == 0 {
		panic(errors.Errorf("%s has no inputs", node))
	}
	return inputs[0].Tensor.Shape
}

// Mean returns the output shape of a mean reduction over the given axes of a BHWC input.
// The reduced axes are kept with dimension 1, and the output is always rank 4.
func Mean(input shapes.Shape, dims types.AxisSet) (output shapes.Shape, err error) {
	if !input.Ok() {
		return shapes.Invalid(), errors.New("Mean: input shape is invalid")
	}
	if !input.DType.IsFloat() {
		return shapes.Invalid(), errors.Errorf("Mean: input must be a float tensor, got %s", input)
	}
	if input.Rank() > 4 {
		return shapes.Invalid(), errors.Errorf("Mean: input must have rank <= 4 (BHWC), got %s", input)
	}
	if len(dims) == 0 {
		return shapes.Invalid(), errors.New("Mean: requires at least one axis to reduce")
	}
	bhwc := []types.Axis{types.AxisBatch, types.AxisHeight, types.AxisWidth, types.AxisChannels}
	unknown := dims.Sub(types.NewAxisSet(bhwc...))
	if len(unknown) > 0 {
		return shapes.Invalid(), errors.Errorf("Mean: axes %v are not BHWC axes", unknown)
	}
	dimensions := make([]int, len(bhwc))
	for i, axis := range bhwc {
		if dims.Has(axis) {
			// Reduced axes are kept with dimension 1.
			dimensions[i] = 1
			continue
		}
		dimensions[i] = input.AxisDim(axis)
	}
	return shapes.Make(input.DType, dimensions...), nil
}
