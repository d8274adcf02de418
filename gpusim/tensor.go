package gpusim

import (
	"github.com/gomlx/glshaders/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Tensor is a float32 tensor in BHWC layout with batch 1, stored densely.
type Tensor struct {
	Shape shapes.Shape
	Flat  []float32
}

// NewTensor returns a zero-filled tensor of the given shape.
func NewTensor(shape shapes.Shape) *Tensor {
	return &Tensor{Shape: shape, Flat: make([]float32, shape.Size())}
}

// Full returns a tensor of the given shape with all elements set to value.
func Full(shape shapes.Shape, value float32) *Tensor {
	t := NewTensor(shape)
	for i := range t.Flat {
		t.Flat[i] = value
	}
	return t
}

// FromHWC creates a tensor from values indexed as [height][width][channel].
// All rows and pixels must have the same length.
func FromHWC(values [][][]float32) (*Tensor, error) {
	shape, err := shapes.FromAnyValue(values)
	if err != nil {
		return nil, errors.WithMessage(err, "gpusim.FromHWC")
	}
	t := NewTensor(shapes.MakeBHWC(dtypes.Float32, 1, shape.H(), shape.W(), shape.C()))
	i := 0
	for _, row := range values {
		for _, pixel := range row {
			i += copy(t.Flat[i:], pixel)
		}
	}
	return t, nil
}

// At returns the element at (y, x, c).
func (t *Tensor) At(y, x, c int) float32 {
	return t.Flat[(y*t.Shape.W()+x)*t.Shape.C()+c]
}

// load reads the channel group at (x, y): channels past the last one read as 0, as with the
// padded textures used by the backend.
func (t *Tensor) load(x, y, group int) Vec4 {
	var v Vec4
	channels := t.Shape.C()
	for i := range v {
		c := group*4 + i
		if c < channels {
			v[i] = t.At(y, x, c)
		}
	}
	return v
}

// ReferenceMean returns the mean over height and width of each channel, accumulated in float64.
func ReferenceMean(t *Tensor) []float64 {
	h, w, c := t.Shape.H(), t.Shape.W(), t.Shape.C()
	means := make([]float64, c)
	for y := range h {
		for x := range w {
			for ch := range c {
				means[ch] += float64(t.At(y, x, ch))
			}
		}
	}
	for ch := range means {
		means[ch] /= float64(h * w)
	}
	return means
}
