package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FromAnyValue returns the shape of a Go value holding tensor data: a scalar of a supported
// type or nested slices of it, with the outermost slice as the first axis. Nested slices
// must be regular, and at most 4 levels deep (BHWC).
//
// Example:
//
//	shape, err := shapes.FromAnyValue([][][]float32{{{1, 2, 3, 4}}}) // (Float32)[1 1 4], an HWC image.
func FromAnyValue(v any) (Shape, error) {
	if v == nil {
		return Invalid(), errors.New("FromAnyValue(nil)")
	}
	shape, err := shapeOfValue(reflect.ValueOf(v))
	if err != nil {
		return Invalid(), err
	}
	if shape.Rank() > 4 {
		return Invalid(), errors.Errorf("value of type %T has rank %d, at most 4 (BHWC) axes are supported", v, shape.Rank())
	}
	return shape, nil
}

// shapeOfValue returns the shape of v, checking that all sub-slices agree with the first one.
func shapeOfValue(v reflect.Value) (Shape, error) {
	if v.Kind() != reflect.Slice {
		dtype := dtypes.FromGoType(v.Type())
		if dtype == dtypes.InvalidDType {
			return Invalid(), errors.Errorf("type %s is not a supported tensor element type", v.Type())
		}
		return Make(dtype), nil
	}
	if v.Len() == 0 {
		// The inner dimensions of an empty slice are unknown.
		return Invalid(), errors.Errorf("empty slice of type %s has no shape", v.Type())
	}
	inner, err := shapeOfValue(v.Index(0))
	if err != nil {
		return Invalid(), err
	}
	for i := 1; i < v.Len(); i++ {
		other, err := shapeOfValue(v.Index(i))
		if err != nil {
			return Invalid(), err
		}
		if !inner.Equal(other) {
			return Invalid(), errors.Errorf("irregular sub-slices of type %s: element 0 has shape %s, element %d has shape %s",
				v.Type(), inner, i, other)
		}
	}
	return Make(inner.DType, append([]int{v.Len()}, inner.Dimensions...)...), nil
}
