package gpusim

import (
	"github.com/gomlx/glshaders/types"
	"github.com/x448/float16"
)

// Vec4 is the 4-wide float vector holding one channel group.
type Vec4 [4]float32

// arithmetic rounds every result to the storage of a GLSL precision qualifier.
type arithmetic struct {
	round func(float32) float32
}

func newArithmetic(precision types.Precision) arithmetic {
	switch precision {
	case types.PrecisionMedium, types.PrecisionLow:
		// mediump (and lowp) floats may be stored as IEEE half precision.
		return arithmetic{round: func(f float32) float32 {
			return float16.Fromfloat32(f).Float32()
		}}
	default:
		return arithmetic{round: func(f float32) float32 { return f }}
	}
}

func (a arithmetic) add(x, y Vec4) Vec4 {
	for i := range x {
		x[i] = a.round(x[i] + y[i])
	}
	return x
}

func (a arithmetic) div(x Vec4, d float32) Vec4 {
	d = a.round(d)
	for i := range x {
		x[i] = a.round(x[i] / d)
	}
	return x
}

func (a arithmetic) load(v Vec4) Vec4 {
	for i := range v {
		v[i] = a.round(v[i])
	}
	return v
}
