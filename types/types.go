// Package types defines the attribute and dispatch types shared by the kernel generators.
package types

import (
	"fmt"

	"github.com/gomlx/glshaders/internal/utils"
)

// Axis identifies a logical axis of a BHWC tensor.
type Axis int

//go:generate go tool enumer -type=Axis -trimprefix=Axis -output=gen_axis_enumer.go types.go

const (
	AxisUnknown Axis = iota
	AxisBatch
	AxisHeight
	AxisWidth
	AxisChannels
)

// AxisSet is a set of axes, as used by reduction attributes.
type AxisSet = utils.Set[Axis]

// NewAxisSet creates an AxisSet with the given axes.
func NewAxisSet(axes ...Axis) AxisSet {
	return utils.SetWith(axes...)
}

// MeanAttributes are the attributes of the MEAN operator: the axes being reduced.
type MeanAttributes struct {
	Dims AxisSet
}

// Uint3 is a 3-tuple of extents, used for workloads and workgroups.
type Uint3 struct {
	X, Y, Z int
}

// Volume returns X*Y*Z.
func (u Uint3) Volume() int {
	return u.X * u.Y * u.Z
}

// String implements fmt.Stringer.
func (u Uint3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", u.X, u.Y, u.Z)
}

// ToGLSL returns the uvec3 literal of the tuple.
func (u Uint3) ToGLSL() string {
	return fmt.Sprintf("uvec3(%du, %du, %du)", u.X, u.Y, u.Z)
}

// IOStructure defines how a kernel's inputs or outputs are bound by the backend.
type IOStructure int

//go:generate go tool enumer -type=IOStructure -trimprefix=IO -output=gen_iostructure_enumer.go types.go

const (
	// IOOnlyDefinitions only declares the tensor types and shapes: the kernel reads
	// elements explicitly through the indexed accessor.
	IOOnlyDefinitions IOStructure = iota

	// IOAuto fully binds the tensor: the backend writes value_0 into the element at gid.
	IOAuto
)

// Precision is a GLSL floating point precision qualifier.
type Precision int

//go:generate go tool enumer -type=Precision -trimprefix=Precision -output=gen_precision_enumer.go types.go

const (
	// PrecisionDefault uses whatever precision the shader declares globally.
	PrecisionDefault Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh
)

// ToGLSL returns the qualifier keyword, or "" for PrecisionDefault.
func (p Precision) ToGLSL() string {
	switch p {
	case PrecisionLow:
		return "lowp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionHigh:
		return "highp"
	default:
		return ""
	}
}
