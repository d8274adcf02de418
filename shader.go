package glshaders

import (
	"github.com/gomlx/glshaders/graph"
	"github.com/gomlx/glshaders/types/optypes"
	"github.com/pkg/errors"
)

// GenerationContext is what a NodeShader needs to generate the code for one node.
type GenerationContext struct {
	Node  *graph.Node
	Graph graph.Graph
}

// NodeShader generates the kernel code for nodes of one operator type.
type NodeShader interface {
	// GenerateCode for the node in ctx. It returns an error wrapping ErrInvalidArgument
	// if the node's attributes are not supported.
	GenerateCode(ctx GenerationContext) (*GeneratedCode, error)
}

// Registry holds the NodeShader for each supported operator type.
type Registry struct {
	shaders map[optypes.OpType]NodeShader
}

// NewRegistry creates a Registry with all the generators implemented in this package,
// configured with config.
func NewRegistry(config Config) (*Registry, error) {
	r := &Registry{shaders: make(map[optypes.OpType]NodeShader)}
	mean, err := NewMeanNodeShader(config)
	if err != nil {
		return nil, err
	}
	r.Register(optypes.Mean, mean)
	return r, nil
}

// Register sets the NodeShader for opType, replacing any previous one.
func (r *Registry) Register(opType optypes.OpType, shader NodeShader) {
	r.shaders[opType] = shader
}

// Lookup returns the NodeShader registered for opType.
func (r *Registry) Lookup(opType optypes.OpType) (shader NodeShader, found bool) {
	shader, found = r.shaders[opType]
	return
}

// GenerateCode dispatches to the NodeShader of the node's operator type.
// It returns an error wrapping ErrUnimplemented if there is none.
func (r *Registry) GenerateCode(ctx GenerationContext) (*GeneratedCode, error) {
	opType := ctx.Node.Operation.Type
	shader, found := r.Lookup(opType)
	if !found {
		return nil, errors.WithMessagef(ErrUnimplemented, "no kernel generator for operator %s", opType)
	}
	return shader.GenerateCode(ctx)
}
