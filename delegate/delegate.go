// Package delegate wraps the kernel generators with the lifecycle a host inference engine
// expects from a delegate plugin: creation from a flat option list, an error reporting
// callback, preparation of the nodes it claims and destruction.
//
// Lifecycle diagnostics are counted in a Counters object owned by the caller.
package delegate

import (
	"sync/atomic"

	"github.com/gomlx/glshaders"
	"github.com/gomlx/glshaders/graph"
	"github.com/gomlx/glshaders/internal/utils"
	"github.com/gomlx/glshaders/shapeinference"
	"github.com/gomlx/glshaders/types"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrorHandler is called with every error a Delegate reports to the host.
type ErrorHandler func(err error)

// Counters of lifecycle events, for diagnostics. The zero value is ready to use and it is
// safe for concurrent use.
type Counters struct {
	// Created and Destroyed count calls to Create and Destroy.
	Created, Destroyed atomic.Int64

	// Invoked counts calls to Delegate.Prepare.
	Invoked atomic.Int64

	// Options counts the options parsed by Create.
	Options atomic.Int64
}

// Delegate generates the kernels for the nodes a host hands to it.
type Delegate struct {
	config   glshaders.Config
	registry *glshaders.Registry
	onError  ErrorHandler
	counters *Counters
}

// Create a Delegate configured by the given option keys and values (see ParseOptions).
// onError and counters can be nil.
//
// Invalid options are reported to onError and returned.
func Create(keys, values []string, onError ErrorHandler, counters *Counters) (*Delegate, error) {
	if counters == nil {
		counters = &Counters{}
	}
	d := &Delegate{onError: onError, counters: counters}
	config, err := ParseOptions(keys, values)
	if err != nil {
		return nil, d.report(err)
	}
	d.config = config
	d.registry, err = glshaders.NewRegistry(config)
	if err != nil {
		return nil, d.report(err)
	}
	counters.Options.Add(int64(len(keys)))
	counters.Created.Add(1)
	klog.V(1).Infof("delegate created with %d options: %+v", len(keys), config)
	return d, nil
}

// Destroy releases the delegate. It is a no-op for a nil delegate.
// counters, if not nil, receives the destruction count, otherwise the ones given to Create are used.
func Destroy(d *Delegate, counters *Counters) {
	if d == nil {
		return
	}
	if counters == nil {
		counters = d.counters
	}
	counters.Destroyed.Add(1)
	d.registry = nil
	klog.V(1).Info("delegate destroyed")
}

// Config returns the configuration the delegate was created with.
func (d *Delegate) Config() glshaders.Config {
	return d.config
}

// Counters returns the counters the delegate updates.
func (d *Delegate) Counters() *Counters {
	return d.counters
}

// Prepare generates the code of each of the nodes, in order.
//
// Generation stops at the first failing node: the error is reported to the ErrorHandler and
// returned, annotated with the node.
func (d *Delegate) Prepare(g graph.Graph, nodes []*graph.Node) ([]*glshaders.GeneratedCode, error) {
	if d.registry == nil {
		return nil, d.report(errors.New("Prepare called on a destroyed delegate"))
	}
	d.counters.Invoked.Add(1)
	codes := make([]*glshaders.GeneratedCode, 0, len(nodes))
	for _, node := range nodes {
		if err := checkInputTypes(g, node); err != nil {
			return nil, d.report(err)
		}
		code, err := d.registry.GenerateCode(glshaders.GenerationContext{Node: node, Graph: g})
		if err != nil {
			return nil, d.report(errors.WithMessagef(err, "generating code for %s", node))
		}
		if err := d.checkOutputShape(g, node); err != nil {
			return nil, d.report(err)
		}
		klog.V(1).Infof("generated %s: workload=%s workgroup=%s", node, code.Workload, code.Workgroup)
		codes = append(codes, code)
	}
	return codes, nil
}

// checkInputTypes verifies that the inputs of node are stored as float textures, read as vec4 by the kernels.
func checkInputTypes(g graph.Graph, node *graph.Node) error {
	for i, input := range g.FindInputs(node.ID) {
		dtype := input.Tensor.Shape.DType
		if vec := utils.DTypeToGLSLVec4(dtype); vec != "vec4" {
			return errors.Errorf("%s: input #%d of dtype %s would be read as %s, only float tensors are supported",
				node, i, dtype, vec)
		}
	}
	return nil
}

// checkOutputShape verifies that the output registered for a mean node matches its inferred shape.
// Other operators, and nodes without registered outputs, are not checked.
func (d *Delegate) checkOutputShape(g graph.Graph, node *graph.Node) error {
	attributes, ok := node.Operation.Attributes.(types.MeanAttributes)
	if !ok {
		if ptr, isPtr := node.Operation.Attributes.(*types.MeanAttributes); isPtr && ptr != nil {
			attributes, ok = *ptr, true
		}
	}
	outputs := g.FindOutputs(node.ID)
	if !ok || len(outputs) == 0 || len(g.FindInputs(node.ID)) == 0 {
		return nil
	}
	want, err := shapeinference.Mean(shapeinference.InputShape(g, node), attributes.Dims)
	if err != nil {
		return errors.WithMessagef(err, "%s", node)
	}
	if got := outputs[0].Tensor.Shape; !got.Equal(want) {
		return errors.Errorf("%s: output shape %s doesn't match the inferred %s", node, got, want)
	}
	return nil
}

func (d *Delegate) report(err error) error {
	if d.onError != nil {
		d.onError(err)
	}
	return err
}
