// Package graph defines the narrow view of the model graph that kernel generators consume:
// nodes with their operation, and the values (tensors) flowing between them.
//
// The delegate's own graph representation implements Graph. Model is a small in-memory
// implementation used by tools and tests.
package graph

import (
	"fmt"

	"github.com/gomlx/glshaders/types/optypes"
	"github.com/gomlx/glshaders/types/shapes"
	"github.com/pkg/errors"
)

// Operation of a node: its type and type-specific attributes (e.g. types.MeanAttributes).
type Operation struct {
	Type       optypes.OpType
	Attributes any
}

// Node of the graph.
type Node struct {
	ID        int
	Operation Operation
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("node#%d(%s)", n.ID, n.Operation.Type)
}

// Tensor describes the data of a Value. Only the shape is needed for code generation.
type Tensor struct {
	Shape shapes.Shape
}

// Value is a tensor edge of the graph.
type Value struct {
	ID     int
	Tensor Tensor
}

// Graph is the read-only interface generators use to find the inputs of a node.
type Graph interface {
	// FindInputs returns the values consumed by the node, in order.
	FindInputs(nodeID int) []*Value

	// FindOutputs returns the values produced by the node, in order.
	FindOutputs(nodeID int) []*Value
}

// Model is an in-memory Graph.
type Model struct {
	nodes   []*Node
	values  []*Value
	inputs  map[int][]*Value
	outputs map[int][]*Value
}

var _ Graph = (*Model)(nil)

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{
		inputs:  make(map[int][]*Value),
		outputs: make(map[int][]*Value),
	}
}

// NewValue adds a new value with the given shape.
func (m *Model) NewValue(shape shapes.Shape) *Value {
	v := &Value{ID: len(m.values), Tensor: Tensor{Shape: shape}}
	m.values = append(m.values, v)
	return v
}

// NewNode adds a new node with the given operation.
func (m *Model) NewNode(opType optypes.OpType, attributes any) *Node {
	n := &Node{ID: len(m.nodes), Operation: Operation{Type: opType, Attributes: attributes}}
	m.nodes = append(m.nodes, n)
	return n
}

// AddConsumer registers value as the next input of node.
func (m *Model) AddConsumer(nodeID, valueID int) error {
	if nodeID < 0 || nodeID >= len(m.nodes) {
		return errors.Errorf("unknown node id %d", nodeID)
	}
	if valueID < 0 || valueID >= len(m.values) {
		return errors.Errorf("unknown value id %d", valueID)
	}
	m.inputs[nodeID] = append(m.inputs[nodeID], m.values[valueID])
	return nil
}

// SetProducer registers value as the next output of node.
func (m *Model) SetProducer(nodeID, valueID int) error {
	if nodeID < 0 || nodeID >= len(m.nodes) {
		return errors.Errorf("unknown node id %d", nodeID)
	}
	if valueID < 0 || valueID >= len(m.values) {
		return errors.Errorf("unknown value id %d", valueID)
	}
	m.outputs[nodeID] = append(m.outputs[nodeID], m.values[valueID])
	return nil
}

// Nodes returns all nodes, in creation order.
func (m *Model) Nodes() []*Node {
	return m.nodes
}

// FindInputs implements Graph.
func (m *Model) FindInputs(nodeID int) []*Value {
	return m.inputs[nodeID]
}

// FindOutputs implements Graph.
func (m *Model) FindOutputs(nodeID int) []*Value {
	return m.outputs[nodeID]
}
