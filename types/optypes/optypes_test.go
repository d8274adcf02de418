package optypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpType(t *testing.T) {
	assert.Equal(t, "Mean", Mean.String())
	assert.Equal(t, "gl_mean", Mean.KernelName())
	assert.Equal(t, "gl_softmax", Softmax.KernelName())
	assert.True(t, Reshape.IsAOpType())
	assert.Equal(t, "OpType(100)", OpType(100).String())
	op, err := OpTypeString("mean")
	assert.NoError(t, err)
	assert.Equal(t, Mean, op)
}
