package gpusim

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gomlx/glshaders"
	"github.com/gomlx/glshaders/types"
	"github.com/gomlx/glshaders/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bhwc(h, w, c int) shapes.Shape {
	return shapes.MakeBHWC(dtypes.Float32, 1, h, w, c)
}

// randomTensor returns a tensor with values uniformly distributed in [0.5, 1.5).
func randomTensor(shape shapes.Shape, seed uint64) *Tensor {
	rng := rand.New(rand.NewPCG(seed, 17))
	t := NewTensor(shape)
	for i := range t.Flat {
		t.Flat[i] = 0.5 + rng.Float32()
	}
	return t
}

func runMean(t *testing.T, device *Device, config glshaders.Config, input *Tensor) *Result {
	t.Helper()
	plan := glshaders.PlanMean(config, input.Shape.H(), input.Shape.W(), input.Shape.C())
	return must.M1(device.RunMean(context.Background(), plan, input))
}

// requireRelativeError checks every channel of got against want.
func requireRelativeError(t *testing.T, want []float64, got *Tensor, tolerance float64) {
	t.Helper()
	require.Len(t, got.Flat, len(want))
	for ch, w := range want {
		relErr := math.Abs(float64(got.Flat[ch])-w) / math.Abs(w)
		require.LessOrEqual(t, relErr, tolerance, "channel %d: got %g, want %g", ch, got.Flat[ch], w)
	}
}

func TestRunMean_Scenarios(t *testing.T) {
	device := &Device{}
	config := glshaders.DefaultConfig()

	t.Run("2x2x4 of ones", func(t *testing.T) {
		result := runMean(t, device, config, Full(bhwc(2, 2, 4), 1))
		assert.Nil(t, result.PartialSums, "small inputs use the serial strategy")
		require.NoError(t, result.Output.Shape.Check(dtypes.Float32, 1, 1, 1, 4))
		assert.Equal(t, []float32{1, 1, 1, 1}, result.Output.Flat)
	})

	t.Run("64x64x8 of threes", func(t *testing.T) {
		result := runMean(t, device, config, Full(bhwc(64, 64, 8), 3))
		require.Len(t, result.PartialSums, 1)
		assert.Len(t, result.PartialSums[0], 128)
		require.NoError(t, result.Output.Shape.Check(dtypes.Float32, 1, 1, 1, 8))
		for ch, v := range result.Output.Flat {
			assert.Equal(t, float32(3), v, "channel %d", ch)
		}
	})
}

func TestRunMean_PartitionSum(t *testing.T) {
	device := &Device{}
	parallelConfig := glshaders.DefaultConfig()
	serialConfig := parallelConfig
	serialConfig.SerialThreshold = math.MaxInt32

	// 33*33 = 1089 positions don't split evenly across 64 invocations.
	input := randomTensor(bhwc(33, 33, 6), 1)
	parallel := runMean(t, device, parallelConfig, input)
	serial := runMean(t, device, serialConfig, input)
	require.NotNil(t, parallel.PartialSums)
	require.Nil(t, serial.PartialSums)
	requireRelativeError(t, ReferenceMean(input), parallel.Output, 1e-5)
	requireRelativeError(t, ReferenceMean(input), serial.Output, 1e-5)
	for ch := range parallel.Output.Flat {
		assert.InEpsilon(t, serial.Output.Flat[ch], parallel.Output.Flat[ch], 1e-5)
	}

	// The output is the sum of the partial sums divided by the size once.
	shared := parallel.PartialSums[0]
	for ch := range 6 {
		group, lane := ch/4, ch%4
		var total float32
		for i := range 64 {
			total += shared[group*64+i][lane]
		}
		assert.Equal(t, total/float32(33*33), parallel.Output.Flat[ch])
	}

	// 10^4 unit-magnitude terms.
	input = randomTensor(bhwc(100, 100, 4), 2)
	requireRelativeError(t, ReferenceMean(input), runMean(t, device, parallelConfig, input).Output, 1e-5)
}

func TestRunMean_OutOfRangeContributesZero(t *testing.T) {
	// 1089 positions in chunks of 18: invocations 0-59 get full chunks, invocation 60 gets the
	// last 9 positions and invocations 61-63 only see positions past the end.
	plan := glshaders.PlanMean(glshaders.DefaultConfig(), 33, 33, 4)
	require.Equal(t, glshaders.StrategyParallel, plan.Strategy)
	require.Equal(t, 18, plan.ChunkSize)
	require.NotZero(t, plan.SpatialSize%plan.SpatialInvocations())

	result := must.M1((&Device{}).RunMean(context.Background(), plan, Full(bhwc(33, 33, 4), 1)))
	shared := result.PartialSums[0]
	var total float32
	for i, partial := range shared {
		want := float32(18)
		switch {
		case i == 60:
			want = 9
		case i > 60:
			want = 0
		}
		assert.Equal(t, Vec4{want, want, want, want}, partial, "slot %d", i)
		total += partial[0]
	}
	assert.Equal(t, float32(33*33), total)
	assert.Equal(t, []float32{1, 1, 1, 1}, result.Output.Flat)
}

func TestRunMean_Precision(t *testing.T) {
	config := glshaders.DefaultConfig()
	input := Full(bhwc(32, 31, 4), 0.1)
	require.Equal(t, glshaders.StrategySerial, glshaders.PlanMean(config, 32, 31, 4).Strategy)
	want := ReferenceMean(input)[0]

	high := runMean(t, &Device{}, config, input)
	medium := runMean(t, &Device{AccumulatorPrecision: types.PrecisionMedium}, config, input)
	highErr := math.Abs(float64(high.Output.Flat[0]) - want)
	mediumErr := math.Abs(float64(medium.Output.Flat[0]) - want)
	assert.Less(t, highErr, 1e-5)
	assert.Greater(t, mediumErr, 1e-3, "16 bits accumulators should lose precision")
}

func TestRunMean_ManyWorkgroups(t *testing.T) {
	input := NewTensor(bhwc(40, 40, 40))
	for i := range input.Flat {
		input.Flat[i] = float32(i%40 + 1)
	}
	plan := glshaders.PlanMean(glshaders.DefaultConfig(), 40, 40, 40)
	require.Equal(t, 5, plan.NumWorkgroups().Z)

	result := must.M1((&Device{MaxConcurrentWorkgroups: 1}).RunMean(context.Background(), plan, input))
	require.Len(t, result.PartialSums, 5)
	for ch, v := range result.Output.Flat {
		assert.InDelta(t, float32(ch+1), v, 1e-4, "channel %d", ch)
	}
}

func TestRunMean_Errors(t *testing.T) {
	device := &Device{}
	config := glshaders.DefaultConfig()
	input := Full(bhwc(4, 4, 4), 1)

	_, err := device.RunMean(context.Background(), glshaders.PlanMean(config, 4, 5, 4), input)
	assert.Error(t, err)
	_, err = device.RunMean(context.Background(), glshaders.PlanMean(config, 4, 4, 12), input)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = device.RunMean(ctx, glshaders.PlanMean(config, 4, 4, 4), input)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromHWC(t *testing.T) {
	tensor, err := FromHWC([][][]float32{
		{{1, 2}, {3, 4}, {5, 6}},
		{{7, 8}, {9, 10}, {11, 12}},
	})
	require.NoError(t, err)
	require.NoError(t, tensor.Shape.Check(dtypes.Float32, 1, 2, 3, 2))
	assert.Equal(t, float32(10), tensor.At(1, 1, 1))
	assert.Equal(t, []float64{6, 7}, ReferenceMean(tensor))

	result := runMean(t, &Device{}, glshaders.DefaultConfig(), tensor)
	assert.Equal(t, []float32{6, 7}, result.Output.Flat)

	_, err = FromHWC([][][]float32{{{1, 2}}, {{3}}})
	assert.Error(t, err)
}
