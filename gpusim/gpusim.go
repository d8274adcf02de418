// Package gpusim emulates on the CPU the dispatch of the MEAN kernels planned by glshaders:
// workgroups, their invocations, the workgroup shared memory and the barrier separating the
// two phases of the parallel reduction.
//
// It follows the semantics of the generated GLSL, not its text, and is used to check the
// plans and the numeric policy without a GPU.
package gpusim

import (
	"context"
	"runtime"

	"github.com/gomlx/glshaders"
	"github.com/gomlx/glshaders/types"
	"github.com/gomlx/glshaders/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Device runs planned kernels.
type Device struct {
	// AccumulatorPrecision is the precision the accumulators get. The zero value uses
	// PrecisionHigh, which is what the generated kernels request.
	AccumulatorPrecision types.Precision

	// MaxConcurrentWorkgroups limits how many workgroups execute at the same time.
	// If 0 it defaults to runtime.NumCPU().
	MaxConcurrentWorkgroups int
}

// Result of running a MEAN kernel.
type Result struct {
	// Output has shape [1, 1, 1, C].
	Output *Tensor

	// PartialSums holds, for StrategyParallel, the shared memory of each workgroup (along Z) as
	// seen after the barrier.
	PartialSums [][]Vec4
}

// RunMean executes the plan over input, whose height*width must match plan.SpatialSize.
func (d *Device) RunMean(ctx context.Context, plan glshaders.Plan, input *Tensor) (*Result, error) {
	h, w, c := input.Shape.H(), input.Shape.W(), input.Shape.C()
	if h*w != plan.SpatialSize {
		return nil, errors.Errorf("plan for %d spatial positions can't run on input %s", plan.SpatialSize, input.Shape)
	}
	if plan.ChannelGroups != max(1, (c+3)/4) {
		return nil, errors.Errorf("plan for %d channel groups can't run on input %s", plan.ChannelGroups, input.Shape)
	}
	numGroups := plan.NumWorkgroups()
	if numGroups.X != 1 || numGroups.Y != 1 {
		return nil, errors.Errorf("the reduced axes must be covered by a single workgroup, got %s workgroups", numGroups)
	}

	precision := d.AccumulatorPrecision
	if precision == types.PrecisionDefault {
		precision = types.PrecisionHigh
	}
	arith := newArithmetic(precision)

	groupValues := make([]Vec4, plan.Workload.Z)
	result := &Result{}
	if plan.Strategy == glshaders.StrategyParallel {
		result.PartialSums = make([][]Vec4, numGroups.Z)
	}

	limit := d.MaxConcurrentWorkgroups
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for groupZ := range numGroups.Z {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			wg := workgroup{plan: plan, input: input, arith: arith, groupZ: groupZ, values: groupValues}
			if plan.Strategy == glshaders.StrategySerial {
				return wg.runSerial()
			}
			shared, err := wg.runParallel()
			result.PartialSums[groupZ] = shared
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Output = NewTensor(shapes.MakeBHWC(dtypes.Float32, 1, 1, 1, c))
	for ch := range c {
		result.Output.Flat[ch] = groupValues[ch/4][ch%4]
	}
	return result, nil
}

// workgroup executes the invocations of one workgroup. Each invocation writes value_0 of its
// channel group to values[gid.z].
type workgroup struct {
	plan   glshaders.Plan
	input  *Tensor
	arith  arithmetic
	groupZ int
	values []Vec4
}

func (wg *workgroup) gidZ(localZ int) int {
	return wg.groupZ*wg.plan.Workgroup.Z + localZ
}

// runSerial: the invocation of each channel group loops over all positions.
func (wg *workgroup) runSerial() error {
	var invocations errgroup.Group
	for localZ := range wg.plan.Workgroup.Z {
		invocations.Go(func() error {
			gidZ := wg.gidZ(localZ)
			var sum Vec4
			for y := range wg.input.Shape.H() {
				for x := range wg.input.Shape.W() {
					sum = wg.arith.add(sum, wg.arith.load(wg.input.load(x, y, gidZ)))
				}
			}
			wg.values[gidZ] = wg.arith.div(sum, float32(wg.plan.SpatialSize))
			return nil
		})
	}
	return invocations.Wait()
}

// runParallel runs phase 1 on all invocations, waits for all of them (the barrier), and runs
// phase 2 on the invocation at local (0, 0) of each channel group. It returns the shared memory.
func (wg *workgroup) runParallel() ([]Vec4, error) {
	size := wg.plan.Workgroup
	groupInvocations := size.X * size.Y
	// A single workgroup covers the reduced axes, so flat ids are local indices.
	taskSize := (wg.plan.SpatialSize + groupInvocations - 1) / groupInvocations
	width := wg.input.Shape.W()
	shared := make([]Vec4, wg.plan.SharedElements)

	var phase1 errgroup.Group
	for localZ := range size.Z {
		for localY := range size.Y {
			for localX := range size.X {
				phase1.Go(func() error {
					gidZ := wg.gidZ(localZ)
					localIndex := localY*size.X + localX
					start := localIndex * taskSize
					var sum Vec4
					for i := start; i < start+taskSize; i++ {
						if i < wg.plan.SpatialSize {
							sum = wg.arith.add(sum, wg.arith.load(wg.input.load(i%width, i/width, gidZ)))
						}
					}
					shared[localZ*groupInvocations+localIndex] = sum
					return nil
				})
			}
		}
	}
	if err := phase1.Wait(); err != nil {
		return nil, err
	}

	var phase2 errgroup.Group
	for localZ := range size.Z {
		phase2.Go(func() error {
			slotOffset := localZ * groupInvocations
			var sum Vec4
			for i := range groupInvocations {
				sum = wg.arith.add(sum, shared[slotOffset+i])
			}
			wg.values[wg.gidZ(localZ)] = wg.arith.div(sum, float32(wg.plan.SpatialSize))
			return nil
		})
	}
	return shared, phase2.Wait()
}
