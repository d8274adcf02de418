package glshaders

import (
	"fmt"

	"github.com/gomlx/glshaders/types"
)

// Strategy used to reduce the spatial axes of MEAN.
type Strategy int

//go:generate go tool enumer -type=Strategy -trimprefix=Strategy -output=gen_strategy_enumer.go plan.go

const (
	// StrategySerial: one invocation per channel group loops over all height*width positions.
	StrategySerial Strategy = iota

	// StrategyParallel: the invocations of a workgroup each accumulate a contiguous chunk of
	// the flattened height*width positions into shared memory, and after a barrier one
	// invocation per channel group combines the partial sums.
	StrategyParallel
)

// Plan is the dispatch plan of a MEAN kernel: the strategy and the geometry it runs with.
type Plan struct {
	Strategy Strategy

	// Workload is the number of invocations dispatched along each axis, and Workgroup the
	// extents of one workgroup. Workload is always a multiple of Workgroup.
	Workload, Workgroup types.Uint3

	// SharedElements is the number of vec4 elements of shared memory per workgroup: 0 for StrategySerial.
	SharedElements int

	// SpatialSize is height*width, the number of elements averaged per channel.
	SpatialSize int

	// ChannelGroups is the number of 4-wide channel groups, ceil(channels/4).
	ChannelGroups int

	// ChunkSize is the number of spatial positions accumulated by each invocation.
	ChunkSize int
}

// SpatialInvocations returns the number of invocations sharing the reduction of one channel group.
func (p Plan) SpatialInvocations() int {
	return p.Workload.X * p.Workload.Y
}

// NumWorkgroups returns the number of workgroups dispatched along each axis.
func (p Plan) NumWorkgroups() types.Uint3 {
	return types.Uint3{
		X: p.Workload.X / p.Workgroup.X,
		Y: p.Workload.Y / p.Workgroup.Y,
		Z: p.Workload.Z / p.Workgroup.Z,
	}
}

// String implements fmt.Stringer.
func (p Plan) String() string {
	return fmt.Sprintf("%s(workload=%s, workgroup=%s, shared=%d, chunk=%d)",
		p.Strategy, p.Workload, p.Workgroup, p.SharedElements, p.ChunkSize)
}

// PlanMean chooses the strategy and dispatch geometry to average the height*width positions
// of an input with the given extents. It is a pure function of its arguments.
//
// The channel groups are distributed along the third workgroup axis. The workgroup's third
// extent is the largest divisor of the number of channel groups that fits the device limits,
// so all dispatched workgroups are full and every invocation reaches the barrier.
func PlanMean(config Config, height, width, channels int) Plan {
	plan := Plan{
		SpatialSize:   height * width,
		ChannelGroups: max(1, ceilDiv(channels, 4)),
	}
	spatial := types.Uint3{X: 1, Y: 1}
	if plan.SpatialSize < config.SerialThreshold {
		plan.Strategy = StrategySerial
		plan.ChunkSize = plan.SpatialSize
	} else {
		plan.Strategy = StrategyParallel
		spatial = types.Uint3{X: config.WorkgroupX, Y: config.WorkgroupY}
		plan.ChunkSize = ceilDiv(plan.SpatialSize, spatial.X*spatial.Y)
	}
	groupZ := channelGroupsPerWorkgroup(plan.ChannelGroups, spatial.X*spatial.Y, config)
	plan.Workgroup = types.Uint3{X: spatial.X, Y: spatial.Y, Z: groupZ}
	plan.Workload = types.Uint3{X: spatial.X, Y: spatial.Y, Z: plan.ChannelGroups}
	if plan.Strategy == StrategyParallel {
		plan.SharedElements = plan.Workgroup.Volume()
	}
	return plan
}

// channelGroupsPerWorkgroup returns the largest divisor of channelGroups that respects the
// device limits for a workgroup with spatialVolume invocations per channel group.
func channelGroupsPerWorkgroup(channelGroups, spatialVolume int, config Config) int {
	limit := min(channelGroups, config.MaxWorkgroupZ)
	if spatialVolume > 0 {
		limit = min(limit, config.MaxWorkgroupInvocations/spatialVolume)
	}
	for z := limit; z > 1; z-- {
		if channelGroups%z == 0 {
			return z
		}
	}
	return 1
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
