package glshaders

import (
	"testing"

	"github.com/gomlx/glshaders/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanMean(t *testing.T) {
	config := DefaultConfig()

	t.Run("serial", func(t *testing.T) {
		plan := PlanMean(config, 2, 2, 4)
		assert.Equal(t, StrategySerial, plan.Strategy)
		assert.Equal(t, types.Uint3{X: 1, Y: 1, Z: 1}, plan.Workgroup)
		assert.Equal(t, types.Uint3{X: 1, Y: 1, Z: 1}, plan.Workload)
		assert.Equal(t, 0, plan.SharedElements)
		assert.Equal(t, 4, plan.SpatialSize)
		assert.Equal(t, 4, plan.ChunkSize)
	})

	t.Run("parallel", func(t *testing.T) {
		plan := PlanMean(config, 64, 64, 8)
		assert.Equal(t, StrategyParallel, plan.Strategy)
		assert.Equal(t, types.Uint3{X: 8, Y: 8, Z: 2}, plan.Workgroup)
		assert.Equal(t, types.Uint3{X: 8, Y: 8, Z: 2}, plan.Workload)
		assert.Equal(t, 128, plan.SharedElements)
		assert.Equal(t, 64, plan.ChunkSize)
		assert.Equal(t, 2, plan.ChannelGroups)
		assert.Equal(t, 64, plan.SpatialInvocations())
		assert.Equal(t, types.Uint3{X: 1, Y: 1, Z: 1}, plan.NumWorkgroups())
	})

	t.Run("threshold boundary", func(t *testing.T) {
		assert.Equal(t, StrategyParallel, PlanMean(config, 32, 32, 4).Strategy)
		assert.Equal(t, StrategySerial, PlanMean(config, 31, 33, 4).Strategy)
		config := config
		config.SerialThreshold = 5
		assert.Equal(t, StrategySerial, PlanMean(config, 2, 2, 4).Strategy)
		assert.Equal(t, StrategyParallel, PlanMean(config, 1, 5, 4).Strategy)
	})

	t.Run("channel groups split across workgroups", func(t *testing.T) {
		plan := PlanMean(config, 64, 64, 40)
		assert.Equal(t, 10, plan.ChannelGroups)
		assert.Equal(t, types.Uint3{X: 8, Y: 8, Z: 2}, plan.Workgroup)
		assert.Equal(t, types.Uint3{X: 8, Y: 8, Z: 10}, plan.Workload)
		assert.Equal(t, types.Uint3{X: 1, Y: 1, Z: 5}, plan.NumWorkgroups())

		// 3 channel groups can't be split in workgroups of 2.
		plan = PlanMean(config, 64, 64, 12)
		assert.Equal(t, types.Uint3{X: 8, Y: 8, Z: 1}, plan.Workgroup)
		assert.Equal(t, 64, plan.SharedElements)

		plan = PlanMean(config, 4, 4, 400)
		assert.Equal(t, StrategySerial, plan.Strategy)
		assert.Equal(t, types.Uint3{X: 1, Y: 1, Z: 50}, plan.Workgroup)
		assert.Equal(t, types.Uint3{X: 1, Y: 1, Z: 100}, plan.Workload)
	})

	t.Run("no channels", func(t *testing.T) {
		plan := PlanMean(config, 4, 4, 0)
		assert.Equal(t, 1, plan.ChannelGroups)
		assert.Equal(t, 1, plan.Workload.Z)
	})

	t.Run("invariants", func(t *testing.T) {
		for _, h := range []int{1, 3, 17, 31, 32, 33, 64, 100} {
			for _, w := range []int{1, 7, 32, 33, 64, 129} {
				for _, c := range []int{1, 3, 4, 8, 13, 64, 300} {
					plan := PlanMean(config, h, w, c)
					require.Equal(t, plan, PlanMean(config, h, w, c), "PlanMean must be deterministic")
					spatialVolume := plan.Workgroup.X * plan.Workgroup.Y
					if h*w < config.SerialThreshold {
						require.Equal(t, StrategySerial, plan.Strategy, "h=%d, w=%d", h, w)
						require.Equal(t, 1, spatialVolume)
						require.Zero(t, plan.SharedElements)
					} else {
						require.Equal(t, StrategyParallel, plan.Strategy, "h=%d, w=%d", h, w)
						require.Greater(t, spatialVolume, 1)
						require.Greater(t, plan.SharedElements, 0)
						require.GreaterOrEqual(t, plan.ChunkSize*spatialVolume, h*w)
						require.Less(t, (plan.ChunkSize-1)*spatialVolume, h*w)
					}
					require.LessOrEqual(t, plan.Workgroup.Volume(), config.MaxWorkgroupInvocations)
					require.LessOrEqual(t, plan.Workgroup.Z, config.MaxWorkgroupZ)
					require.Zero(t, plan.Workload.Z%plan.Workgroup.Z)
					require.Equal(t, (c+3)/4, plan.Workload.Z)
				}
			}
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for name, change := range map[string]func(c *Config){
		"zero value":        func(c *Config) { *c = Config{} },
		"threshold":         func(c *Config) { c.SerialThreshold = 0 },
		"negative x":        func(c *Config) { c.WorkgroupX = -1 },
		"single invocation": func(c *Config) { c.WorkgroupX, c.WorkgroupY = 1, 1 },
		"max z":             func(c *Config) { c.MaxWorkgroupZ = 0 },
		"too large":         func(c *Config) { c.WorkgroupX, c.WorkgroupY = 16, 16 },
	} {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			change(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestStrategy(t *testing.T) {
	assert.Equal(t, "Parallel", StrategyParallel.String())
	s, err := StrategyString("serial")
	require.NoError(t, err)
	assert.Equal(t, StrategySerial, s)
	assert.Contains(t, PlanMean(DefaultConfig(), 2, 2, 4).String(), "Serial(workload=(1, 1, 1)")
}
