package glshaders

import (
	"strings"

	"github.com/gomlx/glshaders/shapeinference"
	"github.com/gomlx/glshaders/types"
)

// SharedPartialSums is the name of the shared memory array holding the partial sums of the
// parallel MEAN reduction.
const SharedPartialSums = "partial_sums"

var meanAxes = types.NewAxisSet(types.AxisHeight, types.AxisWidth)

type meanShader struct {
	config Config
}

// NewMeanNodeShader returns the generator for MEAN over the height and width axes.
//
// Small inputs are averaged by one invocation per channel group; inputs with at least
// config.SerialThreshold spatial positions use a two-phase parallel reduction, see PlanMean.
func NewMeanNodeShader(config Config) (NodeShader, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &meanShader{config: config}, nil
}

// validateMeanAttributes accepts only a reduction over exactly {height, width}.
func validateMeanAttributes(attributes any) error {
	var attr types.MeanAttributes
	switch a := attributes.(type) {
	case types.MeanAttributes:
		attr = a
	case *types.MeanAttributes:
		if a == nil {
			return InvalidArgumentError("mean attributes are missing")
		}
		attr = *a
	default:
		return InvalidArgumentError("mean expects types.MeanAttributes, got %T", attributes)
	}
	if !attr.Dims.Equal(meanAxes) {
		return InvalidArgumentError("mean is only supported over height and width")
	}
	return nil
}

// GenerateCode implements NodeShader.
func (m *meanShader) GenerateCode(ctx GenerationContext) (*GeneratedCode, error) {
	if err := validateMeanAttributes(ctx.Node.Operation.Attributes); err != nil {
		return nil, err
	}
	input := shapeinference.InputShape(ctx.Graph, ctx.Node)
	plan := PlanMean(m.config, input.H(), input.W(), input.C())

	var source strings.Builder
	sw := newSourceWriter(&source)
	var shared []SharedVariable
	if plan.Strategy == StrategyParallel {
		writeParallelMean(sw)
		shared = []SharedVariable{{
			Name:        SharedPartialSums,
			NumElements: plan.SharedElements,
			Precision:   types.PrecisionHigh,
		}}
	} else {
		writeSerialMean(sw)
	}
	if err := sw.Err(); err != nil {
		// strings.Builder doesn't fail.
		panic(err)
	}

	return &GeneratedCode{
		Parameters: []Variable{
			{Name: ParamInputHeight, Value: input.H()},
			{Name: ParamInputWidth, Value: input.W()},
			{Name: ParamInputChannels, Value: input.C()},
		},
		SharedVariables: shared,
		Workload:        plan.Workload,
		Workgroup:       plan.Workgroup,
		Source:          source.String(),
		Input:           types.IOOnlyDefinitions,
		Output:          types.IOAuto,
	}, nil
}

// writeMeanPreamble declares the highp accumulator and divisor. Shaders may be compiled with a
// mediump default, which allows the compiler to use 16 bits floats: not enough range nor
// precision to sum hundreds of values.
func writeMeanPreamble(sw *sourceWriter) {
	sw.line("highp vec4 sum = vec4(0.0);")
	sw.line("highp float size = float($%s$ * $%s$);", ParamInputWidth, ParamInputHeight)
}

// writeSerialMean writes the kernel where each invocation sums all the positions of its channel group.
func writeSerialMean(sw *sourceWriter) {
	sw.line("// MEAN over height and width: serial accumulation.")
	writeMeanPreamble(sw)
	sw.block(func() {
		sw.block(func() {
			sw.line("sum += %s;", accessor("w", "h", "gid.z"))
		}, "for (int w = 0; w < $%s$; w++)", ParamInputWidth)
	}, "for (int h = 0; h < $%s$; h++)", ParamInputHeight)
	sw.line("%s = sum / size;", outputValue)
}

// writeParallelMean writes the two-phase reduction: each invocation accumulates a contiguous chunk
// of the flattened height*width positions into its slot of shared memory; after the barrier the
// invocation at local (0, 0) of each channel group adds up the slots and divides once.
func writeParallelMean(sw *sourceWriter) {
	sw.line("// MEAN over height and width: two-phase parallel reduction.")
	writeMeanPreamble(sw)
	sw.line("int width = $%s$;", ParamInputWidth)
	sw.line("int spatial_size = width * $%s$;", ParamInputHeight)
	sw.line("ivec3 local_id = ivec3(gl_LocalInvocationID.xyz);")
	sw.line("int group_invocations = int(gl_WorkGroupSize.x * gl_WorkGroupSize.y);")
	sw.line("int local_index = local_id.y * int(gl_WorkGroupSize.x) + local_id.x;")
	sw.line("int group_index = int(gl_WorkGroupID.y * gl_NumWorkGroups.x + gl_WorkGroupID.x);")
	sw.line("int total_invocations = group_invocations * int(gl_NumWorkGroups.x * gl_NumWorkGroups.y);")
	sw.line("int flat_id = group_index * group_invocations + local_index;")
	sw.line("int task_size = (spatial_size + total_invocations - 1) / total_invocations;")
	sw.line("int start = flat_id * task_size;")
	sw.block(func() {
		sw.line("int x = i %% width;")
		sw.line("int y = i / width;")
		// Positions past the end of the last chunk contribute zero.
		sw.line("sum += i < spatial_size ? %s : vec4(0.0);", accessor("x", "y", "gid.z"))
	}, "for (int i = start; i < start + task_size; i++)")
	sw.line("int slot_offset = local_id.z * group_invocations;")
	sw.line("%s[slot_offset + local_index] = sum;", SharedPartialSums)
	sw.line("memoryBarrierShared();")
	sw.line("barrier();")
	sw.block(func() {
		sw.line("return;")
	}, "if (local_id.x != 0 || local_id.y != 0)")
	sw.line("sum = vec4(0.0);")
	sw.block(func() {
		sw.line("sum += %s[slot_offset + i];", SharedPartialSums)
	}, "for (int i = 0; i < group_invocations; i++)")
	sw.line("%s = sum / size;", outputValue)
}
