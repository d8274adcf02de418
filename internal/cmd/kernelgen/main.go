// kernelgen prints the kernel generated for a MEAN over height and width of a [1, height, width, channels]
// float32 input.
//
// Usage:
//
//	go run ./internal/cmd/kernelgen -height=64 -width=64 -channels=8 -resolve
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gomlx/glshaders"
	"github.com/gomlx/glshaders/delegate"
	"github.com/gomlx/glshaders/graph"
	"github.com/gomlx/glshaders/types"
	"github.com/gomlx/glshaders/types/optypes"
	"github.com/gomlx/glshaders/types/shapes"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagHeight    = flag.Int("height", 64, "Height of the input.")
	flagWidth     = flag.Int("width", 64, "Width of the input.")
	flagChannels  = flag.Int("channels", 8, "Channels of the input.")
	flagThreshold = flag.Int("threshold", glshaders.DefaultSerialThreshold,
		"Spatial size (height*width) from which the parallel reduction is used.")
	flagWorkgroupX = flag.Int("workgroup_x", glshaders.DefaultWorkgroupX, "Workgroup extent along x for the parallel reduction.")
	flagWorkgroupY = flag.Int("workgroup_y", glshaders.DefaultWorkgroupY, "Workgroup extent along y for the parallel reduction.")
	flagResolve    = flag.Bool("resolve", false, "Also print the source with the scalar parameters substituted.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	counters := &delegate.Counters{}
	d := must.M1(delegate.Create(
		[]string{delegate.OptionSerialThreshold, delegate.OptionWorkgroupX, delegate.OptionWorkgroupY},
		[]string{fmt.Sprint(*flagThreshold), fmt.Sprint(*flagWorkgroupX), fmt.Sprint(*flagWorkgroupY)},
		func(err error) { klog.Errorf("delegate: %+v", err) },
		counters))
	defer delegate.Destroy(d, counters)

	model := graph.NewModel()
	input := model.NewValue(shapes.MakeBHWC(dtypes.Float32, 1, *flagHeight, *flagWidth, *flagChannels))
	output := model.NewValue(shapes.MakeBHWC(dtypes.Float32, 1, 1, 1, *flagChannels))
	node := model.NewNode(optypes.Mean, types.MeanAttributes{Dims: types.NewAxisSet(types.AxisHeight, types.AxisWidth)})
	must.M(model.AddConsumer(node.ID, input.ID))
	must.M(model.SetProducer(node.ID, output.ID))

	codes := must.M1(d.Prepare(model, model.Nodes()))
	code := codes[0]
	klog.V(1).Infof("plan: %s", glshaders.PlanMean(d.Config(), *flagHeight, *flagWidth, *flagChannels))
	must.M(code.Write(os.Stdout))
	if *flagResolve {
		fmt.Println("\n// Resolved source:")
		fmt.Print(must.M1(glshaders.ResolveParameters(code.Source, code.Parameters)))
	}
}
