package glshaders

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gomlx/glshaders/types"
)

// GeneratedCode is what a NodeShader returns to the backend: the kernel source and all that is
// needed to declare, substitute and dispatch it.
//
// It is created once per generation call, and it is not retained by the generator.
type GeneratedCode struct {
	// Parameters substituted for the `$name$` tokens of Source.
	Parameters []Variable

	// SharedVariables to declare in workgroup shared memory.
	SharedVariables []SharedVariable

	// Workload is the number of invocations to dispatch along each axis; Workgroup the local size.
	Workload, Workgroup types.Uint3

	// Source is the body of the kernel's main function.
	Source string

	// Input and Output define how the node's tensors are bound.
	Input, Output types.IOStructure
}

// elementWriter represents elements of the generated code that know how to write themselves.
type elementWriter interface {
	Write(w io.Writer, indentation string) error
}

// IndentationStep used for each nested block of the generated code.
const IndentationStep = "  "

// Write a human-readable listing of the generated code: the declarations the backend would
// emit around Source, followed by Source itself with its placeholders unresolved.
func (gc *GeneratedCode) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}
	we := func(e elementWriter, indentation string) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		err = e.Write(writer, indentation)
	}

	w("// workload=%s workgroup=%s input=%s output=%s\n", gc.Workload, gc.Workgroup, gc.Input, gc.Output)
	for _, param := range gc.Parameters {
		w("// $%s$ = %v\n", param.Name, param.Value)
	}
	w("layout(local_size_x = %d, local_size_y = %d, local_size_z = %d) in;\n",
		gc.Workgroup.X, gc.Workgroup.Y, gc.Workgroup.Z)
	for _, shared := range gc.SharedVariables {
		we(shared, "")
		w("\n")
	}
	w("void main() {\n")
	w("%sivec3 gid = ivec3(gl_GlobalInvocationID.xyz);\n", IndentationStep)
	w("%s", gc.Source)
	w("}\n")
	return err
}

// String returns the listing written by Write.
func (gc *GeneratedCode) String() string {
	var buf bytes.Buffer
	if err := gc.Write(&buf); err != nil {
		return fmt.Sprintf("<failed to write generated code: %v>", err)
	}
	return buf.String()
}
