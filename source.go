package glshaders

import (
	"fmt"
	"io"
)

// Placeholder names understood by the backend: the extents of the first input, its indexed
// accessor and the value written to the first output.
const (
	ParamInputHeight   = "input_data_0_h"
	ParamInputWidth    = "input_data_0_w"
	ParamInputChannels = "input_data_0_c"

	inputAccessor = "input_data_0"
	outputValue   = "value_0"
)

// sourceWriter writes kernel source line by line, keeping track of the indentation.
// After the first write error all further writes are ignored, and the error is reported by Err.
type sourceWriter struct {
	writer      io.Writer
	indentation string
	err         error
}

func newSourceWriter(writer io.Writer) *sourceWriter {
	return &sourceWriter{writer: writer, indentation: IndentationStep}
}

// line writes one indented line.
func (s *sourceWriter) line(format string, args ...any) {
	if s.err != nil {
		// No op if an error was encountered earlier
		return
	}
	_, s.err = fmt.Fprintf(s.writer, s.indentation+format+"\n", args...)
}

// block writes `header {`, the body one level deeper, and the closing brace.
func (s *sourceWriter) block(body func(), format string, args ...any) {
	s.line(format+" {", args...)
	previous := s.indentation
	s.indentation += IndentationStep
	body()
	s.indentation = previous
	s.line("}")
}

// accessor returns the placeholder reading the input element at (x, y, z), where z is the channel group.
func accessor(x, y, z string) string {
	return fmt.Sprintf("$%s[%s, %s, %s]$", inputAccessor, x, y, z)
}

// Err returns the first error encountered while writing.
func (s *sourceWriter) Err() error {
	return s.err
}
