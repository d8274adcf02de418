package glshaders

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned (wrapped) when a node's attributes are not supported by its generator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnimplemented is returned (wrapped) when no generator is registered for an operator.
	ErrUnimplemented = errors.New("unimplemented")
)

// InvalidArgumentError returns an error with the formatted message that wraps ErrInvalidArgument.
func InvalidArgumentError(format string, args ...any) error {
	return errors.WithMessagef(ErrInvalidArgument, format, args...)
}
