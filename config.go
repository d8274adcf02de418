package glshaders

import "github.com/pkg/errors"

const (
	// DefaultSerialThreshold is the spatial size (height*width) from which MEAN switches to
	// the parallel reduction.
	DefaultSerialThreshold = 1024

	// DefaultWorkgroupX and DefaultWorkgroupY are the spatial extents of the parallel reduction's workgroup.
	DefaultWorkgroupX = 8
	DefaultWorkgroupY = 8

	// DefaultMaxWorkgroupZ is GL_MAX_COMPUTE_WORK_GROUP_SIZE[2] guaranteed by OpenGL ES 3.1.
	DefaultMaxWorkgroupZ = 64

	// DefaultMaxWorkgroupInvocations is GL_MAX_COMPUTE_WORK_GROUP_INVOCATIONS guaranteed by OpenGL ES 3.1.
	DefaultMaxWorkgroupInvocations = 128
)

// Config holds the tunables of the kernel generators.
//
// Use DefaultConfig and change the fields as needed: the zero value is not valid.
type Config struct {
	// SerialThreshold: inputs with height*width below it are reduced by a single invocation per
	// channel group; larger ones use a parallel reduction across a workgroup.
	SerialThreshold int

	// WorkgroupX, WorkgroupY are the spatial extents of the workgroup used by the parallel reduction.
	WorkgroupX, WorkgroupY int

	// MaxWorkgroupZ and MaxWorkgroupInvocations are the device limits for the workgroup's third
	// axis and for its volume.
	MaxWorkgroupZ, MaxWorkgroupInvocations int
}

// DefaultConfig returns the default configuration, valid for any OpenGL ES 3.1 device.
func DefaultConfig() Config {
	return Config{
		SerialThreshold:         DefaultSerialThreshold,
		WorkgroupX:              DefaultWorkgroupX,
		WorkgroupY:              DefaultWorkgroupY,
		MaxWorkgroupZ:           DefaultMaxWorkgroupZ,
		MaxWorkgroupInvocations: DefaultMaxWorkgroupInvocations,
	}
}

// Validate checks that the configuration can be planned with.
func (c Config) Validate() error {
	if c.SerialThreshold < 1 {
		return errors.Errorf("SerialThreshold must be >= 1, got %d", c.SerialThreshold)
	}
	if c.WorkgroupX < 1 || c.WorkgroupY < 1 {
		return errors.Errorf("workgroup extents must be >= 1, got %dx%d", c.WorkgroupX, c.WorkgroupY)
	}
	if c.WorkgroupX*c.WorkgroupY < 2 {
		return errors.Errorf("parallel reduction needs more than one invocation per workgroup, got %dx%d",
			c.WorkgroupX, c.WorkgroupY)
	}
	if c.MaxWorkgroupZ < 1 {
		return errors.Errorf("MaxWorkgroupZ must be >= 1, got %d", c.MaxWorkgroupZ)
	}
	if c.WorkgroupX*c.WorkgroupY > c.MaxWorkgroupInvocations {
		return errors.Errorf("workgroup %dx%d exceeds MaxWorkgroupInvocations=%d",
			c.WorkgroupX, c.WorkgroupY, c.MaxWorkgroupInvocations)
	}
	return nil
}
