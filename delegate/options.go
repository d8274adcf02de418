package delegate

import (
	"strconv"

	"github.com/gomlx/glshaders"
	"github.com/pkg/errors"
)

// Keys accepted in the option list given to Create.
const (
	OptionSerialThreshold         = "mean_serial_threshold"
	OptionWorkgroupX              = "workgroup_x"
	OptionWorkgroupY              = "workgroup_y"
	OptionMaxWorkgroupZ           = "max_workgroup_z"
	OptionMaxWorkgroupInvocations = "max_workgroup_invocations"
)

// ParseOptions builds a glshaders.Config from the flat key/value lists a host passes to a
// delegate plugin. Keys not given keep their default values.
//
// It returns an error for unknown keys, for values that are not integers, or if the resulting
// configuration is invalid.
func ParseOptions(keys, values []string) (glshaders.Config, error) {
	config := glshaders.DefaultConfig()
	if len(keys) != len(values) {
		return config, errors.Errorf("got %d option keys but %d values", len(keys), len(values))
	}
	fields := map[string]*int{
		OptionSerialThreshold:         &config.SerialThreshold,
		OptionWorkgroupX:              &config.WorkgroupX,
		OptionWorkgroupY:              &config.WorkgroupY,
		OptionMaxWorkgroupZ:           &config.MaxWorkgroupZ,
		OptionMaxWorkgroupInvocations: &config.MaxWorkgroupInvocations,
	}
	for i, key := range keys {
		field, found := fields[key]
		if !found {
			return config, errors.Errorf("unknown delegate option %q", key)
		}
		value, err := strconv.Atoi(values[i])
		if err != nil {
			return config, errors.Wrapf(err, "delegate option %q=%q", key, values[i])
		}
		*field = value
	}
	if err := config.Validate(); err != nil {
		return config, errors.WithMessage(err, "invalid delegate options")
	}
	return config, nil
}
