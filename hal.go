package wgputil

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"
)

// HAL converts the descriptor to its gogpu/wgpu HAL form, ready to pass to
// [hal.Device.CreateShaderModule]. The word slice and source text are
// shared with the receiver, not copied.
func (d *ShaderModuleDescriptor) HAL() *hal.ShaderModuleDescriptor {
	return &hal.ShaderModuleDescriptor{
		Label: d.Label,
		Source: hal.ShaderSource{
			SPIRV: d.Source.SPIRV,
			WGSL:  d.Source.WGSL,
		},
	}
}

// CreateShaderModule creates a HAL shader module from a descriptor.
//
// When the descriptor carries [ShaderFlagsValidation] and holds SPIR-V, the
// header is re-checked before the words reach the device, so a descriptor
// whose source was corrupted after construction never makes it to a driver
// that assumes a well-formed header.
func CreateShaderModule(device hal.Device, d *ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if d.Flags&ShaderFlagsValidation != 0 && d.Source.IsSPIRV() {
		if err := validateSpirVWords(d.Source.SPIRV); err != nil {
			return nil, fmt.Errorf("shader %q: %w", d.Label, err)
		}
	}
	return device.CreateShaderModule(d.HAL())
}

// validateSpirVWords checks the magic number of an already word-aligned
// SPIR-V module. Alignment needs no check here: a []uint32 is whole words
// by construction.
func validateSpirVWords(words []uint32) error {
	if len(words) == 0 {
		return fmt.Errorf("%w: empty module", ErrInvalidMagicNumber)
	}
	if words[0] != SpirVMagic {
		return fmt.Errorf("%w: got 0x%08X, want 0x%08X", ErrInvalidMagicNumber, words[0], SpirVMagic)
	}
	return nil
}
