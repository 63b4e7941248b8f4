package wgputil

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// CompileWGSL compiles a WGSL descriptor to SPIR-V using gogpu/naga and
// returns a new descriptor holding the compiled words, with the label and
// flags carried over. The compiler output goes through [MakeSpirV], so a
// miscompiled binary is caught here rather than at the driver.
//
// A descriptor that already holds SPIR-V is returned unchanged.
func CompileWGSL(d *ShaderModuleDescriptor) (*ShaderModuleDescriptor, error) {
	if d.Source.IsSPIRV() {
		return d, nil
	}
	if d.Source.WGSL == "" {
		return nil, errors.New("wgputil: descriptor has no shader source")
	}

	spirvBytes, err := naga.Compile(d.Source.WGSL)
	if err != nil {
		return nil, fmt.Errorf("wgputil: compile shader %q: %w", d.Label, err)
	}
	source, err := MakeSpirV(spirvBytes)
	if err != nil {
		return nil, fmt.Errorf("wgputil: compiler output for shader %q: %w", d.Label, err)
	}
	Logger().Debug("compiled WGSL shader", "label", d.Label, "words", len(source.SPIRV))

	return &ShaderModuleDescriptor{
		Label:  d.Label,
		Source: source,
		Flags:  d.Flags,
	}, nil
}
