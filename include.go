package wgputil

import (
	"fmt"
	"io/fs"
)

// IncludeSpirV loads a SPIR-V binary from a build-time filesystem, usually
// an embed.FS, and builds a validated shader module descriptor labeled with
// the path.
//
//	//go:embed shaders
//	var shaders embed.FS
//
//	desc, err := wgputil.IncludeSpirV(shaders, "shaders/fine.spv")
func IncludeSpirV(fsys fs.FS, path string) (*ShaderModuleDescriptor, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("wgputil: read shader %q: %w", path, err)
	}
	Logger().Debug("including SPIR-V shader", "path", path, "bytes", len(data))

	desc, err := NewSpirVModule(path, data)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", path, err)
	}
	return desc, nil
}

// IncludeWGSL loads WGSL source text from a build-time filesystem and
// builds a shader module descriptor labeled with the path. The text is not
// validated at this layer.
func IncludeWGSL(fsys fs.FS, path string) (*ShaderModuleDescriptor, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("wgputil: read shader %q: %w", path, err)
	}
	Logger().Debug("including WGSL shader", "path", path, "bytes", len(data))

	return NewWGSLModule(path, string(data)), nil
}

// MustIncludeSpirV is like [IncludeSpirV] but panics on error. It is
// intended for package-level shader variables, where a missing or malformed
// embedded binary is a build defect.
func MustIncludeSpirV(fsys fs.FS, path string) *ShaderModuleDescriptor {
	desc, err := IncludeSpirV(fsys, path)
	if err != nil {
		panic(err)
	}
	return desc
}

// MustIncludeWGSL is like [IncludeWGSL] but panics on error.
func MustIncludeWGSL(fsys fs.FS, path string) *ShaderModuleDescriptor {
	desc, err := IncludeWGSL(fsys, path)
	if err != nil {
		panic(err)
	}
	return desc
}
