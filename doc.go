// Package wgputil provides small utilities for preparing GPU pipeline
// inputs in the GoGPU ecosystem.
//
// # Overview
//
// wgputil covers two chores that come up in every render or compute
// pipeline setup and that are easy to get subtly wrong:
//
//   - Building vertex attribute layouts. [VertexAttrArray] turns a terse
//     ordered list of (shader location, format) pairs into a slice of
//     [VertexAttribute] with byte offsets computed cumulatively from the
//     preceding format sizes.
//
//   - Loading static shader sources. [MakeSpirV] reinterprets embedded
//     SPIR-V bytes as 32-bit words after checking word alignment and the
//     SPIR-V magic number, so malformed binaries are rejected before any
//     driver sees them. [MakeWGSL] wraps textual WGSL verbatim.
//
// # Quick Start
//
//	import "github.com/gogpu/wgputil"
//
//	// Vertex layout: float32x2 position at location 0, uint16x4 joints at location 3.
//	attrs := wgputil.VertexAttrArray(
//	    wgputil.Attr{ShaderLocation: 0, Format: wgputil.VertexFormatFloat32x2},
//	    wgputil.Attr{ShaderLocation: 3, Format: wgputil.VertexFormatUint16x4},
//	)
//
//	//go:embed shaders
//	var shaders embed.FS
//
//	desc, err := wgputil.IncludeSpirV(shaders, "shaders/fill.spv")
//	if err != nil {
//	    return err
//	}
//	module, err := wgputil.CreateShaderModule(device, desc)
//
// # Integration
//
// Descriptors convert to gogpu/wgpu HAL descriptors via
// [ShaderModuleDescriptor.HAL], and WGSL descriptors compile to validated
// SPIR-V through gogpu/naga via [CompileWGSL]. Nothing in this package
// keeps shared mutable state; every function is safe for concurrent use.
package wgputil
