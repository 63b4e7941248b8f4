package wgputil

import "github.com/gogpu/gputypes"

// Attr pairs a shader location with a vertex format. It is the input to
// [VertexAttrArray] and [BufferLayout]; the byte offset is computed, never
// supplied.
type Attr struct {
	// ShaderLocation is the @location index the attribute feeds in the
	// vertex shader.
	ShaderLocation uint32

	// Format is the attribute data format.
	Format VertexFormat
}

// VertexAttribute describes one attribute slot of a vertex buffer layout.
type VertexAttribute struct {
	// Format is the attribute data format.
	Format VertexFormat

	// Offset is the byte offset of the attribute from the start of the vertex.
	Offset uint64

	// ShaderLocation is the attribute location in the shader.
	ShaderLocation uint32
}

// VertexBufferLayout describes how a vertex buffer is interpreted.
type VertexBufferLayout struct {
	// ArrayStride is the byte stride between consecutive elements.
	ArrayStride uint64

	// StepMode is the input rate (per vertex or per instance).
	StepMode gputypes.VertexStepMode

	// Attributes describes the attributes within one element.
	Attributes []VertexAttribute
}

// VertexAttrArray builds an attribute array from (location, format) pairs,
// computing each byte offset as the sum of the sizes of all preceding
// formats. Attributes are emitted in input order; offsets start at 0.
//
// No constraint is placed on the shader locations: duplicates and
// non-monotonic values pass through unchanged. Whether locations must be
// unique is a pipeline-creation concern, not a layout one.
//
//	attrs := wgputil.VertexAttrArray(
//	    wgputil.Attr{ShaderLocation: 0, Format: wgputil.VertexFormatFloat32x2}, // offset 0
//	    wgputil.Attr{ShaderLocation: 1, Format: wgputil.VertexFormatFloat32},  // offset 8
//	    wgputil.Attr{ShaderLocation: 2, Format: wgputil.VertexFormatUint16x4}, // offset 12
//	)
func VertexAttrArray(attrs ...Attr) []VertexAttribute {
	out := make([]VertexAttribute, len(attrs))
	var offset uint64
	for i, a := range attrs {
		out[i] = VertexAttribute{
			Format:         a.Format,
			Offset:         offset,
			ShaderLocation: a.ShaderLocation,
		}
		offset += a.Format.Size()
	}
	return out
}

// VertexStride returns the total byte size of the given attributes, i.e.
// the array stride of a buffer holding them tightly packed.
func VertexStride(attrs ...Attr) uint64 {
	var stride uint64
	for _, a := range attrs {
		stride += a.Format.Size()
	}
	return stride
}

// BufferLayout builds a complete vertex buffer layout from (location,
// format) pairs: the attribute array via [VertexAttrArray] and the array
// stride via [VertexStride].
func BufferLayout(step gputypes.VertexStepMode, attrs ...Attr) VertexBufferLayout {
	return VertexBufferLayout{
		ArrayStride: VertexStride(attrs...),
		StepMode:    step,
		Attributes:  VertexAttrArray(attrs...),
	}
}
