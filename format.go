package wgputil

import "fmt"

// VertexFormat specifies the data format of a single vertex attribute.
//
// The set mirrors the WebGPU vertex formats: a component type (uint, sint,
// unorm, snorm, float) with a component width and count. Every format has a
// fixed, statically known byte size, returned by [VertexFormat.Size].
type VertexFormat uint32

// Vertex formats.
const (
	// VertexFormatUndefined is the zero value, representing no format.
	VertexFormatUndefined VertexFormat = iota

	// Two and four 8-bit components.
	VertexFormatUint8x2
	VertexFormatUint8x4
	VertexFormatSint8x2
	VertexFormatSint8x4
	VertexFormatUnorm8x2
	VertexFormatUnorm8x4
	VertexFormatSnorm8x2
	VertexFormatSnorm8x4

	// Two and four 16-bit components.
	VertexFormatUint16x2
	VertexFormatUint16x4
	VertexFormatSint16x2
	VertexFormatSint16x4
	VertexFormatUnorm16x2
	VertexFormatUnorm16x4
	VertexFormatSnorm16x2
	VertexFormatSnorm16x4
	VertexFormatFloat16x2
	VertexFormatFloat16x4

	// One to four 32-bit components.
	VertexFormatFloat32
	VertexFormatFloat32x2
	VertexFormatFloat32x3
	VertexFormatFloat32x4
	VertexFormatUint32
	VertexFormatUint32x2
	VertexFormatUint32x3
	VertexFormatUint32x4
	VertexFormatSint32
	VertexFormatSint32x2
	VertexFormatSint32x3
	VertexFormatSint32x4
)

// vertexFormatSizes gives the byte size of each vertex format.
var vertexFormatSizes = map[VertexFormat]uint64{
	VertexFormatUint8x2:  2,
	VertexFormatUint8x4:  4,
	VertexFormatSint8x2:  2,
	VertexFormatSint8x4:  4,
	VertexFormatUnorm8x2: 2,
	VertexFormatUnorm8x4: 4,
	VertexFormatSnorm8x2: 2,
	VertexFormatSnorm8x4: 4,

	VertexFormatUint16x2:  4,
	VertexFormatUint16x4:  8,
	VertexFormatSint16x2:  4,
	VertexFormatSint16x4:  8,
	VertexFormatUnorm16x2: 4,
	VertexFormatUnorm16x4: 8,
	VertexFormatSnorm16x2: 4,
	VertexFormatSnorm16x4: 8,
	VertexFormatFloat16x2: 4,
	VertexFormatFloat16x4: 8,

	VertexFormatFloat32:   4,
	VertexFormatFloat32x2: 8,
	VertexFormatFloat32x3: 12,
	VertexFormatFloat32x4: 16,
	VertexFormatUint32:    4,
	VertexFormatUint32x2:  8,
	VertexFormatUint32x3:  12,
	VertexFormatUint32x4:  16,
	VertexFormatSint32:    4,
	VertexFormatSint32x2:  8,
	VertexFormatSint32x3:  12,
	VertexFormatSint32x4:  16,
}

// vertexFormatNames translates vertex formats into the WebGPU format names.
var vertexFormatNames = map[VertexFormat]string{
	VertexFormatUint8x2:  "uint8x2",
	VertexFormatUint8x4:  "uint8x4",
	VertexFormatSint8x2:  "sint8x2",
	VertexFormatSint8x4:  "sint8x4",
	VertexFormatUnorm8x2: "unorm8x2",
	VertexFormatUnorm8x4: "unorm8x4",
	VertexFormatSnorm8x2: "snorm8x2",
	VertexFormatSnorm8x4: "snorm8x4",

	VertexFormatUint16x2:  "uint16x2",
	VertexFormatUint16x4:  "uint16x4",
	VertexFormatSint16x2:  "sint16x2",
	VertexFormatSint16x4:  "sint16x4",
	VertexFormatUnorm16x2: "unorm16x2",
	VertexFormatUnorm16x4: "unorm16x4",
	VertexFormatSnorm16x2: "snorm16x2",
	VertexFormatSnorm16x4: "snorm16x4",
	VertexFormatFloat16x2: "float16x2",
	VertexFormatFloat16x4: "float16x4",

	VertexFormatFloat32:   "float32",
	VertexFormatFloat32x2: "float32x2",
	VertexFormatFloat32x3: "float32x3",
	VertexFormatFloat32x4: "float32x4",
	VertexFormatUint32:    "uint32",
	VertexFormatUint32x2:  "uint32x2",
	VertexFormatUint32x3:  "uint32x3",
	VertexFormatUint32x4:  "uint32x4",
	VertexFormatSint32:    "sint32",
	VertexFormatSint32x2:  "sint32x2",
	VertexFormatSint32x3:  "sint32x3",
	VertexFormatSint32x4:  "sint32x4",
}

// Size returns the byte size of one attribute of this format.
// The size of VertexFormatUndefined is 0.
func (f VertexFormat) Size() uint64 {
	return vertexFormatSizes[f]
}

// String returns the WebGPU name of the format, e.g. "float32x2".
func (f VertexFormat) String() string {
	if name, ok := vertexFormatNames[f]; ok {
		return name
	}
	if f == VertexFormatUndefined {
		return "undefined"
	}
	return fmt.Sprintf("VertexFormat(%d)", uint32(f))
}
