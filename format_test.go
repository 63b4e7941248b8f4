package wgputil

import "testing"

// TestVertexFormatSizes verifies the fixed byte size of every format.
func TestVertexFormatSizes(t *testing.T) {
	tests := []struct {
		format VertexFormat
		want   uint64
	}{
		{VertexFormatUint8x2, 2},
		{VertexFormatUint8x4, 4},
		{VertexFormatSint8x2, 2},
		{VertexFormatSint8x4, 4},
		{VertexFormatUnorm8x2, 2},
		{VertexFormatUnorm8x4, 4},
		{VertexFormatSnorm8x2, 2},
		{VertexFormatSnorm8x4, 4},
		{VertexFormatUint16x2, 4},
		{VertexFormatUint16x4, 8},
		{VertexFormatSint16x2, 4},
		{VertexFormatSint16x4, 8},
		{VertexFormatUnorm16x2, 4},
		{VertexFormatUnorm16x4, 8},
		{VertexFormatSnorm16x2, 4},
		{VertexFormatSnorm16x4, 8},
		{VertexFormatFloat16x2, 4},
		{VertexFormatFloat16x4, 8},
		{VertexFormatFloat32, 4},
		{VertexFormatFloat32x2, 8},
		{VertexFormatFloat32x3, 12},
		{VertexFormatFloat32x4, 16},
		{VertexFormatUint32, 4},
		{VertexFormatUint32x2, 8},
		{VertexFormatUint32x3, 12},
		{VertexFormatUint32x4, 16},
		{VertexFormatSint32, 4},
		{VertexFormatSint32x2, 8},
		{VertexFormatSint32x3, 12},
		{VertexFormatSint32x4, 16},
	}

	for _, tt := range tests {
		if got := tt.format.Size(); got != tt.want {
			t.Errorf("%v.Size() = %d, want %d", tt.format, got, tt.want)
		}
	}
}

// TestVertexFormatUndefinedSize verifies the zero value has size 0.
func TestVertexFormatUndefinedSize(t *testing.T) {
	if got := VertexFormatUndefined.Size(); got != 0 {
		t.Errorf("VertexFormatUndefined.Size() = %d, want 0", got)
	}
}

// TestVertexFormatString verifies WebGPU format names.
func TestVertexFormatString(t *testing.T) {
	tests := []struct {
		format VertexFormat
		want   string
	}{
		{VertexFormatUndefined, "undefined"},
		{VertexFormatUnorm8x4, "unorm8x4"},
		{VertexFormatUint16x4, "uint16x4"},
		{VertexFormatFloat32x2, "float32x2"},
		{VertexFormatSint32x3, "sint32x3"},
		{VertexFormat(9999), "VertexFormat(9999)"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("VertexFormat(%d).String() = %q, want %q", uint32(tt.format), got, tt.want)
		}
	}
}

// TestVertexFormatTablesComplete verifies every defined format has both a
// size and a name entry.
func TestVertexFormatTablesComplete(t *testing.T) {
	for f := VertexFormatUint8x2; f <= VertexFormatSint32x4; f++ {
		if f.Size() == 0 {
			t.Errorf("%v.Size() = 0, want a fixed nonzero size", f)
		}
		if _, ok := vertexFormatNames[f]; !ok {
			t.Errorf("VertexFormat(%d) has no name entry", uint32(f))
		}
	}
}
