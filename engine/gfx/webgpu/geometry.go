package wgpubackend

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/cprohoda/learnwgpu/engine/render"
)

// GeometryStore owns the shared vertex and index buffers holding every
// selectable shape. Shapes are immutable once uploaded; selection only
// picks a draw range.
type GeometryStore struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
}

// NewGeometryStore uploads the shared shape tables. Buffer creation
// failure is fatal for the caller; there is no partial store.
func NewGeometryStore(device *wgpu.Device) (*GeometryStore, error) {
	vb, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Shape Vertex Buffer",
		Contents: wgpu.ToBytes(render.Vertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	ib, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Shape Index Buffer",
		Contents: wgpu.ToBytes(render.Indices),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		vb.Release()
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	return &GeometryStore{vertexBuffer: vb, indexBuffer: ib}, nil
}

// Buffers returns the shared vertex and index buffers. Pair with the
// shape's DrawRange for the indexed draw call.
func (g *GeometryStore) Buffers() (vertex, index *wgpu.Buffer) {
	return g.vertexBuffer, g.indexBuffer
}

func (g *GeometryStore) Release() {
	if g.indexBuffer != nil {
		g.indexBuffer.Release()
		g.indexBuffer = nil
	}
	if g.vertexBuffer != nil {
		g.vertexBuffer.Release()
		g.vertexBuffer = nil
	}
}

// vertexBufferLayout describes render.Vertex for the textured pipeline.
func vertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(render.Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Offset:         0,
				ShaderLocation: 0,
				Format:         wgpu.VertexFormatFloat32x3,
			},
			{
				Offset:         uint64(unsafe.Offsetof(render.Vertex{}.TexCoord)),
				ShaderLocation: 1,
				Format:         wgpu.VertexFormatFloat32x2,
			},
		},
	}
}
