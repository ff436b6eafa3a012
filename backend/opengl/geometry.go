package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shapes"
)

// geometry implements shapes.Geometry: one vertex array bound to a
// family's stream buffers and drawn with its program.
type geometry struct {
	vao  uint32
	prog *program
}

// Draw binds the family's program and vertex array and issues one draw
// call. The projection is re-uploaded each time.
func (g *geometry) Draw(top shapes.Topology, count int) {
	gl.UseProgram(g.prog.id)
	g.prog.uploadProjection()
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(drawMode(top), 0, int32(count))
	gl.BindVertexArray(0)
}

// drawMode maps a topology onto the native draw mode.
func drawMode(t shapes.Topology) uint32 {
	switch t {
	case shapes.TopologyPoints:
		return gl.POINTS
	case shapes.TopologyLines:
		return gl.LINES
	case shapes.TopologyLineStrip:
		return gl.LINE_STRIP
	case shapes.TopologyTriangles:
		return gl.TRIANGLES
	case shapes.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	case shapes.TopologyTriangleFan:
		return gl.TRIANGLE_FAN
	default:
		return gl.TRIANGLES
	}
}

// buffer is the GL buffer primitive behind a stream buffer.
type buffer struct {
	id uint32
}

func newBuffer() *buffer {
	b := &buffer{}
	gl.GenBuffers(1, &b.id)
	return b
}

// Realloc re-specifies the data store with no data, orphaning the old
// store to whatever queued draws still read it.
func (b *buffer) Realloc(capacity int) {
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferData(gl.ARRAY_BUFFER, capacity, nil, gl.STREAM_DRAW)
}

// Upload copies data to the front of the current store.
func (b *buffer) Upload(data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data), gl.Ptr(data))
}
