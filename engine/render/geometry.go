package render

// Shape selects which geometry the frame draws.
type Shape int

const (
	ShapePentagon Shape = iota
	ShapeArrow
)

// Next cycles to the only other shape.
func (s Shape) Next() Shape {
	if s == ShapePentagon {
		return ShapeArrow
	}
	return ShapePentagon
}

func (s Shape) String() string {
	if s == ShapeArrow {
		return "arrow"
	}
	return "pentagon"
}

// Vertex matches the textured pipeline's vertex layout:
// position float32x3 at location 0, texcoord float32x2 at location 1.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// All shapes share one vertex table and one index table, uploaded once as a
// single vertex buffer and a single index buffer. Shape selection picks an
// index sub-range; base vertex stays 0.
var Vertices = []Vertex{
	// Pentagon (0..4)
	{Position: [3]float32{-0.0868241, 0.49240386, 0.0}, TexCoord: [2]float32{0.4131759, 0.00759614}},
	{Position: [3]float32{-0.49513406, 0.06958647, 0.0}, TexCoord: [2]float32{0.0048659444, 0.43041354}},
	{Position: [3]float32{-0.21918549, -0.44939706, 0.0}, TexCoord: [2]float32{0.28081453, 0.949397}},
	{Position: [3]float32{0.35966998, -0.3473291, 0.0}, TexCoord: [2]float32{0.85967, 0.84732914}},
	{Position: [3]float32{0.44147372, 0.2347359, 0.0}, TexCoord: [2]float32{0.9414737, 0.2652641}},
	// Arrow (5..12)
	{Position: [3]float32{0.0, 2.0, 0.0}, TexCoord: [2]float32{0.9, 0.9}},
	{Position: [3]float32{-0.15, 1.0, 0.0}, TexCoord: [2]float32{0.5, 0.5}},
	{Position: [3]float32{0.15, 1.0, 0.0}, TexCoord: [2]float32{0.5, 0.5}},
	{Position: [3]float32{0.0, 1.0, 0.0}, TexCoord: [2]float32{0.5, 0.5}},
	{Position: [3]float32{0.0, 1.0, 0.0}, TexCoord: [2]float32{0.1, 0.1}},
	{Position: [3]float32{-0.07, 0.0, 0.0}, TexCoord: [2]float32{0.1, 0.1}},
	{Position: [3]float32{0.07, 0.0, 0.0}, TexCoord: [2]float32{0.1, 0.1}},
	{Position: [3]float32{0.0, 0.0, 0.0}, TexCoord: [2]float32{0.1, 0.1}},
}

var Indices = []uint16{
	// Pentagon, 3 triangles
	0, 1, 4,
	1, 2, 4,
	2, 3, 4,
	// Arrow, 8 triangles
	5, 6, 7,
	7, 8, 5,
	5, 8, 6,
	6, 7, 8,
	9, 10, 11,
	11, 12, 9,
	12, 9, 10,
	10, 11, 12,
}

// DrawRange is the contiguous index-buffer slice plus base vertex for one
// indexed draw call.
type DrawRange struct {
	FirstIndex uint32
	IndexCount uint32
	BaseVertex int32
}

const (
	pentagonIndexCount = 9
	arrowIndexCount    = 24
)

// DrawRange returns the shape's slice of the shared index buffer. The range
// is always fully contained in Indices.
func (s Shape) DrawRange() DrawRange {
	switch s {
	case ShapeArrow:
		return DrawRange{FirstIndex: pentagonIndexCount, IndexCount: arrowIndexCount}
	default:
		return DrawRange{FirstIndex: 0, IndexCount: pentagonIndexCount}
	}
}
