package render

import "testing"

func TestDrawRangesInsideIndexBuffer(t *testing.T) {
	for _, s := range []Shape{ShapePentagon, ShapeArrow} {
		t.Run(s.String(), func(t *testing.T) {
			dr := s.DrawRange()
			if dr.IndexCount == 0 {
				t.Fatal("empty draw range")
			}
			end := dr.FirstIndex + dr.IndexCount
			if end > uint32(len(Indices)) {
				t.Errorf("range [%d,%d) exceeds index buffer length %d", dr.FirstIndex, end, len(Indices))
			}
			if dr.IndexCount%3 != 0 {
				t.Errorf("index count %d is not a whole number of triangles", dr.IndexCount)
			}
			if dr.BaseVertex != 0 {
				t.Errorf("base vertex = %d, want 0 for the shared-buffer layout", dr.BaseVertex)
			}
		})
	}
}

func TestDrawRangesPartitionIndexBuffer(t *testing.T) {
	p := ShapePentagon.DrawRange()
	a := ShapeArrow.DrawRange()

	if p.FirstIndex != 0 {
		t.Errorf("pentagon starts at %d, want 0", p.FirstIndex)
	}
	if a.FirstIndex != p.FirstIndex+p.IndexCount {
		t.Errorf("arrow starts at %d, want %d (no gap, no overlap)", a.FirstIndex, p.FirstIndex+p.IndexCount)
	}
	if a.FirstIndex+a.IndexCount != uint32(len(Indices)) {
		t.Errorf("ranges cover %d indices, table has %d", a.FirstIndex+a.IndexCount, len(Indices))
	}
}

func TestIndicesReferenceValidVertices(t *testing.T) {
	for i, idx := range Indices {
		if int(idx) >= len(Vertices) {
			t.Errorf("index %d at position %d out of range (vertex count %d)", idx, i, len(Vertices))
		}
	}
}

func TestShapeAndModeCycle(t *testing.T) {
	if got := ShapePentagon.Next(); got != ShapeArrow {
		t.Errorf("pentagon.Next() = %v, want arrow", got)
	}
	if got := ShapeArrow.Next(); got != ShapePentagon {
		t.Errorf("arrow.Next() = %v, want pentagon", got)
	}
	if got := ModeStandard.Next(); got != ModePositionColor {
		t.Errorf("standard.Next() = %v, want position-color", got)
	}
	if got := ModePositionColor.Next(); got != ModeStandard {
		t.Errorf("position-color.Next() = %v, want standard", got)
	}
}
