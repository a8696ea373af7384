package session

import (
	"fmt"
	"image"
	"testing"

	"github.com/example/drawpad/internal/shape"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("shape-%d", n)
	}
}

func TestCompletedDragsAreCounted(t *testing.T) {
	s := New(VariantShapes, WithIDFunc(counterIDs()))
	for i := 0; i < 7; i++ {
		s.Press(image.Pt(i, i))
		s.Release(image.Pt(i+10, i+20))
	}
	// dangling press adds nothing
	s.Press(image.Pt(1, 1))
	if got := s.Shapes.Len(); got != 7 {
		t.Fatalf("stored %d shapes, want 7", got)
	}
	if s.State() != StateDragging {
		t.Fatalf("expected dangling drag to stay in progress")
	}
}

func TestReleaseWithoutPressIsIgnored(t *testing.T) {
	s := New(VariantShapes)
	s.Release(image.Pt(5, 5))
	if s.Shapes.Len() != 0 {
		t.Fatalf("release without press stored a shape")
	}
}

func TestShapeCapturesModeAndColorAtRelease(t *testing.T) {
	var committed []shape.Shape
	s := New(VariantShapes, WithIDFunc(counterIDs()), WithOnCommit(func(sh shape.Shape) {
		committed = append(committed, sh)
	}))
	s.Press(image.Pt(10, 10))
	s.Mode = shape.ModeSquare
	s.Color = shape.Color{G: 1, A: 1}
	s.Release(image.Pt(40, 30))

	got := s.Shapes.At(0)
	want := shape.Shape{ID: "shape-1", Mode: shape.ModeSquare, Start: image.Pt(10, 10), End: image.Pt(40, 30), Color: shape.Color{G: 1, A: 1}}
	if got != want {
		t.Fatalf("stored %+v, want %+v", got, want)
	}
	if len(committed) != 1 || committed[0] != want {
		t.Fatalf("commit callback got %+v", committed)
	}
}

func TestLaterColorChangeDoesNotTouchStoredShape(t *testing.T) {
	s := New(VariantShapes)
	s.Press(image.Pt(0, 0))
	s.Release(image.Pt(10, 10))
	s.Color = shape.Color{B: 1, A: 1}
	if s.Shapes.At(0).Color != shape.Red {
		t.Fatalf("stored colour changed to %v", s.Shapes.At(0).Color)
	}
}

func TestPointsVariantAppendsOnPress(t *testing.T) {
	s := New(VariantPoints)
	s.Press(image.Pt(3, 4))
	s.Release(image.Pt(3, 4))
	s.Press(image.Pt(5, 6))
	if s.Points.Len() != 2 {
		t.Fatalf("points = %v", s.Points.All())
	}
	if s.Shapes.Len() != 0 {
		t.Fatalf("points variant stored shapes")
	}
	if s.State() != StateIdle {
		t.Fatalf("points variant never drags")
	}
}

func TestQuitStopsProcessing(t *testing.T) {
	s := New(VariantShapes)
	s.Press(image.Pt(0, 0))
	s.Quit()
	s.Release(image.Pt(10, 10))
	s.Press(image.Pt(1, 1))
	s.Release(image.Pt(2, 2))
	if s.Running() {
		t.Fatalf("still running after Quit")
	}
	if s.Shapes.Len() != 0 {
		t.Fatalf("shapes processed after quit: %d", s.Shapes.Len())
	}

	p := New(VariantPoints)
	p.Quit()
	p.Press(image.Pt(1, 1))
	if p.Points.Len() != 0 {
		t.Fatalf("points processed after quit")
	}
}

func TestReleaseOutsideCanvasIsClamped(t *testing.T) {
	s := New(VariantShapes, WithBounds(image.Rect(0, 0, 800, 600)))
	s.Press(image.Pt(700, 500))
	s.Release(image.Pt(900, -20))
	if got := s.Shapes.At(0).End; got != image.Pt(799, 0) {
		t.Fatalf("end = %v, want (799,0)", got)
	}
}

func TestPreviewIsNotStored(t *testing.T) {
	s := New(VariantShapes)
	if _, ok := s.Preview(image.Pt(1, 1)); ok {
		t.Fatalf("preview while idle")
	}
	s.Press(image.Pt(0, 0))
	sh, ok := s.Preview(image.Pt(20, 20))
	if !ok || sh.End != image.Pt(20, 20) || sh.ID != "" {
		t.Fatalf("preview = %+v, %v", sh, ok)
	}
	if s.Shapes.Len() != 0 {
		t.Fatalf("preview leaked into the store")
	}
}

func TestDefaultIDsAreUnique(t *testing.T) {
	s := New(VariantShapes)
	for i := 0; i < 3; i++ {
		s.Press(image.Pt(0, 0))
		s.Release(image.Pt(1, 1))
	}
	seen := map[string]bool{}
	s.Shapes.Each(func(sh shape.Shape) {
		if sh.ID == "" || seen[sh.ID] {
			t.Fatalf("bad id %q", sh.ID)
		}
		seen[sh.ID] = true
	})
}
