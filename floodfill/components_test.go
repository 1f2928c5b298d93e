package floodfill

import (
	"errors"
	"sort"
	"testing"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/grid"
)

func classify(t *testing.T, rows [][]float64) *grid.Classifier {
	t.Helper()
	s, err := grid.From2D(rows)
	if err != nil {
		t.Fatalf("From2D failed: %v", err)
	}
	c, err := grid.NewClassifier(s, s.Width, s.Height, 0)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}
	return c
}

// TestComponents_Diagonal tests Components on a 5×5 cross of diagonal
// hops: with 8-connectivity all 9 cells form one region.
//
// Grid:
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestComponents_Diagonal(t *testing.T) {
	c := classify(t, [][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	comps := Components(c, 0)
	if len(comps) != 1 {
		t.Fatalf("got %d components; want 1", len(comps))
	}
	if size := comps[0].PixelCount(); size != 9 {
		t.Errorf("component size = %d; want 9", size)
	}
}

// TestComponents_SizesAndFilter checks sizes and the minimum-size filter.
//
// Grid:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 0 1
func TestComponents_SizesAndFilter(t *testing.T) {
	c := classify(t, [][]float64{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 1},
	})
	comps := Components(c, 0)
	sizes := make([]int, len(comps))
	for i, o := range comps {
		sizes[i] = o.PixelCount()
	}
	sort.Ints(sizes)
	if len(sizes) != 2 || sizes[0] != 1 || sizes[1] != 4 {
		t.Errorf("component sizes = %v; want [1 4]", sizes)
	}

	if got := len(Components(c, 2)); got != 1 {
		t.Errorf("minPixels=2: got %d components; want 1", got)
	}
}

// TestComponents_AllBackground: an all-background grid has no components.
func TestComponents_AllBackground(t *testing.T) {
	c := classify(t, [][]float64{{0, 0}, {0, 0}})
	if comps := Components(c, 0); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

func TestEquivalent(t *testing.T) {
	a := []*blob.Object{
		blob.FromPixels(blob.NewPixel(0, 0, 1), blob.NewPixel(1, 0, 1)),
		blob.FromPixels(blob.NewPixel(4, 4, 1)),
	}
	b := []*blob.Object{
		blob.FromPixels(blob.NewPixel(4, 4, 9)),
		blob.FromPixels(blob.NewPixel(1, 0, 1), blob.NewPixel(0, 0, 1)),
	}
	if err := Equivalent(a, b); err != nil {
		t.Fatalf("Equivalent = %v; want nil", err)
	}

	c := []*blob.Object{
		blob.FromPixels(blob.NewPixel(0, 0, 1)),
		blob.FromPixels(blob.NewPixel(1, 0, 1)),
		blob.FromPixels(blob.NewPixel(4, 4, 1)),
	}
	if err := Equivalent(a, c); !errors.Is(err, ErrMismatch) {
		t.Errorf("split object: got %v; want ErrMismatch", err)
	}
	d := []*blob.Object{
		blob.FromPixels(blob.NewPixel(0, 0, 1), blob.NewPixel(2, 0, 1)),
		blob.FromPixels(blob.NewPixel(4, 4, 1)),
	}
	if err := Equivalent(a, d); !errors.Is(err, ErrMismatch) {
		t.Errorf("moved pixel: got %v; want ErrMismatch", err)
	}
}
