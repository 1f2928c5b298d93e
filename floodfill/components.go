package floodfill

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/grid"
)

// ErrMismatch indicates two labelings do not partition the same pixels
// the same way.
var ErrMismatch = errors.New("floodfill: labelings differ")

// neighborOffsets lists the 8 neighbors: N, NE, E, SE, S, SW, W, NW.
var neighborOffsets = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Components finds every 8-connected region of foreground cells, in order
// of each region's first cell in row-major order. Regions with fewer than
// minPixels cells are dropped.
func Components(c *grid.Classifier, minPixels int) []*blob.Object {
	w, h := c.Width(), c.Height()
	seen := make([]bool, w*h)
	var comps []*blob.Object

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i0 := y*w + x
			if seen[i0] || !c.IsForeground(x, y) {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			obj := blob.New()

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ux, uy := u%w, u/w
				obj.Add(blob.NewPixel(ux, uy, c.Value(ux, uy)))
				for _, d := range neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !c.InBounds(vx, vy) {
						continue
					}
					vi := vy*w + vx
					if !seen[vi] && c.IsForeground(vx, vy) {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			if obj.PixelCount() >= minPixels {
				comps = append(comps, obj)
			}
		}
	}
	return comps
}

// Equivalent reports whether a and b hold the same pixel-position sets,
// ignoring object order and pixel order. The error names the first
// differing object in canonical order.
func Equivalent(a, b []*blob.Object) error {
	ka, kb := canonical(a), canonical(b)
	if len(ka) != len(kb) {
		return fmt.Errorf("%w: %d objects vs %d", ErrMismatch, len(ka), len(kb))
	}
	for i := range ka {
		if !samePoints(ka[i], kb[i]) {
			return fmt.Errorf("%w: object %d: %d pixels from %v vs %d pixels from %v",
				ErrMismatch, i, len(ka[i]), ka[i][0], len(kb[i]), kb[i][0])
		}
	}
	return nil
}

// canonical sorts each object's positions and then the objects by their
// first position. Empty objects are skipped.
func canonical(objs []*blob.Object) [][]blob.Point {
	out := make([][]blob.Point, 0, len(objs))
	for _, o := range objs {
		if o == nil || o.Empty() {
			continue
		}
		out = append(out, o.Positions())
	}
	sort.Slice(out, func(i, j int) bool {
		return less(out[i][0], out[j][0])
	})
	return out
}

func less(p, q blob.Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

func samePoints(p, q []blob.Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
