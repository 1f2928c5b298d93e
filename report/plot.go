package report

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/blobscan/blob"
)

// Sentinel errors for rendering and writing.
var (
	ErrFormat   = errors.New("report: unknown output format")
	ErrGridSize = errors.New("report: grid size must be positive")
)

// maxLegend is the largest object count that still gets a legend.
const maxLegend = 12

// Plot draws every object's pixels in its own colour on a width x height
// grid, row 0 at the top, with the weighted centroid marked by a cross. The
// image format follows the extension of path (png, svg, pdf, ...).
func Plot(objs []*blob.Object, width, height int, path string) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrGridSize, width, height)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d objects", len(objs))
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.X.Min, p.X.Max = -0.5, float64(width)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(height)-0.5
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	colors := generateColors(len(objs))
	centroids := make(plotter.XYs, 0, len(objs))
	for i, o := range objs {
		pts := make(plotter.XYs, 0, o.PixelCount())
		for _, pt := range o.Positions() {
			pts = append(pts, plotter.XY{X: float64(pt.X), Y: float64(pt.Y)})
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("report: object %d: %w", i, err)
		}
		sc.GlyphStyle.Color = colors[i]
		sc.GlyphStyle.Shape = draw.BoxGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		if len(objs) <= maxLegend {
			p.Legend.Add(fmt.Sprintf("#%d (%d px)", i, o.PixelCount()), sc)
		}

		cx, cy := o.Centroid(true)
		centroids = append(centroids, plotter.XY{X: cx, Y: cy})
	}

	if len(centroids) > 0 {
		cs, err := plotter.NewScatter(centroids)
		if err != nil {
			return fmt.Errorf("report: centroids: %w", err)
		}
		cs.GlyphStyle.Color = color.Black
		cs.GlyphStyle.Shape = draw.CrossGlyph{}
		cs.GlyphStyle.Radius = vg.Points(4)
		p.Add(cs)
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	w, h := canvasSize(width, height)
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}

// canvasSize keeps the grid aspect ratio with the long side at 8 inches.
func canvasSize(width, height int) (vg.Length, vg.Length) {
	long := 8 * vg.Inch
	if width >= height {
		return long, max(2*vg.Inch, long*vg.Length(height)/vg.Length(width))
	}
	return max(2*vg.Inch, long*vg.Length(width)/vg.Length(height)), long
}

// generateColors spreads n hues evenly around the colour wheel.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := range n {
		r, g, b := hslToRGB(float64(i)/float64(n), 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL in [0,1] to 8-bit RGB.
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	if s == 0 {
		v := uint8(l * 255)
		return v, v, v
	}
	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q
	return uint8(hueToRGB(p, q, h+1.0/3.0) * 255),
		uint8(hueToRGB(p, q, h) * 255),
		uint8(hueToRGB(p, q, h-1.0/3.0) * 255)
}

func hueToRGB(p, q, t float64) float64 {
	switch {
	case t < 0:
		t++
	case t > 1:
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
