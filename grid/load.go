package grid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// ReadCSV parses a numeric grid, one row per record. Lines starting with
// '#' are skipped; every record must have the same number of fields.
// Complexity: O(W×H).
func ReadCSV(r io.Reader) (*Slice, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	cr.ReuseRecord = true
	cr.FieldsPerRecord = 0 // first record fixes the width

	var (
		data  []float64
		width int
		row   int
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, ErrNonRectangular
			}
			return nil, fmt.Errorf("grid: read csv: %w", err)
		}
		if row == 0 {
			width = len(rec)
		}
		for col, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %q", ErrParse, row, col, cell)
			}
			data = append(data, v)
		}
		row++
	}
	if row == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	return NewSlice(data, width, row)
}

// LoadImage decodes an image file (PNG, JPEG, GIF, TIFF or BMP) and wraps
// it with FromImage.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("grid: decode %s: %w", path, err)
	}

	return FromImage(img)
}

// LoadCSV opens path and parses it with ReadCSV.
func LoadCSV(path string) (*Slice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open csv: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}
