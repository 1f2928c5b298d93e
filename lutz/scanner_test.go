package lutz

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/grid"
)

func testScanner(t *testing.T, width int) *scanner {
	t.Helper()
	c, err := grid.NewClassifier(grid.AccessorFunc(func(int, int) float64 { return 0 }), width, 1, 0)
	require.NoError(t, err)
	return newScanner(c, func([]blob.Pixel) {})
}

// catch runs fn and returns the *InvariantError it panicked with, if any.
func catch(fn func()) (ie *InvariantError) {
	defer func() {
		if r := recover(); r != nil {
			ie = r.(*InvariantError)
		}
	}()
	fn()
	return nil
}

// TestScanner_Underflow: an F marker with nothing saved is a protocol break.
func TestScanner_Underflow(t *testing.T) {
	s := testScanner(t, 3)
	s.row, s.col = 4, 2
	ie := catch(func() { s.resolve(markEndMajor) })
	require.NotNil(t, ie)

	assert.Equal(t, 4, ie.Row)
	assert.Equal(t, 2, ie.Col)
	assert.Equal(t, 0, ie.Depth)
	assert.True(t, errors.Is(ie, ErrInvariant))
	assert.True(t, strings.Contains(ie.Error(), "row 4 col 2"), ie.Error())
}

// TestScanner_SlotOverflow: opening more slots than the arena holds fails
// instead of indexing out of range.
func TestScanner_SlotOverflow(t *testing.T) {
	s := testScanner(t, 1)
	ie := catch(func() {
		for i := 0; i < 10; i++ {
			s.openSlot()
		}
	})
	require.NotNil(t, ie)
	assert.Equal(t, "open slot", ie.Op)
	assert.Equal(t, len(s.slots)-1, ie.Slot)
}

func TestScanner_StatusOverflow(t *testing.T) {
	s := testScanner(t, 1)
	ie := catch(func() {
		for i := 0; i < 10; i++ {
			s.pushStatus()
		}
	})
	require.NotNil(t, ie)
	assert.Equal(t, len(s.psStack), ie.Depth)
}

// TestScanner_MergeNeedsTwoSlots: an s marker under a fresh run with no
// older slot cannot be merged.
func TestScanner_MergeNeedsTwoSlots(t *testing.T) {
	s := testScanner(t, 4)
	s.pushSlot()
	s.cs, s.ps = inObject, complete
	ie := catch(func() { s.resolve(markStartMinor) })
	require.NotNil(t, ie)
	assert.Equal(t, "merge", ie.Op)
}

// TestScanner_SlotReuseIsClean: a popped slot handed out again carries no
// pixels from its previous owner.
func TestScanner_SlotReuseIsClean(t *testing.T) {
	s := testScanner(t, 4)
	s.col = 0
	s.pushSlot()
	s.appendPixel(blob.NewPixel(0, 0, 1))
	s.popSlot()
	require.Len(t, s.pending[0], 1)

	s.col = 2
	s.pushSlot()
	assert.Empty(t, s.slots[s.co].pixels)
	assert.Equal(t, 2, s.slots[s.co].start)
	assert.Equal(t, unset, s.slots[s.co].end)
}

// TestMarkerRow traces the markers one row leaves for the next.
func TestMarkerRow(t *testing.T) {
	// row 0: ##.#  -> two separate objects, both complete after the row
	src, err := grid.From2D([][]float64{{1, 1, 0, 1}})
	require.NoError(t, err)
	c, err := grid.NewClassifier(src, 4, 1, 0)
	require.NoError(t, err)

	var emitted int
	s := newScanner(c, func([]blob.Pixel) { emitted++ })
	s.row = 0
	s.scanRow()

	var b strings.Builder
	for _, m := range s.markers {
		b.WriteString(m.String())
	}
	assert.Equal(t, "S-FSF", b.String())
	assert.Equal(t, 0, s.co)
	assert.Equal(t, 0, emitted, "objects wait in the pending buffer")
	assert.Len(t, s.pending[0], 2)
	assert.Len(t, s.pending[3], 1)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "complete", complete.String())
	assert.Equal(t, "nonobject", notInObject.String())
	assert.Equal(t, "?", marker(99).String())
}
