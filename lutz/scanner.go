package lutz

import (
	"github.com/katalvlaran/blobscan/blob"
	"github.com/katalvlaran/blobscan/grid"
)

// unset marks a slot without a segment start or end on the current row.
const unset = -1

// slot is one open object: where its segment on the current row started
// and ended, and every pixel gathered for it so far.
type slot struct {
	start, end int
	pixels     []blob.Pixel
}

// scanner owns the state of a single Run. Nothing in it outlives the run.
type scanner struct {
	cls   *grid.Classifier
	width int

	markers []marker // len width+1; previous row until overwritten
	pending [][]blob.Pixel

	// saved PS values of enclosing objects
	psStack []status
	psTop   int

	// slots[0] is a sentinel that never holds pixels; co is the current slot
	slots []slot
	co    int

	ps, cs   status
	row, col int

	emit  func(px []blob.Pixel)
	stats Stats
}

// newScanner sizes every auxiliary array from the row width. Stacks get two
// spare entries: a one-column grid already nests two statuses.
func newScanner(cls *grid.Classifier, emit func([]blob.Pixel)) *scanner {
	w := cls.Width()
	s := &scanner{
		cls:     cls,
		width:   w,
		markers: make([]marker, w+1),
		pending: make([][]blob.Pixel, w+1),
		psStack: make([]status, w+2),
		slots:   make([]slot, w+2),
		emit:    emit,
	}
	for i := range s.slots {
		s.slots[i] = slot{start: unset, end: unset}
	}
	return s
}

// run scans every row and flushes what is left in the pending buffer.
func (s *scanner) run() {
	for s.row = 0; s.row < s.cls.Height(); s.row++ {
		s.scanRow()
	}
	s.stats.Rows = s.cls.Height()

	if s.co != 0 || s.psTop != 0 {
		s.fail("finish", "stacks not empty after last row")
	}
	for col, px := range s.pending {
		if len(px) > 0 {
			s.emit(px)
			s.pending[col] = nil
		}
	}
}

// scanRow processes columns 0..width, the last one being synthetic so a
// marker or run touching the right edge is still resolved.
func (s *scanner) scanRow() {
	s.ps, s.cs = complete, notInObject

	for s.col = 0; s.col <= s.width; s.col++ {
		prev := s.markers[s.col]
		s.markers[s.col] = markNone

		var (
			v  float64
			fg bool
		)
		if s.col < s.width {
			v, fg = s.cls.Classify(s.col, s.row)
		}

		if fg {
			if s.cs == notInObject {
				s.startSegment()
			}
			if prev != markNone {
				s.resolve(prev)
			}
			s.appendPixel(blob.NewPixel(s.col, s.row, v))
			continue
		}

		if prev != markNone {
			s.resolve(prev)
		}
		if s.cs == inObject {
			s.endSegment()
		}
	}
}

func (s *scanner) appendPixel(p blob.Pixel) {
	if s.co == 0 {
		s.fail("append", "foreground pixel with no open slot")
	}
	s.slots[s.co].pixels = append(s.slots[s.co].pixels, p)
	s.stats.Foreground++
}

// startSegment opens a run at s.col. Under an object from the row above it
// continues that object; otherwise it opens a new slot.
func (s *scanner) startSegment() {
	s.cs = inObject

	if s.ps != inObject {
		s.pushSlot()
		s.markers[s.col] = markStartMajor
		return
	}
	cur := &s.slots[s.co]
	if cur.start == unset {
		s.markers[s.col] = markStartMajor
		cur.start = s.col
	} else {
		s.markers[s.col] = markStartMinor
	}
}

// endSegment closes the run that ended at s.col-1.
func (s *scanner) endSegment() {
	s.cs = notInObject

	if s.ps != complete {
		s.markers[s.col] = markEndMinor
		s.slots[s.co].end = s.col
		return
	}
	s.popSlot()
	s.markers[s.col] = markEndMajor
}

// resolve applies the marker the previous row left at s.col.
func (s *scanner) resolve(m marker) {
	switch m {
	case markStartMajor:
		s.pushStatus()
		if s.cs == notInObject {
			// first contact with this object on the current row
			s.pushComplete()
			s.openSlot()
			cur := &s.slots[s.co]
			cur.pixels = s.pending[s.col]
			cur.start, cur.end = unset, unset
			s.pending[s.col] = nil
		} else {
			cur := &s.slots[s.co]
			cur.pixels = append(cur.pixels, s.pending[s.col]...)
			s.pending[s.col] = nil
		}
		s.ps = inObject

	case markStartMinor:
		if s.cs == inObject && s.ps == complete {
			s.mergeSlots()
		}
		s.ps = inObject

	case markEndMinor:
		s.ps = incomplete

	case markEndMajor:
		s.ps = s.popSaved("resolve F")
		if s.cs != notInObject || s.ps != complete {
			return
		}
		cur := &s.slots[s.co]
		if cur.start == unset {
			// untouched on this row: the object can never grow again
			s.emit(cur.pixels)
			cur.pixels = cur.pixels[:0]
		} else {
			if cur.end == unset {
				s.fail("resolve F", "open slot has a start but no end")
			}
			if len(s.pending[cur.start]) > 0 {
				s.fail("resolve F", "pending column already occupied")
			}
			s.markers[cur.end] = markEndMajor
			s.pending[cur.start] = cur.pixels
			cur.pixels = nil
		}
		s.closeSlot()
		s.ps = s.popSaved("resolve F")

	default:
		s.fail("resolve", "unknown marker "+m.String())
	}
}

// mergeSlots joins the run opened as a new object on this row into the
// object below the s marker. The newer slot hands over its pixels and, if
// the older one has not started on this row yet, its start column.
func (s *scanner) mergeSlots() {
	if s.psTop == 0 {
		s.fail("merge", "status stack underflow")
	}
	s.psTop--
	if s.co < 2 {
		s.fail("merge", "no earlier slot to merge into")
	}

	newer := &s.slots[s.co]
	k := newer.start
	older := &s.slots[s.co-1]
	older.pixels = append(older.pixels, newer.pixels...)
	newer.pixels = newer.pixels[:0]
	newer.start, newer.end = unset, unset
	s.co--

	if older.start == unset {
		older.start = k
	} else {
		s.markers[k] = markStartMinor
	}
}

// pushSlot opens a fresh slot whose segment starts at s.col.
func (s *scanner) pushSlot() {
	s.pushStatus()
	s.openSlot()
	cur := &s.slots[s.co]
	cur.start, cur.end = s.col, unset
	cur.pixels = cur.pixels[:0]
}

// popSlot finishes the current slot's branch: its pixels wait in the
// pending buffer at its start column for the row below.
func (s *scanner) popSlot() {
	s.popStatus()
	cur := &s.slots[s.co]
	if cur.start == unset {
		s.fail("pop slot", "closing a slot without a start column")
	}
	s.pending[cur.start] = append(s.pending[cur.start], cur.pixels...)
	cur.pixels = cur.pixels[:0]
	cur.start, cur.end = unset, unset
	s.closeSlot()
}

func (s *scanner) openSlot() {
	if s.co+1 >= len(s.slots) {
		s.fail("open slot", "slot stack overflow")
	}
	s.co++
	s.stats.PeakSlots = max(s.stats.PeakSlots, s.co)
}

func (s *scanner) closeSlot() {
	if s.co == 0 {
		s.fail("close slot", "slot stack underflow")
	}
	s.co--
}

// pushStatus saves PS and resets it to complete.
func (s *scanner) pushStatus() {
	if s.psTop >= len(s.psStack) {
		s.fail("push status", "status stack overflow")
	}
	s.psStack[s.psTop] = s.ps
	s.ps = complete
	s.psTop++
	s.stats.PeakDepth = max(s.stats.PeakDepth, s.psTop)
}

// pushComplete saves a complete status for a newly opened object.
func (s *scanner) pushComplete() {
	if s.psTop >= len(s.psStack) {
		s.fail("push status", "status stack overflow")
	}
	s.psStack[s.psTop] = complete
	s.psTop++
	s.stats.PeakDepth = max(s.stats.PeakDepth, s.psTop)
}

// popStatus restores PS from the stack, clearing the vacated entry.
func (s *scanner) popStatus() {
	if s.psTop < len(s.psStack) {
		s.psStack[s.psTop] = complete
	}
	s.ps = s.popSaved("pop status")
}

func (s *scanner) popSaved(op string) status {
	if s.psTop == 0 {
		s.fail(op, "status stack underflow")
	}
	s.psTop--
	return s.psStack[s.psTop]
}

// fail aborts the run; Labeler.Run recovers the *InvariantError.
func (s *scanner) fail(op, reason string) {
	panic(&InvariantError{
		Op:     op,
		Row:    s.row,
		Col:    s.col,
		Slot:   s.co,
		Depth:  s.psTop,
		Reason: reason,
	})
}
