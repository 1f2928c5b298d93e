package lutz

// marker is the per-column tag one row leaves for the next.
type marker uint8

const (
	markNone       marker = iota
	markStartMajor        // S: first segment of an object on its row
	markStartMinor        // s: further segment of an object already seen on its row
	markEndMinor          // f: segment ended, object continues on that row
	markEndMajor          // F: last segment of the object on that row ended
)

func (m marker) String() string {
	switch m {
	case markNone:
		return "-"
	case markStartMajor:
		return "S"
	case markStartMinor:
		return "s"
	case markEndMinor:
		return "f"
	case markEndMajor:
		return "F"
	}
	return "?"
}

// status carries PS (segment above) and CS (current run) between columns.
type status uint8

const (
	complete    status = iota // PS: nothing above can extend further down
	incomplete                // PS: the object above continues to the right
	inObject                  // PS or CS: inside an object
	notInObject               // CS: outside any run
)

func (s status) String() string {
	switch s {
	case complete:
		return "complete"
	case incomplete:
		return "incomplete"
	case inObject:
		return "object"
	case notInObject:
		return "nonobject"
	}
	return "?"
}
