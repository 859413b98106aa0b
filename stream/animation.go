package stream

// An Animation renders the frame for a point in wall-clock time.
type Animation interface {
	CalculateFrame(runtimeMs int64) *Frame
}
