package drag

// Geometry gives the current frame-relative marker positions and their
// pixel footprints, used to keep the two handles of one segment apart.
type Geometry struct {
	StartX     float64
	EndX       float64
	StartWidth float64
	EndWidth   float64
}

// HandleResult is the outcome of one handle drag sample.
type HandleResult struct {
	X        float64 // clamped frame-relative pixel position
	Time     float64 // boundary time to commit on the dragged segment
	Neighbor *NeighborUpdate
}

// HandleMove computes the permitted position for a single boundary
// handle. Handles move horizontally only; the caller discards any
// vertical motion. The proposed pixel position is clamped into the
// policy- and neighbor-derived limits before it is converted back to
// time, so the committed boundary can never cross a limit.
func HandleMove(
	sess Session,
	startMarker bool,
	proposedX float64,
	geom Geometry,
	tr Transform,
) HandleResult {
	r := sess.Policy.resolver()

	var lower, upper float64
	if startMarker {
		// stay strictly left of the end handle's leading edge
		upper = geom.EndX - geom.EndWidth
		lower = r.startLowerLimit(sess, tr)
	} else {
		lower = geom.StartX + geom.StartWidth
		upper = r.endUpperLimit(sess, tr)
	}

	x := clamp(proposedX, lower, upper)
	t := tr.PixelOffsetToTime(x)

	return HandleResult{
		X:        x,
		Time:     t,
		Neighbor: r.trackNeighbor(sess, startMarker, t),
	}
}
