package drag

// BodyMove computes the boundary times for one whole-segment drag
// sample. The segment keeps its duration except where a neighbor
// resolution shifts both edges together; the duration is carried
// through as offsets from the anchor times, never recomputed, so it
// cannot drift over a long drag.
//
// Nothing is mutated here. The returned updates (at most one per
// neighbor) name the boundary writes the caller must apply.
func BodyMove(sess Session, x float64, tr Transform) (Boundaries, []NeighborUpdate) {
	offset := tr.PixelsToTime(x - sess.AnchorX)

	b := Boundaries{
		Start: sess.Anchor.Start + offset,
		End:   sess.Anchor.End + offset,
	}

	// pinned against the waveform origin without changing length
	if b.Start < 0 {
		b.Start = 0
		b.End = sess.Anchor.Duration()
	}

	r := sess.Policy.resolver()

	var updates []NeighborUpdate
	b, prevUpdate := r.resolveStart(sess, b)
	if prevUpdate != nil {
		updates = append(updates, *prevUpdate)
	}
	b, nextUpdate := r.resolveEnd(sess, b)
	if nextUpdate != nil {
		updates = append(updates, *nextUpdate)
	}

	return b, updates
}
