package split

// span is a half-open index range into a window's content. Fragments are
// described as spans so bisection never copies content; the final substring
// shares the window's backing array.
type span struct {
	lo, hi int
}

// bisectSpans covers [0, n) with contiguous spans of width at most max,
// emitted in ascending order. A span wider than max is split at its midpoint
// (rounding down) and both halves re-examined. Termination: width strictly
// halves on every split and a width-1 span always fits.
func bisectSpans(n, max int) []span {
	if n == 0 {
		return nil
	}

	var spans []span
	stack := []span{{0, n}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.hi-s.lo <= max {
			spans = append(spans, s)
			continue
		}

		// Push right before left so the left half is examined first,
		// keeping emission strictly left-to-right.
		mid := s.lo + (s.hi-s.lo)/2
		stack = append(stack, span{mid, s.hi}, span{s.lo, mid})
	}
	return spans
}
