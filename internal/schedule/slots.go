package schedule

import "time"

// ExpandToUnitSlots splits a window into contiguous unit-sized windows
// covering [Start, End) with no gaps or overlaps. The window's duration is
// expected to be an exact multiple of unit (admission guarantees that via
// the granularity check), but a trailing remainder is still emitted as a
// shorter final slot so the concatenation always reconstructs the window.
func ExpandToUnitSlots(w Window, unit time.Duration) []Window {
	if unit <= 0 || !w.Start.Before(w.End) {
		return nil
	}
	out := make([]Window, 0, w.Duration()/unit+1)
	for cur := w.Start; cur.Before(w.End); {
		next := cur.Add(unit)
		if next.After(w.End) {
			next = w.End
		}
		out = append(out, Window{Start: cur, End: next})
		cur = next
	}
	return out
}
