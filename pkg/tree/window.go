package tree

// Window picks the visible entries [start, end) to draw in a viewport of
// height available, given each entry's rendered height, the selected index
// and the previous scroll offset.
//
// The window starts at min(offset, selected) and grows forward while the
// entries fit. If the selected entry is not reached, the window keeps
// growing and drops entries from the front until the selected entry is the
// last one drawn. The result always satisfies start <= selected < end. Its
// heights sum to at most available, unless the selected entry alone is
// taller than the viewport, in which case it is the only entry.
//
// Heights must not be negative. An empty heights list yields (0, 0).
// selected is clamped into range.
func Window(heights []int, selected, available, offset int) (start, end int) {
	n := len(heights)
	if n == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), n-1)
	available = max(available, 0)
	start = min(max(offset, 0), selected)
	end = start

	used := 0
	for end < n && used+heights[end] <= available {
		used += heights[end]
		end++
	}

	for selected >= end {
		used += heights[end]
		end++
		for used > available && start < selected {
			used -= heights[start]
			start++
		}
	}
	return start, end
}
