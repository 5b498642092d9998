package logic

// Navigator handles cursor movement and viewport management over a flat list
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

func (n *Navigator) Cursor() int         { return n.cursor }
func (n *Navigator) ViewportOffset() int { return n.viewportOffset }
func (n *Navigator) ViewportHeight() int { return n.viewportHeight }
func (n *Navigator) Total() int          { return n.total }

// SetViewportHeight sets how many rows are visible
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.clampOffset()
	n.ensureCursorVisible()
}

// SetTotal sets the number of rows and pulls the cursor back into range
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.total = total
	n.cursor = clamp(n.cursor, 0, n.maxIndex())
	n.clampOffset()
	n.ensureCursorVisible()
}

// SetCursor moves the cursor to index and scrolls it into view
func (n *Navigator) SetCursor(index int) {
	n.cursor = clamp(index, 0, n.maxIndex())
	n.ensureCursorVisible()
}

// SetViewportOffset scrolls to offset and moves the cursor to the first visible row
func (n *Navigator) SetViewportOffset(offset int) {
	n.viewportOffset = offset
	n.clampOffset()
	n.cursor = clamp(n.viewportOffset, 0, n.maxIndex())
}

// Move applies a direction: up, down, pageup, pagedown, home or end
func (n *Navigator) Move(direction string) {
	switch direction {
	case "up":
		n.SetCursor(n.cursor - 1)
	case "down":
		n.SetCursor(n.cursor + 1)
	case "pageup":
		n.SetCursor(n.cursor - n.viewportHeight)
	case "pagedown":
		n.SetCursor(n.cursor + n.viewportHeight)
	case "home":
		n.SetCursor(0)
	case "end":
		n.SetCursor(n.maxIndex())
	}
}

func (n *Navigator) maxIndex() int {
	if n.total == 0 {
		return 0
	}
	return n.total - 1
}

func (n *Navigator) ensureCursorVisible() {
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	}
	if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}
	n.clampOffset()
}

// clampOffset keeps the viewport filled when the list is longer than it
func (n *Navigator) clampOffset() {
	maxOffset := n.total - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	n.viewportOffset = clamp(n.viewportOffset, 0, maxOffset)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
