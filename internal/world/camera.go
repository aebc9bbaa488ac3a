package world

// Rect is a rectangular area of cells.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Contains returns true if the given point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Camera is a viewport onto the map measured in cells.
type Camera struct {
	Width, Height int
}

// NewCamera creates a camera showing width x height cells.
func NewCamera(width, height int) Camera {
	return Camera{Width: width, Height: height}
}

// Viewport returns the visible cells when following a focus point.
// The focus is kept centred; the view is clamped to the map edges, and a map
// smaller than the camera is pinned at the origin.
func (c Camera) Viewport(m *Map, focusX, focusY float64) Rect {
	view := Rect{Width: c.Width, Height: c.Height}
	view.X = clampOrigin(int(focusX+0.5)-c.Width/2, m.Width, c.Width)
	view.Y = clampOrigin(int(focusY+0.5)-c.Height/2, m.Height, c.Height)
	return view
}

func clampOrigin(origin, mapSize, viewSize int) int {
	if mapSize <= viewSize {
		return 0
	}
	if origin < 0 {
		return 0
	}
	if origin > mapSize-viewSize {
		return mapSize - viewSize
	}
	return origin
}
