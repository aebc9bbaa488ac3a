package world

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrEmptyLayout is returned when a layout has no rows or an empty first row.
var ErrEmptyLayout = errors.New("empty map layout")

// Map is a fixed-size grid of tiles. It is immutable once constructed.
type Map struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Map{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
}

// ParseMap builds a map from text rows, one character per tile.
// Every row must have the same width.
func ParseMap(rows []string) (*Map, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyLayout
	}

	width := utf8.RuneCountInString(rows[0])
	m := NewMap(width, len(rows))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, n, width)
		}
		x := 0
		for _, r := range row {
			m.tiles[y][x] = ParseTile(r)
			x++
		}
	}
	return m, nil
}

// InBounds reports whether (x, y) lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile at the given position. Out of bounds is a wall.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y][x]
}

// IsWalkable returns true if the given position can be walked on.
func (m *Map) IsWalkable(x, y int) bool {
	return m.TileAt(x, y).IsPassable()
}

// FloorCount returns the number of walkable tiles.
func (m *Map) FloorCount() int {
	count := 0
	for y := range m.tiles {
		for _, t := range m.tiles[y] {
			if t.IsPassable() {
				count++
			}
		}
	}
	return count
}
