// Package world provides the tile map, grid coordinates and facing directions.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// ParseTile converts a layout character into a tile.
// Anything that is not a floor character is treated as wall.
func ParseTile(r rune) Tile {
	if r == rune(TileFloor) {
		return TileFloor
	}
	return TileWall
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}
