package entity

import "math"

// TileCollision is the collision class of a tile
type TileCollision int

const (
	// Passable tiles never block movement
	Passable TileCollision = iota
	// Solid tiles block movement from every side
	Solid
	// Platform tiles block only from above
	Platform
)

// String returns the string representation of the collision class
func (c TileCollision) String() string {
	switch c {
	case Passable:
		return "Passable"
	case Solid:
		return "Solid"
	case Platform:
		return "Platform"
	default:
		return "Unknown"
	}
}

// Tile represents a single tile in the level grid.
// Visual is an opaque handle for renderers; collision code ignores it.
type Tile struct {
	Collision TileCollision
	Visual    string
	Variation int
}

// Grid is the static collision grid of a level.
// It is read-only once built.
type Grid struct {
	width      int
	height     int
	tileWidth  float64
	tileHeight float64
	tiles      []Tile // row-major
}

// NewGrid creates an all-passable grid
func NewGrid(width, height int, tileWidth, tileHeight float64) *Grid {
	return &Grid{
		width:      width,
		height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		tiles:      make([]Tile, width*height),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// TileWidth returns the width of one tile in pixels
func (g *Grid) TileWidth() float64 { return g.tileWidth }

// TileHeight returns the height of one tile in pixels
func (g *Grid) TileHeight() float64 { return g.tileHeight }

// InBounds reports whether (x, y) addresses a stored tile
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set stores a tile. Out-of-range coordinates are ignored.
// Only level builders call Set, before the grid is shared.
func (g *Grid) Set(x, y int, t Tile) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y*g.width+x] = t
}

// Tile returns the stored tile, or a zero Tile outside the grid
func (g *Grid) Tile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{}
	}
	return g.tiles[y*g.width+x]
}

// Query returns the collision class at the given tile coordinates.
// Columns outside the grid are Solid so nothing escapes sideways.
// Rows outside the grid are Passable so entities can jump past the top
// and fall through the bottom.
func (g *Grid) Query(x, y int) TileCollision {
	if x < 0 || x >= g.width {
		return Solid
	}
	if y < 0 || y >= g.height {
		return Passable
	}
	return g.tiles[y*g.width+x].Collision
}

// Bounds returns the world-space rectangle of a tile
func (g *Grid) Bounds(x, y int) Rect {
	return Rect{
		X: float64(x) * g.tileWidth,
		Y: float64(y) * g.tileHeight,
		W: g.tileWidth,
		H: g.tileHeight,
	}
}

// TileAt returns the tile coordinates containing a world point
func (g *Grid) TileAt(p Vec2) (x, y int) {
	return int(math.Floor(p.X / g.tileWidth)), int(math.Floor(p.Y / g.tileHeight))
}

// PixelHeight returns the world-space height of the grid
func (g *Grid) PixelHeight() float64 {
	return float64(g.height) * g.tileHeight
}

// PixelWidth returns the world-space width of the grid
func (g *Grid) PixelWidth() float64 {
	return float64(g.width) * g.tileWidth
}

// Cell is one (column, row, tile identifier) triple handed over by a map parser
type Cell struct {
	Col int
	Row int
	ID  string
}

// CellMap is the parser-facing description of a level.
// TileWidth/TileHeight are zero when the source format carries no tile size.
type CellMap struct {
	Name       string
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64
	Cells      []Cell
}
