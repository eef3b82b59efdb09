package system

import (
	"iter"
	"math"

	"github.com/younwookim/gemrun/internal/domain/entity"
)

// TileGrid is the read-only view of a tile grid that collision code needs
type TileGrid interface {
	Query(x, y int) entity.TileCollision
	TileWidth() float64
	TileHeight() float64
}

// TileHit is one tile overlapped by a swept box
type TileHit struct {
	X, Y      int
	Collision entity.TileCollision
}

// SweepTiles yields every tile the box overlaps, row by row, paired with its
// collision class. The column range is floor(left/w) .. ceil(right/w)-1 and the
// row range is built the same way, so a box ending exactly on a tile edge does
// not reach into the next tile. Passable tiles are included; callers filter.
//
// The sequence has no side effects and can be ranged over any number of times.
func SweepTiles(grid TileGrid, box entity.Rect) iter.Seq[TileHit] {
	tw, th := grid.TileWidth(), grid.TileHeight()
	left := int(math.Floor(box.Left() / tw))
	right := int(math.Ceil(box.Right()/tw)) - 1
	top := int(math.Floor(box.Top() / th))
	bottom := int(math.Ceil(box.Bottom()/th)) - 1

	return func(yield func(TileHit) bool) {
		for y := top; y <= bottom; y++ {
			for x := left; x <= right; x++ {
				if !yield(TileHit{X: x, Y: y, Collision: grid.Query(x, y)}) {
					return
				}
			}
		}
	}
}

// Axis is a collision resolution axis
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// ResolveAxis picks the axis with the shallower penetration.
// Ties go to the vertical axis.
func ResolveAxis(dx, dy float64) Axis {
	if math.Abs(dy) <= math.Abs(dx) {
		return AxisVertical
	}
	return AxisHorizontal
}
