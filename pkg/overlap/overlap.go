// Package overlap removes overlaps between rectangles placed in a horizontal
// strip.
//
// All rectangles start out on the strip's start coordinate with their x
// positions fixed. [Remover.RemoveOverlaps] moves them away from the start
// coordinate, in the remover's direction, until no two rectangles whose
// horizontal extents come closer than the gap also overlap vertically. The
// resulting strip extent is returned so callers can reserve space for it.
//
// Placement is greedy: rectangles are visited left to right and each one
// takes the lowest offset that does not collide with what was placed before.
package overlap

import (
	"slices"

	"github.com/matzehuels/nodespacing/pkg/geom"
)

// Direction is the direction rectangles move in when they collide.
type Direction uint8

const (
	// Down moves rectangles towards larger y coordinates.
	Down Direction = iota
	// Up moves rectangles towards smaller y coordinates.
	Up
)

func (d Direction) String() string {
	if d == Up {
		return "UP"
	}
	return "DOWN"
}

// Remover collects rectangles and resolves their overlaps in one pass.
type Remover struct {
	dir   Direction
	gap   float64
	start float64
	rects []*geom.Rect
}

// NewForDirection returns a remover moving rectangles in dir.
func NewForDirection(dir Direction) *Remover {
	return &Remover{dir: dir}
}

// WithGap sets the minimum distance kept between rectangles on both axes.
func (r *Remover) WithGap(gap float64) *Remover {
	r.gap = gap
	return r
}

// WithStartCoordinate sets the y coordinate the strip begins at.
func (r *Remover) WithStartCoordinate(y float64) *Remover {
	r.start = y
	return r
}

// AddRectangle registers a rectangle. Its Y field is overwritten by
// RemoveOverlaps.
func (r *Remover) AddRectangle(rect *geom.Rect) {
	r.rects = append(r.rects, rect)
}

type placed struct {
	rect   *geom.Rect
	offset float64
}

// RemoveOverlaps assigns y coordinates to every registered rectangle and
// returns the extent of the strip, measured from the start coordinate.
func (r *Remover) RemoveOverlaps() float64 {
	order := slices.Clone(r.rects)
	slices.SortStableFunc(order, func(a, b *geom.Rect) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})

	var done []placed
	extent := 0.0
	for _, rect := range order {
		var blockers []placed
		for _, p := range done {
			if r.overlapsHorizontally(rect, p.rect) {
				blockers = append(blockers, p)
			}
		}

		offset := r.lowestFreeOffset(rect.Height, blockers)
		done = append(done, placed{rect: rect, offset: offset})
		extent = max(extent, offset+rect.Height)

		if r.dir == Down {
			rect.Y = r.start + offset
		} else {
			rect.Y = r.start - offset - rect.Height
		}
	}
	return extent
}

func (r *Remover) overlapsHorizontally(a, b *geom.Rect) bool {
	return a.X < b.Right()+r.gap && b.X < a.Right()+r.gap
}

func (r *Remover) lowestFreeOffset(height float64, blockers []placed) float64 {
	candidates := []float64{0}
	for _, b := range blockers {
		candidates = append(candidates, b.offset+b.rect.Height+r.gap)
	}
	slices.Sort(candidates)

	for _, c := range candidates {
		if r.fits(c, height, blockers) {
			return c
		}
	}
	// The largest candidate sits past every blocker and always fits.
	return candidates[len(candidates)-1]
}

func (r *Remover) fits(offset, height float64, blockers []placed) bool {
	for _, b := range blockers {
		if offset < b.offset+b.rect.Height+r.gap && b.offset < offset+height+r.gap {
			return false
		}
	}
	return true
}
