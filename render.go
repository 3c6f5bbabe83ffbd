// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsketch

import (
	"image"

	"github.com/unixdj/qrsketch/coding"
)

// Pattern sizes in modules.
const (
	finderSize = 7
	timingPos  = 6 // row and column of timing patterns
)

// A Renderer draws the function patterns of a symbol: finder,
// alignment and timing patterns.  Data modules, format and version
// information are not drawn.
//
// Each module is drawn as a Scale×Scale block of pixels, offset by a
// quiet zone of Border modules.
type Renderer struct {
	Scale  int           // number of pixels per module
	Border int           // quiet zone in modules
	Table  *coding.Table // version table, DefaultTable if nil
}

func (r *Renderer) table() *coding.Table {
	if r.Table != nil {
		return r.Table
	}
	return coding.DefaultTable
}

func (r *Renderer) isValid() bool { return r.Scale >= 1 && r.Border >= 0 }

// Side returns the number of pixels on a side of the image of a
// symbol of version v.
func (r *Renderer) Side(v coding.Version) int {
	return (v.Size() + 2*r.Border) * r.Scale
}

// Render obtains a canvas of the right size from newCanvas and draws
// position markers, then alignment patterns, then timing patterns.
func (r *Renderer) Render(v coding.Version, newCanvas func(w, h int) Canvas) (Canvas, error) {
	if !r.isValid() || newCanvas == nil {
		return nil, ErrArgs
	}
	if !v.IsValid() {
		return nil, coding.ErrVersion
	}
	side := r.Side(v)
	c := newCanvas(side, side)
	if c == nil {
		return nil, ErrArgs
	}
	for _, draw := range []func(Canvas, coding.Version) error{
		r.Finders, r.Alignments, r.Timing,
	} {
		if err := draw(c, v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// module draws module (x,y) of the symbol matrix.
func (r *Renderer) module(c Canvas, x, y int, black bool) error {
	s := r.Scale
	px, py := (r.Border+x)*s, (r.Border+y)*s
	if f, ok := c.(Filler); ok {
		return f.Fill(image.Rect(px, py, px+s, py+s), black)
	}
	for j := py; j < py+s; j++ {
		for i := px; i < px+s; i++ {
			if err := c.Set(i, j, black); err != nil {
				return err
			}
		}
	}
	return nil
}

// FinderBlack reports whether module (x,y) of a 7×7 finder pattern
// is black.
func FinderBlack(x, y int) bool {
	switch {
	case x == 0 || x == 6 || y == 0 || y == 6:
		return true
	case x == 1 || x == 5 || y == 1 || y == 5:
		return false
	}
	return true
}

// AlignmentBlack reports whether the module at offset (x,y) from the
// centre of an alignment pattern is black.  x and y are in [-2, 2].
func AlignmentBlack(x, y int) bool {
	x, y = abs(x), abs(y)
	switch {
	case x == 2 || y == 2:
		return true
	case x == 1 || y == 1:
		return false
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Finders draws finder patterns at the top left, bottom left and top
// right corners.
func (r *Renderer) Finders(c Canvas, v coding.Version) error {
	end := v.Size() - finderSize
	for _, p := range [3]image.Point{{0, 0}, {0, end}, {end, 0}} {
		if err := r.finder(c, p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) finder(c Canvas, px, py int) error {
	for x := 0; x < finderSize; x++ {
		for y := 0; y < finderSize; y++ {
			if err := r.module(c, px+x, py+y, FinderBlack(x, y)); err != nil {
				return err
			}
		}
	}
	return nil
}

// AlignmentCentres returns the centres of alignment patterns drawn
// for version v: pairs of alignment positions, excluding those within
// 8 modules of the corners holding finder patterns.
func (r *Renderer) AlignmentCentres(v coding.Version) []image.Point {
	pos := r.table().AlignmentPositions(v)
	if len(pos) == 0 {
		return nil
	}
	far := v.Size() - 8
	pts := make([]image.Point, 0, len(pos)*len(pos))
	for _, cx := range pos {
		for _, cy := range pos {
			if cx <= 7 && (cy <= 7 || cy >= far) || cx >= far && cy <= 7 {
				continue
			}
			pts = append(pts, image.Pt(cx, cy))
		}
	}
	return pts
}

// Alignments draws alignment patterns for versions 2 and up.
func (r *Renderer) Alignments(c Canvas, v coding.Version) error {
	for _, p := range r.AlignmentCentres(v) {
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				err := r.module(c, p.X+x, p.Y+y, AlignmentBlack(x, y))
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Timing draws the vertical and horizontal timing patterns: modules
// 6 to size-7 of column and row 6, black at even positions.
func (r *Renderer) Timing(c Canvas, v coding.Version) error {
	end := v.Size() - timingPos
	for i := timingPos; i < end; i++ {
		if err := r.module(c, timingPos, i, i&1 == 0); err != nil {
			return err
		}
	}
	for i := timingPos; i < end; i++ {
		if err := r.module(c, i, timingPos, i&1 == 0); err != nil {
			return err
		}
	}
	return nil
}
