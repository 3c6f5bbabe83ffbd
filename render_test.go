// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsketch

import (
	"errors"
	"image"
	"reflect"
	"strings"
	"testing"

	"github.com/unixdj/qrsketch/coding"
)

// Version 1 at scale 1 with a border of 1.
var golden1 = []string{
".......................",
		".#######.......#######.",
		".#.....#.......#.....#.",
		".#.###.#.......#.###.#.",
		".#.###.#.......#.###.#.",
		".#.###.#.......#.###.#.",
		".#.....#.......#.....#.",
		".#######.#.#.#.#######.",
		".......................",
		".......#...............",
		".......................",
		".......#...............",
		".......................",
		".......#...............",
		".......................",
		".#######...............",
		".#.....#...............",
		".#.###.#...............",
		".#.###.#...............",
		".#.###.#...............",
		".#.....#...............",
		".#######...............",
		".......................",
}

// Version 2 at scale 1 without a border.
var golden2 = []string{
		"#######...........#######",
		"#.....#...........#.....#",
		"#.###.#...........#.###.#",
		"#.###.#...........#.###.#",
		"#.###.#...........#.###.#",
		"#.....#...........#.....#",
		"#######.#.#.#.#.#.#######",
		".........................",
		"......#..................",
		".........................",
		"......#..................",
		".........................",
		"......#..................",
		".........................",
		"......#..................",
		".........................",
		"......#.........#####....",
		"................#...#....",
		"#######.........#.#.#....",
		"#.....#.........#...#....",
		"#.###.#.........#####....",
		"#.###.#..................",
		"#.###.#..................",
		"#.....#..................",
		"#######..................",
}

// dump returns the pixels of c as rows of '#' (black) and '.'.
func dump(c Canvas) []string {
	r := c.Bounds()
	rows := make([]string, 0, r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		var b strings.Builder
		for x := r.Min.X; x < r.Max.X; x++ {
			if c.Black(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

func checkGolden(t *testing.T, name string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: %d rows, want %d", name, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s row %d:\n got %s\nwant %s", name, i, got[i], want[i])
		}
	}
}

func TestRenderGolden(t *testing.T) {
	r := Renderer{Scale: 1, Border: 1}
	c, err := r.Render(1, NewCanvas)
	if err != nil {
		t.Fatal(err)
	}
	checkGolden(t, "version 1", dump(c), golden1)

	r = Renderer{Scale: 1}
	if c, err = r.Render(2, NewCanvas); err != nil {
		t.Fatal(err)
	}
	checkGolden(t, "version 2", dump(c), golden2)
}

// mapCanvas is a Canvas that is not a Filler.
type mapCanvas struct {
	r   image.Rectangle
	pix map[image.Point]bool
}

func newMapCanvas(w, h int) Canvas {
	return &mapCanvas{image.Rect(0, 0, w, h), make(map[image.Point]bool)}
}

func (c *mapCanvas) Bounds() image.Rectangle { return c.r }
func (c *mapCanvas) Black(x, y int) bool     { return c.pix[image.Pt(x, y)] }

func (c *mapCanvas) Set(x, y int, black bool) error {
	p := image.Pt(x, y)
	if !p.In(c.r) {
		return BoundsError(p)
	}
	c.pix[p] = black
	return nil
}

func TestRenderCanvas(t *testing.T) {
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		r := Renderer{Scale: 3, Border: 2}
		a, err := r.Render(v, NewCanvas)
		if err != nil {
			t.Fatal(err)
		}
		b, err := r.Render(v, newMapCanvas)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(dump(a), dump(b)) {
			t.Errorf("version %s: Bitmap and mapCanvas differ", v)
		}
		if side := (v.Size() + 4) * 3; a.Bounds() != image.Rect(0, 0, side, side) {
			t.Errorf("version %s: bounds %v, want side %d", v, a.Bounds(), side)
		}
	}
}

// finderTable is the finder pattern, 1 for black.
var finderTable = [7]string{
	"1111111",
	"1000001",
	"1011101",
	"1011101",
	"1011101",
	"1000001",
	"1111111",
}

func TestFinderScale(t *testing.T) {
	for _, scale := range []int{1, 2, 10} {
		r := Renderer{Scale: scale, Border: 4}
		c, err := r.Render(1, NewCanvas)
		if err != nil {
			t.Fatal(err)
		}
		size := coding.Version(1).Size()
		for _, corner := range []image.Point{{0, 0}, {0, size - 7}, {size - 7, 0}} {
			for my := 0; my < 7; my++ {
				for mx := 0; mx < 7; mx++ {
					want := finderTable[my][mx] == '1'
					if FinderBlack(mx, my) != want {
						t.Fatalf("FinderBlack(%d, %d) = %v", mx, my, !want)
					}
					x0 := (4 + corner.X + mx) * scale
					y0 := (4 + corner.Y + my) * scale
					for y := y0; y < y0+scale; y++ {
						for x := x0; x < x0+scale; x++ {
							if c.Black(x, y) != want {
								t.Fatalf("scale %d, finder %v, module (%d,%d): pixel (%d,%d) = %v",
									scale, corner, mx, my, x, y, !want)
							}
						}
					}
				}
			}
		}
		// bottom right corner stays white
		p := (4 + size - 1) * scale
		if c.Black(p, p) {
			t.Errorf("scale %d: bottom right corner is black", scale)
		}
	}
}

func TestAlignmentBlack(t *testing.T) {
	want := [5]string{
		"11111",
		"10001",
		"10101",
		"10001",
		"11111",
	}
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 2; x++ {
			if got := AlignmentBlack(x, y); got != (want[y+2][x+2] == '1') {
				t.Errorf("AlignmentBlack(%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestAlignmentCentres(t *testing.T) {
	var r Renderer
	for _, tt := range []struct {
		v    coding.Version
		want []image.Point
	}{
		{1, nil},
		{2, []image.Point{{18, 18}}},
		{6, []image.Point{{34, 34}}},
		{7, []image.Point{{6, 22}, {22, 6}, {22, 22}, {22, 38}, {38, 22}, {38, 38}}},
		{8, []image.Point{{6, 24}, {24, 6}, {24, 24}, {24, 42}, {42, 24}, {42, 42}}},
	} {
		if got := r.AlignmentCentres(tt.v); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AlignmentCentres(%s) = %v, want %v", tt.v, got, tt.want)
		}
	}
	// Centres in the finder corners are never drawn.
	for v := coding.Version(2); v <= coding.MaxVersion; v++ {
		far := v.Size() - 8
		for _, p := range r.AlignmentCentres(v) {
			if p.X <= 7 && p.Y <= 7 || p.X <= 7 && p.Y >= far || p.X >= far && p.Y <= 7 {
				t.Errorf("version %s: centre %v in finder corner", v, p)
			}
		}
	}
}

func TestTiming(t *testing.T) {
	r := Renderer{Scale: 1}
	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		c, err := r.Render(v, NewCanvas)
		if err != nil {
			t.Fatal(err)
		}
		size := v.Size()
		for i := 6; i < size-6; i++ {
			if c.Black(6, i) != (i%2 == 0) || c.Black(i, 6) != (i%2 == 0) {
				t.Errorf("version %s: timing module %d wrong", v, i)
			}
		}
	}
}

func TestRenderBounds(t *testing.T) {
	tab := *coding.DefaultTable
	tab.Align[2] = []int{6, 18, 30}
	r := Renderer{Scale: 1, Table: &tab}
	for _, nc := range []func(w, h int) Canvas{NewCanvas, newMapCanvas} {
		_, err := r.Render(2, nc)
		if !errors.Is(err, ErrBounds) {
			t.Fatalf("Render: err = %v, want ErrBounds", err)
		}
		var be BoundsError
		if !errors.As(err, &be) || image.Point(be) != image.Pt(16, 28) {
			t.Errorf("Render: err = %v, want pixel (16,28)", err)
		}
	}
	if coding.DefaultTable.Align[2][1] != 18 || len(coding.DefaultTable.Align[2]) != 2 {
		t.Fatal("DefaultTable modified")
	}
}

func TestRenderArgs(t *testing.T) {
	for _, tt := range []struct {
		r   Renderer
		v   coding.Version
		err error
	}{
		{Renderer{Scale: 0}, 1, ErrArgs},
		{Renderer{Scale: 1, Border: -1}, 1, ErrArgs},
		{Renderer{Scale: 1}, 0, coding.ErrVersion},
		{Renderer{Scale: 1}, 9, coding.ErrVersion},
	} {
		if _, err := tt.r.Render(tt.v, NewCanvas); err != tt.err {
			t.Errorf("%+v.Render(%d): err = %v, want %v", tt.r, tt.v, err, tt.err)
		}
	}
	r := Renderer{Scale: 1}
	if _, err := r.Render(1, nil); err != ErrArgs {
		t.Errorf("Render(nil canvas): err = %v, want ErrArgs", err)
	}
}
