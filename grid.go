// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsketch

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	ErrArgs   = errors.New("qr: invalid arguments")
	ErrBounds = errors.New("qr: pixel out of bounds")
)

// BoundsError reports a write outside of a Canvas.
type BoundsError image.Point

func (e BoundsError) Error() string {
	return fmt.Sprintf("qr: pixel %v out of bounds", image.Point(e))
}

func (BoundsError) Unwrap() error { return ErrBounds }

// A Canvas is a monochrome pixel surface with (0,0) at the top left.
// Writes are idempotent.
type Canvas interface {
	Bounds() image.Rectangle
	Black(x, y int) bool
	Set(x, y int, black bool) error
}

// A Filler is a Canvas that can fill rectangles in one call.
type Filler interface {
	Canvas
	Fill(r image.Rectangle, black bool) error
}

// A Bitmap is a rectangular pixel grid.  It implements Filler.
type Bitmap struct {
	Bitmap []byte // 1 is black, 0 is white
	Width  int    // number of pixels in a row
	Height int    // number of rows
	Stride int    // number of bytes per row
}

// NewBitmap returns a white Bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	width, height = max(width, 0), max(height, 0)
	stride := (width + 7) >> 3
	return &Bitmap{
		Bitmap: make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
	}
}

// NewCanvas is NewBitmap returning a Canvas, for Renderer.Render.
func NewCanvas(width, height int) Canvas { return NewBitmap(width, height) }

func (c *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, c.Width, c.Height) }

// Black reports whether the pixel at (x,y) is black.  Pixels outside
// the bitmap are white.
func (c *Bitmap) Black(x, y int) bool {
	return 0 <= x && x < c.Width && 0 <= y && y < c.Height &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Set sets the pixel at (x,y).
func (c *Bitmap) Set(x, y int, black bool) error {
	if !(image.Point{x, y}).In(c.Bounds()) {
		return BoundsError{x, y}
	}
	c.set(x, y, black)
	return nil
}

func (c *Bitmap) set(x, y int, black bool) {
	off, bit := y*c.Stride+x/8, byte(1)<<uint(7&^x)
	if black {
		c.Bitmap[off] |= bit
	} else {
		c.Bitmap[off] &^= bit
	}
}

// Fill sets all pixels in r.  If r is not within the bitmap, Fill
// changes nothing and returns a BoundsError for its first corner
// outside.
func (c *Bitmap) Fill(r image.Rectangle, black bool) error {
	if r.Empty() {
		return nil
	}
	b := c.Bounds()
	if !r.Min.In(b) {
		return BoundsError(r.Min)
	}
	if last := r.Max.Sub(image.Pt(1, 1)); !last.In(b) {
		return BoundsError(last)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.set(x, y, black)
		}
	}
	return nil
}

// Image returns an Image displaying the bitmap.
func (c *Bitmap) Image() image.Image {
	return &bitmapImage{c}
}

// bitmapImage implements image.Image
type bitmapImage struct {
	*Bitmap
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *bitmapImage) At(x, y int) color.Color {
	if c.Black(x, y) {
		return blackColor
	}
	return whiteColor
}

func (c *bitmapImage) ColorModel() color.Model {
	return color.GrayModel
}
