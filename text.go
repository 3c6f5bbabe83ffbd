// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsketch

import (
	"io"
	"strings"
)

// Half block characters indexed by top<<1|bottom pixel colour.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String returns the bitmap drawn with Unicode half blocks, two rows
// of pixels per line, black pixels drawn as blocks.
func (c *Bitmap) String() string {
	var b strings.Builder
	b.Grow((c.Width*3 + 1) * (c.Height + 1) / 2)
	for y := 0; y < c.Height; y += 2 {
		for x := 0; x < c.Width; x++ {
			i := 0
			if c.Black(x, y) {
				i = 2
			}
			if c.Black(x, y+1) {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the bitmap to w with two characters per pixel,
// "##" for black and "  " for white.
func (c *Bitmap) EncodeASCII(w io.Writer) error {
	b := make([]byte, (c.Width*2+1)*c.Height)
	i := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			var p byte = ' '
			if c.Black(x, y) {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
