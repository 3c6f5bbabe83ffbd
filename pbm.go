// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrsketch

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image of the bitmap to w, for
// use with netpbm.  If reverse is set, colours are inverted.
func (c *Bitmap) EncodePBM(w io.Writer, reverse bool) error {
	if c.Width <= 0 || c.Height <= 0 || len(c.Bitmap) < c.Stride*c.Height {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	if _, err := b.WriteString("P4\n" + strconv.Itoa(c.Width) + " " +
		strconv.Itoa(c.Height) + "\n"); err != nil {
		return err
	}
	// PBM rows are packed like Bitmap rows, 1 is black, with
	// unused bits at the end of each row.
	if !reverse {
		if _, err := b.Write(c.Bitmap[:c.Stride*c.Height]); err != nil {
			return err
		}
		return b.Flush()
	}
	row := make([]byte, c.Stride)
	tail := byte(0xff) << (-c.Width & 7) // used bits of last byte
	for bm := c.Bitmap; len(row) != 0 && len(bm) >= c.Stride; {
		for i, v := range bm[:c.Stride] {
			row[i] = ^v
		}
		row[len(row)-1] &= tail
		bm = bm[c.Stride:]
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	return b.Flush()
}
