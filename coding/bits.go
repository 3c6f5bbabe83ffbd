// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"unicode"
)

// Bits is a sequence of bits, packed most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with capacity for nbit bits.
func NewBits(nbit int) *Bits {
	return &Bits{b: make([]byte, 0, (nbit+7)>>3)}
}

// ParseBits returns Bits from their text form, a string of '0' and
// '1' characters.  White space is ignored.
func ParseBits(s string) (*Bits, error) {
	b := NewBits(len(s))
	for _, r := range s {
		switch {
		case r == '0' || r == '1':
			b.Write(uint32(r-'0'), 1)
		case unicode.IsSpace(r):
		default:
			return nil, ErrSyntax
		}
	}
	return b, nil
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the underlying buffer.  Bytes panics if b holds a
// fractional number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

func (b *Bits) growTo(n int) {
	for cap(b.b) < n {
		b.b = append(b.b[:cap(b.b)], 0)[:len(b.b)]
	}
}

func (b *Bits) Grow(n int) { b.growTo(len(b.b) + n) }

// Write appends the low nbit bits of v to b.  nbit must be at most 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBytes appends whole bytes to b.
func (b *Bits) WriteBytes(s []byte) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, s...)
		b.nbit += len(s) * 8
		return
	}
	b.Grow(len(s))
	for ; len(s) >= 4; s = s[4:] {
		v := uint32(s[0])<<24 | uint32(s[1])<<16 |
			uint32(s[2])<<8 | uint32(s[3])
		b.Write(v, 32)
	}
	for _, v := range s {
		b.Write(uint32(v), 8)
	}
}

// Padding bytes, alternating.
var pad = [2]byte{0xec, 0x11}

// Finish adds a terminator of up to 4 zero bits without going past
// target, zero bits up to a byte boundary, and padding bytes while
// they fit in target bits.  If the space left after alignment is not
// a multiple of 8 the stream stays short of target.  Alignment is
// always done and may go past a target that is not a multiple of 8.
func (b *Bits) Finish(target int) {
	if t := min(4, target-b.nbit); t > 0 {
		b.Write(0, t)
	}
	if rem := -b.nbit & 7; rem != 0 {
		b.Write(0, rem)
	}
	if n := (target - b.nbit) >> 3; n > 0 {
		b.Grow(n)
		for i := 0; i < n; i++ {
			b.b = append(b.b, pad[i&1])
		}
		b.nbit += n * 8
	}
}

// AddCheckBytes appends the check bytes computed by c over the
// contents of b, which must hold a whole number of bytes.
func (b *Bits) AddCheckBytes(c Corrector) error {
	if b.nbit%8 != 0 {
		return ErrFraction
	}
	b.WriteBytes(c.Check(b.b))
	return nil
}

// String returns b as a string of '0' and '1' characters.
func (b *Bits) String() string {
	var s strings.Builder
	s.Grow(b.nbit)
	st := b.Stream()
	for i := 0; i < b.nbit; i++ {
		s.WriteByte('0' + st.Next())
	}
	return s.String()
}

// Stream returns a BitStream reading from b.
func (b *Bits) Stream() BitStream {
	return BitStream{b: b.b, n: b.nbit}
}

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
	n   int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b, n: len(b) * 8} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Len returns the number of unread bits.
func (s *BitStream) Len() int { return s.n - s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of stream Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if s.pos < s.n {
		b = s.b[s.pos>>3] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}

// Read returns the next nbit bits from s, most significant first.
// nbit must be at most 32.  If fewer bits are left, Read consumes
// nothing and returns ErrShort.
func (s *BitStream) Read(nbit int) (uint32, error) {
	if nbit > s.Len() {
		return 0, ErrShort
	}
	var v uint32
	for i := 0; i < nbit; i++ {
		v = v<<1 | uint32(s.Next())
	}
	return v, nil
}
