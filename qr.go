// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrsketch encodes short strings as QR sketch symbols.

A symbol carries its data in byte mode, followed by padding and a
fixed number of Reed-Solomon check bytes (coding.Redundancy).  The
rendered image shows only the function patterns of the symbol: finder
patterns in three corners, alignment patterns and timing patterns.
Data modules, masking and format information are not drawn, so the
image is not scannable.  The data is recovered from the bit stream
with Decode.
*/
package qrsketch // import "github.com/unixdj/qrsketch"

import (
	"github.com/unixdj/qrsketch/coding"
)

// A Level denotes an error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string { return coding.Level(l).String() }

// A Symbol is an encoded symbol: the finished data bits followed by
// check bytes, and the version chosen to hold them.
type Symbol struct {
	Bits    *coding.Bits   // data and check bits
	Version coding.Version // symbol version
	Level   Level          // error correction level
}

// DataBits returns the number of bits before the check bytes.
func (s *Symbol) DataBits() int { return s.Bits.Bits() - coding.Redundancy*8 }

// Bitmap renders the function patterns of s at the given scale and
// border onto a new Bitmap.
func (s *Symbol) Bitmap(scale, border int) (*Bitmap, error) {
	r := Renderer{Scale: scale, Border: border}
	c, err := r.Render(s.Version, NewCanvas)
	if err != nil {
		return nil, err
	}
	return c.(*Bitmap), nil
}

// Decode returns the text encoded in s.  Check bytes are not used.
func (s *Symbol) Decode() (string, error) {
	st := s.Bits.Stream()
	return coding.Decode(&st)
}

// An Encoder encodes text into Symbols.
// The zero value uses coding.DefaultTable and a Reed-Solomon
// corrector adding coding.Redundancy check bytes.
type Encoder struct {
	Table     *coding.Table    // version table
	Corrector coding.Corrector // error correction
}

// Encode returns text encoded in byte mode at level, in the smallest
// version that holds it.
func (e *Encoder) Encode(text string, level Level) (*Symbol, error) {
	l := coding.Level(level)
	if !l.IsValid() {
		return nil, coding.ErrLevel
	}
	t := e.Table
	if t == nil {
		t = coding.DefaultTable
	}
	corr := e.Corrector
	if corr == nil {
		corr = coding.NewRS(coding.Redundancy)
	}
	b := coding.NewBits(coding.ByteLength(len(text)))
	if err := coding.EncodeByte(b, text); err != nil {
		return nil, err
	}
	v, err := t.Choose(b.Bits(), l)
	if err != nil {
		return nil, err
	}
	n := t.DataBits(v, l)
	b.Finish(n)
	if err := b.AddCheckBytes(corr); err != nil {
		return nil, err
	}
	return &Symbol{Bits: b, Version: v, Level: level}, nil
}

// Encode encodes text at the given level using the default Encoder.
func Encode(text string, level Level) (*Symbol, error) {
	var e Encoder
	return e.Encode(text, level)
}

// Decode returns the text encoded in the text form of a bit stream.
func Decode(bits string) (string, error) {
	return coding.DecodeString(bits)
}
