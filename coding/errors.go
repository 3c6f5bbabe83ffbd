// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrCapacity = errors.New("qr: data too long")
	ErrLength   = errors.New("qr: too many characters")
	ErrChar     = errors.New("qr: unsupported character")
	ErrFormat   = errors.New("qr: not a byte mode stream")
	ErrShort    = errors.New("qr: bit stream too short")
	ErrFraction = errors.New("qr: fractional byte")
	ErrSyntax   = errors.New("qr: invalid bit string")
)

// CapacityError reports data too long for any version at a level.
type CapacityError struct {
	Bits  int   // data length in bits
	Level Level // requested level
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits at level %s "+
		"in version %s or below", e.Bits, e.Level, MaxVersion)
}

func (CapacityError) Unwrap() error { return ErrCapacity }

// LengthError reports a character count exceeding MaxCount.
type LengthError int

func (e LengthError) Error() string {
	return fmt.Sprintf("qr: %d characters, byte mode holds at most %d",
		int(e), MaxCount)
}

func (LengthError) Unwrap() error { return ErrLength }

// CharError reports a character not representable in byte mode.
type CharError struct {
	Rune rune // offending character
	Pos  int  // index in characters
}

func (e CharError) Error() string {
	return fmt.Sprintf("qr: character %U at %d not encodable in byte mode",
		e.Rune, e.Pos)
}

func (CharError) Unwrap() error { return ErrChar }

// FormatError reports an unexpected mode indicator.
type FormatError uint32

func (e FormatError) Error() string {
	return fmt.Sprintf("qr: mode indicator %04b, want %04b",
		uint32(e), ByteIndicator)
}

func (FormatError) Unwrap() error { return ErrFormat }
