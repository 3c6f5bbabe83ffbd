// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Byte mode layout.
const (
	ByteIndicator = 0b0100 // 4 bit mode indicator
	IndicatorLen  = 4      // mode indicator length in bits
	CountLen      = 8      // character count length in bits
	MaxCount      = 1<<CountLen - 1
	MaxRune       = 0xff // largest code point encodable in byte mode
)

// ByteLength returns the length in bits of n characters encoded in
// byte mode, including the header.
func ByteLength(n int) int { return IndicatorLen + CountLen + n*8 }

// EncodeByte writes text encoded in byte mode to b: the mode
// indicator, character count and one ISO 8859-1 byte per character.
// Texts of more than MaxCount characters and characters above
// MaxRune are rejected, with nothing written to b.
func EncodeByte(b *Bits, text string) error {
	n := utf8.RuneCountInString(text)
	if n > MaxCount {
		return LengthError(n)
	}
	pos := 0
	for _, r := range text {
		if r > MaxRune { // includes RuneError for invalid UTF-8
			return CharError{r, pos}
		}
		pos++
	}
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return ErrChar
	}
	b.Write(ByteIndicator, IndicatorLen)
	b.Write(uint32(n), CountLen)
	b.WriteBytes([]byte(s))
	return nil
}

// Decode reads a byte mode header and the characters it counts from
// s and returns them as a UTF-8 string.  Bits following the data are
// left unread; error correction bytes are not checked.
func Decode(s *BitStream) (string, error) {
	ind, err := s.Read(IndicatorLen)
	if err != nil {
		return "", err
	}
	if ind != ByteIndicator {
		return "", FormatError(ind)
	}
	n, err := s.Read(CountLen)
	if err != nil {
		return "", err
	}
	if int(n)*8 > s.Len() {
		return "", ErrShort
	}
	buf := make([]byte, n)
	for i := range buf {
		v, _ := s.Read(8)
		buf[i] = byte(v)
	}
	t, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return "", err
	}
	return string(t), nil
}

// DecodeString decodes the text form of a bit stream, as returned by
// Bits.String.
func DecodeString(bits string) (string, error) {
	b, err := ParseBits(bits)
	if err != nil {
		return "", err
	}
	s := b.Stream()
	return Decode(&s)
}
