// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements the low-level coding details of QR sketch
// symbols: version selection, byte mode encoding, bit stream padding,
// error correction and decoding of encoded streams.
package coding // import "github.com/unixdj/qrsketch/coding"

import (
	"strconv"
	"strings"
)

// A Version represents a symbol version.
// The version specifies the size of the symbol:
// a symbol with version v has 4v+17 modules on a side.
// Only versions 1 to 8 are supported.
type Version int

// Symbol versions.
const (
	MinVersion Version = 1 // Minimum version
	MaxVersion Version = 8 // Maximum version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a supported version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a symbol of
// version v.
func (v Version) Size() int { return 21 + int(v-1)*4 }

// A Level represents an error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q or H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// ParseLevel returns the Level named by s, in either case.
func ParseLevel(s string) (Level, error) {
	if len(s) == 1 {
		if i := strings.Index("lmqhLMQH", s); i >= 0 {
			return Level(i & 3), nil
		}
	}
	return 0, ErrLevel
}

// A Table holds the static per-version data: data capacity in bits
// for each level and alignment pattern centre coordinates.  Tables
// are never modified after construction and may be shared.
type Table struct {
	Capacity [MaxVersion + 1][H + 1]int // data bits by version, level
	Align    [MaxVersion + 1][]int      // alignment centres, from version 2
}

// DefaultTable is the standard version table.
var DefaultTable = &Table{
	Capacity: [MaxVersion + 1][H + 1]int{
		1: {152, 128, 104, 72},
		2: {272, 224, 176, 128},
		3: {440, 352, 272, 208},
		4: {640, 512, 368, 272},
		5: {864, 672, 496, 368},
		6: {1080, 816, 608, 480},
		7: {1300, 976, 704, 528},
		8: {1560, 1240, 880, 640},
	},
	Align: [MaxVersion + 1][]int{
		2: {6, 18},
		3: {6, 22},
		4: {6, 26},
		5: {6, 30},
		6: {6, 34},
		7: {6, 22, 38},
		8: {6, 24, 42},
	},
}

// DataBits returns the number of data bits that can be stored in a
// symbol with the given version and level, or 0 if either is invalid.
func (t *Table) DataBits(v Version, l Level) int {
	if !v.IsValid() || !l.IsValid() {
		return 0
	}
	return t.Capacity[v][l]
}

// Choose returns the smallest version able to hold nbit data bits at
// level l.
func (t *Table) Choose(nbit int, l Level) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if nbit <= t.Capacity[v][l] {
			return v, nil
		}
	}
	return 0, CapacityError{nbit, l}
}

// AlignmentPositions returns the alignment pattern centre coordinates
// for version v.  The result must not be modified.
func (t *Table) AlignmentPositions(v Version) []int {
	if v < 2 || !v.IsValid() {
		return nil
	}
	return t.Align[v]
}
