// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "rsc.io/qr/gf256"

// Redundancy is the number of check bytes added to every symbol,
// regardless of version and level.
const Redundancy = 7

// Field is the field for error correction.
var Field = gf256.NewField(0x11d, 2)

// A Corrector computes error correction check bytes.
type Corrector interface {
	// Check returns the check bytes for data.  It must not modify
	// data.
	Check(data []byte) []byte
}

// RS is a systematic Reed-Solomon Corrector over Field with a
// generator polynomial of degree N.
type RS struct {
	N int // number of check bytes
}

// NewRS returns a Reed-Solomon Corrector adding n check bytes.
func NewRS(n int) *RS { return &RS{N: n} }

// Check implements Corrector.
func (rs *RS) Check(data []byte) []byte {
	check := make([]byte, rs.N)
	if rs.N > 0 {
		gf256.NewRSEncoder(Field, rs.N).ECC(data, check)
	}
	return check
}

// Protect returns data and its check bytes computed by c.
func Protect(c Corrector, data []byte) (orig, check []byte) {
	return data, c.Check(data)
}
