// Copyright 2026 The pgp-cp Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hashing computes content digests for integrity bookkeeping.
//
// Digests produced here identify what was copied; they are never an input
// to the trust decision, which belongs to the verification providers.
package hashing

import (
	"encoding/hex"
	"fmt"
)

// Digest is a computed hash digest together with its algorithm name.
//
// Digest is effectively immutable: fields are unexported and the raw
// value is copied on the way in and out.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given algorithm and raw hash value.
// The value slice is copied.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	return Digest{algorithm: algorithm, value: valueCopy}
}

// Algorithm returns the hash algorithm name (e.g. "sha256").
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Hex returns the lowercase hex encoding of the digest value.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// String renders the digest as "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether two digests share the algorithm and value.
func (d Digest) Equal(other Digest) bool {
	if d.algorithm != other.algorithm || len(d.value) != len(other.value) {
		return false
	}
	for i := range d.value {
		if d.value[i] != other.value[i] {
			return false
		}
	}
	return true
}
