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

package hashing

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Engine is a streaming hash engine producing a Digest.
type Engine interface {
	// Update appends more bytes into the hash state.
	Update(data []byte)
	// Compute finalizes the hash and returns the digest.
	Compute() Digest
	// DigestName returns the algorithm identifier.
	DigestName() string
}

// AlgorithmSHA256 and AlgorithmBLAKE2b name the supported engines.
const (
	AlgorithmSHA256  = "sha256"
	AlgorithmBLAKE2b = "blake2b"
)

// NewEngine constructs an engine by algorithm name. An empty name selects
// SHA-256.
func NewEngine(algorithm string) (Engine, error) {
	switch algorithm {
	case "", AlgorithmSHA256:
		return &hashEngine{h: sha256.New(), name: AlgorithmSHA256}, nil
	case AlgorithmBLAKE2b:
		h, err := blake2b.New256(nil)
		if err != nil {
			return nil, fmt.Errorf("initializing blake2b: %w", err)
		}
		return &hashEngine{h: h, name: AlgorithmBLAKE2b}, nil
	default:
		return nil, fmt.Errorf("unsupported digest algorithm %q (supported: %s, %s)",
			algorithm, AlgorithmSHA256, AlgorithmBLAKE2b)
	}
}

// Sum computes the digest of data in one shot with the named algorithm.
func Sum(algorithm string, data []byte) (Digest, error) {
	engine, err := NewEngine(algorithm)
	if err != nil {
		return Digest{}, err
	}
	engine.Update(data)
	return engine.Compute(), nil
}

// hashEngine adapts a stdlib-style hash.Hash to the Engine interface.
type hashEngine struct {
	h    hash.Hash
	name string
}

func (e *hashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

func (e *hashEngine) Compute() Digest {
	return NewDigest(e.name, e.h.Sum(nil))
}

func (e *hashEngine) DigestName() string {
	return e.name
}
