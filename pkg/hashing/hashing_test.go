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
	"encoding/hex"
	"strings"
	"testing"
)

func TestSumSHA256(t *testing.T) {
	data := []byte("config-v1")
	want := sha256.Sum256(data)

	d, err := Sum(AlgorithmSHA256, data)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if d.Algorithm() != "sha256" {
		t.Errorf("Algorithm = %q, want sha256", d.Algorithm())
	}
	if d.Hex() != hex.EncodeToString(want[:]) {
		t.Errorf("Hex = %q, want %q", d.Hex(), hex.EncodeToString(want[:]))
	}
}

func TestSumEmptyInput(t *testing.T) {
	// An empty artifact is still a valid artifact with a digest.
	d, err := Sum("", nil)
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	want := sha256.Sum256(nil)
	if d.Hex() != hex.EncodeToString(want[:]) {
		t.Errorf("empty-input digest = %q, want %q", d.Hex(), hex.EncodeToString(want[:]))
	}
}

func TestSumBLAKE2b(t *testing.T) {
	d, err := Sum(AlgorithmBLAKE2b, []byte("config-v1"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if d.Algorithm() != "blake2b" {
		t.Errorf("Algorithm = %q, want blake2b", d.Algorithm())
	}
	if len(d.Value()) != 32 {
		t.Errorf("digest size = %d, want 32", len(d.Value()))
	}
}

func TestNewEngineUnsupported(t *testing.T) {
	_, err := NewEngine("md5")
	if err == nil {
		t.Fatal("Expected error for unsupported algorithm, got nil")
	}
	if !strings.Contains(err.Error(), "md5") {
		t.Errorf("error %q does not name the algorithm", err)
	}
}

func TestEngineStreamingMatchesOneShot(t *testing.T) {
	engine, err := NewEngine(AlgorithmSHA256)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	engine.Update([]byte("config"))
	engine.Update([]byte("-v1"))
	streamed := engine.Compute()

	oneShot, err := Sum(AlgorithmSHA256, []byte("config-v1"))
	if err != nil {
		t.Fatalf("Sum failed: %v", err)
	}
	if !streamed.Equal(oneShot) {
		t.Errorf("streamed digest %s != one-shot digest %s", streamed, oneShot)
	}
}

func TestDigestImmutability(t *testing.T) {
	raw := []byte{1, 2, 3}
	d := NewDigest("sha256", raw)
	raw[0] = 99

	if d.Value()[0] != 1 {
		t.Error("Digest captured caller's slice instead of copying")
	}

	out := d.Value()
	out[1] = 99
	if d.Value()[1] != 2 {
		t.Error("Digest exposed internal slice")
	}
}

func TestDigestEqual(t *testing.T) {
	a := NewDigest("sha256", []byte{1, 2})
	b := NewDigest("sha256", []byte{1, 2})
	c := NewDigest("blake2b", []byte{1, 2})
	d := NewDigest("sha256", []byte{1, 3})

	if !a.Equal(b) {
		t.Error("identical digests not equal")
	}
	if a.Equal(c) {
		t.Error("digests with different algorithms compared equal")
	}
	if a.Equal(d) {
		t.Error("digests with different values compared equal")
	}
}
