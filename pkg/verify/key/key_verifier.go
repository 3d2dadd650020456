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

// Package key verifies raw detached signatures against a PEM public key.
package key

import (
	"context"
	"crypto"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"github.com/Doctor-love/pgp-cp/internal/cryptoutil"
	"github.com/Doctor-love/pgp-cp/pkg/trust"
	"github.com/Doctor-love/pgp-cp/pkg/utils"
	"github.com/Doctor-love/pgp-cp/pkg/verify"
)

// Ensure Verifier implements verify.SignatureVerifier at compile time.
var _ verify.SignatureVerifier = (*Verifier)(nil)

// VerifierConfig holds configuration for creating a public key verifier.
type VerifierConfig struct {
	// PublicKeyPath is the path to the PEM-encoded public key paired with
	// the private key that produced the signature. The key is the trust
	// anchor for this provider.
	PublicKeyPath string
}

// Verifier checks raw detached signatures (the bytes produced by signing
// the artifact content directly) against a single public key.
//
// Unlike the OpenPGP provider there is no signer identity beyond the key
// itself; the trusted decision carries the SHA256 fingerprint of the
// PEM-encoded key.
type Verifier struct {
	config    VerifierConfig
	publicKey crypto.PublicKey
	keyHash   string
}

// NewVerifier creates a public key verifier with the given configuration.
// The key is loaded and its type validated eagerly.
func NewVerifier(config VerifierConfig) (*Verifier, error) {
	if err := utils.ValidateFileExists("public key", config.PublicKeyPath); err != nil {
		return nil, err
	}

	publicKey, err := cryptoutil.LoadPublicKey(config.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("loading public key: %w", err)
	}

	keyBytes, err := os.ReadFile(config.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading public key for fingerprint: %w", err)
	}
	fingerprint := sha256.Sum256(keyBytes)

	return &Verifier{
		config:    config,
		publicKey: publicKey,
		keyHash:   fmt.Sprintf("%x", fingerprint),
	}, nil
}

// Verify checks the detached signature over content with the public key.
// An invalid signature is an untrusted decision; anything that prevents
// the check from running is an error verdict.
func (v *Verifier) Verify(_ context.Context, content, signature []byte) trust.Decision {
	if len(signature) == 0 {
		return trust.Error(fmt.Errorf("signature is empty"))
	}

	if err := cryptoutil.VerifySignature(v.publicKey, content, signature); err != nil {
		if errors.Is(err, cryptoutil.ErrBadSignature) {
			return trust.Untrusted("signature does not verify against the trusted public key")
		}
		return trust.Error(err)
	}

	return trust.Trusted("key:"+shortHash(v.keyHash), shortHash(v.keyHash))
}

// shortHash abbreviates a hex fingerprint for status lines.
func shortHash(h string) string {
	if len(h) > 16 {
		return h[:16]
	}
	return h
}
