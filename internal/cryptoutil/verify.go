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

// Package cryptoutil implements low-level public key signature checks
// for the raw key verification provider.
package cryptoutil

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ErrBadSignature is returned when the signature does not verify against
// the key. Callers use it to separate a negative verification result from
// structural problems such as an unsupported key type.
var ErrBadSignature = errors.New("signature does not verify against key")

// LoadPublicKey reads a PEM-encoded public key from path. PKIX and PKCS1
// encodings are accepted. The key type must be ECDSA (P-256, P-384 or
// P-521), RSA, or Ed25519.
func LoadPublicKey(path string) (crypto.PublicKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading public key file: %w", err)
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in %s", path)
	}

	if key, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		return checkKeyType(key)
	}
	if key, err := x509.ParsePKCS1PublicKey(block.Bytes); err == nil {
		return checkKeyType(key)
	}

	return nil, fmt.Errorf("unsupported public key encoding in %s", path)
}

// checkKeyType rejects key types the verifier cannot handle.
func checkKeyType(key interface{}) (crypto.PublicKey, error) {
	switch k := key.(type) {
	case *ecdsa.PublicKey:
		curve := k.Curve.Params().Name
		if curve != "P-256" && curve != "P-384" && curve != "P-521" {
			return nil, fmt.Errorf("unsupported elliptic curve %s (supported: P-256, P-384, P-521)", curve)
		}
		return k, nil
	case *rsa.PublicKey:
		return k, nil
	case ed25519.PublicKey:
		return k, nil
	default:
		return nil, fmt.Errorf("unsupported public key type %T", key)
	}
}

// VerifySignature checks a detached signature over message with the given
// public key. ECDSA, RSA (PSS first, PKCS1v15 fallback) and Ed25519 keys
// are supported. Returns nil on success, ErrBadSignature when the
// signature is invalid, or another error for unsupported keys.
func VerifySignature(publicKey crypto.PublicKey, message, signature []byte) error {
	switch key := publicKey.(type) {
	case *ecdsa.PublicKey:
		return verifyECDSA(key, message, signature)
	case *rsa.PublicKey:
		return verifyRSA(key, message, signature)
	case ed25519.PublicKey:
		return verifyEd25519(key, message, signature)
	default:
		return fmt.Errorf("unsupported public key type for verification: %T", publicKey)
	}
}

// verifyECDSA checks an ASN.1 encoded ECDSA signature. The hash matches
// the curve size: P-256 uses SHA256, P-384 SHA384, P-521 SHA512.
func verifyECDSA(key *ecdsa.PublicKey, message, signature []byte) error {
	var hash []byte
	switch keySize := key.Curve.Params().BitSize; keySize {
	case 256:
		h := sha256.Sum256(message)
		hash = h[:]
	case 384:
		h := sha512.Sum384(message)
		hash = h[:]
	case 521:
		h := sha512.Sum512(message)
		hash = h[:]
	default:
		return fmt.Errorf("unsupported ECDSA key size: %d bits", keySize)
	}

	if !ecdsa.VerifyASN1(key, hash, signature) {
		return ErrBadSignature
	}
	return nil
}

// verifyRSA checks an RSA signature over SHA256. PSS is tried first with
// PKCS1v15 as fallback, mirroring what common signing tools emit.
func verifyRSA(key *rsa.PublicKey, message, signature []byte) error {
	hash := sha256.Sum256(message)

	if err := rsa.VerifyPSS(key, crypto.SHA256, hash[:], signature, nil); err != nil {
		if err := rsa.VerifyPKCS1v15(key, crypto.SHA256, hash[:], signature); err != nil {
			return ErrBadSignature
		}
	}
	return nil
}

func verifyEd25519(key ed25519.PublicKey, message, signature []byte) error {
	if !ed25519.Verify(key, message, signature) {
		return ErrBadSignature
	}
	return nil
}
