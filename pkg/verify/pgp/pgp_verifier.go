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

// Package pgp verifies OpenPGP detached signatures against a keyring file.
package pgp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	pgperrors "github.com/ProtonMail/go-crypto/openpgp/errors"

	"github.com/Doctor-love/pgp-cp/pkg/trust"
	"github.com/Doctor-love/pgp-cp/pkg/utils"
	"github.com/Doctor-love/pgp-cp/pkg/verify"
)

// Ensure Verifier implements verify.SignatureVerifier at compile time.
var _ verify.SignatureVerifier = (*Verifier)(nil)

// armorHeader marks ASCII-armored OpenPGP material.
const armorHeader = "-----BEGIN PGP"

// VerifierConfig holds configuration for creating an OpenPGP verifier.
type VerifierConfig struct {
	// KeyringPath is the path to the trusted keyring file. Both armored
	// and binary keyrings are accepted. The keyring is the trust anchor:
	// only signatures from keys in it are trusted.
	KeyringPath string

	// RequiredSigner optionally restricts trust to a single signer. It
	// matches an identity name, an email address, or a key ID in hex.
	// When empty, any key in the keyring is accepted.
	RequiredSigner string
}

// Verifier checks detached OpenPGP signatures against a fixed keyring.
//
// The keyring is read once at construction. A Verifier never caches
// decisions: every Verify call re-evaluates the signature.
type Verifier struct {
	config  VerifierConfig
	keyring openpgp.EntityList
}

// NewVerifier creates an OpenPGP verifier with the given configuration.
// The keyring file is read and parsed eagerly so configuration problems
// surface before any trust decision is made.
func NewVerifier(config VerifierConfig) (*Verifier, error) {
	if err := utils.ValidateFileExists("keyring", config.KeyringPath); err != nil {
		return nil, err
	}

	keyring, err := loadKeyring(config.KeyringPath)
	if err != nil {
		return nil, fmt.Errorf("loading keyring: %w", err)
	}
	if len(keyring) == 0 {
		return nil, fmt.Errorf("keyring %s contains no keys", config.KeyringPath)
	}

	return &Verifier{config: config, keyring: keyring}, nil
}

// Verify checks the detached signature over content against the keyring.
//
// Outcome mapping:
//   - signer's key not in the keyring: untrusted
//   - signature cryptographically invalid: untrusted
//   - trusted signer not matching RequiredSigner: untrusted
//   - unparseable signature or other provider failure: error verdict
func (v *Verifier) Verify(_ context.Context, content, signature []byte) trust.Decision {
	signer, err := checkDetached(v.keyring, content, signature)
	if err != nil {
		if errors.Is(err, pgperrors.ErrUnknownIssuer) {
			return trust.Untrusted("signing key is not in the trusted keyring")
		}
		var sigErr pgperrors.SignatureError
		if errors.As(err, &sigErr) {
			return trust.Untrusted(fmt.Sprintf("signature is invalid: %v", err))
		}
		return trust.Error(fmt.Errorf("checking detached signature: %w", err))
	}

	identity, keyID := signerIdentity(signer)
	if v.config.RequiredSigner != "" && !matchesSigner(signer, v.config.RequiredSigner) {
		return trust.Untrusted(fmt.Sprintf(
			"signer %q (key %s) is not the required signer %q",
			identity, keyID, v.config.RequiredSigner))
	}

	return trust.Trusted(identity, keyID)
}

// checkDetached runs the armored or binary detached signature check,
// picked by sniffing the signature bytes.
func checkDetached(keyring openpgp.EntityList, content, signature []byte) (*openpgp.Entity, error) {
	if isArmored(signature) {
		return openpgp.CheckArmoredDetachedSignature(
			keyring, bytes.NewReader(content), bytes.NewReader(signature), nil)
	}
	return openpgp.CheckDetachedSignature(
		keyring, bytes.NewReader(content), bytes.NewReader(signature), nil)
}

// loadKeyring reads an armored or binary keyring file.
func loadKeyring(path string) (openpgp.EntityList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isArmored(raw) {
		return openpgp.ReadArmoredKeyRing(bytes.NewReader(raw))
	}
	return openpgp.ReadKeyRing(bytes.NewReader(raw))
}

func isArmored(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte(armorHeader))
}

// signerIdentity extracts a printable identity and key ID from an entity.
func signerIdentity(e *openpgp.Entity) (identity, keyID string) {
	if e == nil {
		return "", ""
	}
	keyID = e.PrimaryKey.KeyIdString()
	if ident := e.PrimaryIdentity(); ident != nil {
		identity = ident.Name
	}
	return identity, keyID
}

// matchesSigner reports whether the entity matches the required signer,
// given as an identity name, an email address, or a hex key ID.
func matchesSigner(e *openpgp.Entity, required string) bool {
	if e == nil {
		return false
	}

	// Key ID match, case-insensitive, full or short form.
	keyID := strings.ToUpper(e.PrimaryKey.KeyIdString())
	req := strings.TrimPrefix(strings.ToUpper(required), "0X")
	if keyID == req || strings.HasSuffix(keyID, req) && len(req) >= 8 {
		return true
	}

	for _, ident := range e.Identities {
		if ident.Name == required {
			return true
		}
		if ident.UserId != nil && ident.UserId.Email == required {
			return true
		}
	}
	return false
}
