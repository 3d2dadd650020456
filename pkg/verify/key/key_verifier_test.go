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

package key

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/Doctor-love/pgp-cp/pkg/trust"
)

func generateKeyFile(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		t.Fatalf("Failed to marshal public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	path := filepath.Join(t.TempDir(), "key.pub")
	if err := os.WriteFile(path, pemBytes, 0644); err != nil {
		t.Fatalf("Failed to write key file: %v", err)
	}
	return path, priv
}

func TestVerify_ValidSignature(t *testing.T) {
	keyPath, priv := generateKeyFile(t)
	content := []byte("config-v1")
	signature := ed25519.Sign(priv, content)

	verifier, err := NewVerifier(VerifierConfig{PublicKeyPath: keyPath})
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}

	decision := verifier.Verify(context.Background(), content, signature)
	if decision.Verdict != trust.VerdictTrusted {
		t.Fatalf("Verdict = %v, want trusted (%s)", decision.Verdict, decision)
	}
	if decision.KeyID == "" {
		t.Error("Expected key fingerprint on trusted decision")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	keyPath, _ := generateKeyFile(t)
	_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	content := []byte("config-v1")
	signature := ed25519.Sign(otherPriv, content)

	verifier, err := NewVerifier(VerifierConfig{PublicKeyPath: keyPath})
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}

	decision := verifier.Verify(context.Background(), content, signature)
	if decision.Verdict != trust.VerdictUntrusted {
		t.Fatalf("Verdict = %v, want untrusted (%s)", decision.Verdict, decision)
	}
}

func TestVerify_CorruptedSignature(t *testing.T) {
	keyPath, priv := generateKeyFile(t)
	content := []byte("config-v1")
	signature := ed25519.Sign(priv, content)
	signature[3] ^= 0x01

	verifier, err := NewVerifier(VerifierConfig{PublicKeyPath: keyPath})
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}

	decision := verifier.Verify(context.Background(), content, signature)
	if decision.Verdict == trust.VerdictTrusted {
		t.Fatal("Corrupted signature verified as trusted")
	}
}

func TestVerify_EmptySignature(t *testing.T) {
	keyPath, _ := generateKeyFile(t)

	verifier, err := NewVerifier(VerifierConfig{PublicKeyPath: keyPath})
	if err != nil {
		t.Fatalf("Failed to create verifier: %v", err)
	}

	decision := verifier.Verify(context.Background(), []byte("config-v1"), nil)
	if decision.Verdict != trust.VerdictError {
		t.Fatalf("Verdict = %v, want error verdict (%s)", decision.Verdict, decision)
	}
}

func TestNewVerifier_MissingKey(t *testing.T) {
	_, err := NewVerifier(VerifierConfig{PublicKeyPath: "/nonexistent/key.pub"})
	if err == nil {
		t.Error("Expected error for missing key file, got nil")
	}
}

func TestNewVerifier_MalformedKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.pub")
	if err := os.WriteFile(path, []byte("junk"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := NewVerifier(VerifierConfig{PublicKeyPath: path})
	if err == nil {
		t.Error("Expected error for malformed key, got nil")
	}
}
